// Package validate provides the validate command.
package validate

import (
	"context"
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/etalab/sill-data/cmd/application"
	"github.com/etalab/sill-data/pkg/catalogs"
	"github.com/etalab/sill-data/pkg/convert"
	"github.com/etalab/sill-data/pkg/logging"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check the tables without writing anything",
		Args:    cobra.NoArgs,
		Long: `Validate loads the tables and runs every check performed by build
and csv: software references resolve, services name exactly one
software, each software has at most one referent link, and every row
can be exported.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			ctx = logging.WithOperation(ctx, "validate")

			report, err := Run(ctx, app)
			if err != nil {
				return err
			}

			cmd.Printf("%s: %d software, %d referents, %d links, %d services\n",
				app.DataDir(), report.Software, report.Referents, report.Links, report.Services)
			return nil
		},
	}
}

// Report counts the rows that were checked.
type Report struct {
	Software  int
	Referents int
	Links     int
	Services  int
}

// Run loads and checks the tables. All reference problems are returned
// together.
func Run(ctx context.Context, app application.Application) (*Report, error) {
	logger := logging.FromContext(logging.WithDataDir(ctx, app.DataDir()))

	tables, err := app.Store().LoadTables(app.DataDir())
	if err != nil {
		return nil, err
	}

	var errs []error
	if err := tables.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := catalogs.Build(tables.Software, tables.Referents, tables.SoftwareReferents, logger); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		if _, err := convert.ToCSV(*tables, app.Clock()); err != nil {
			errs = append(errs, err)
		}
	}
	if err := stderrors.Join(errs...); err != nil {
		return nil, err
	}

	logger.Info().Msg("Tables are valid")

	return &Report{
		Software:  len(tables.Software),
		Referents: len(tables.Referents),
		Links:     len(tables.SoftwareReferents),
		Services:  len(tables.Services),
	}, nil
}
