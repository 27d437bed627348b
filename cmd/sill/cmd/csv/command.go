// Package csv provides the csv command, which writes the spreadsheet
// exports of the tables.
package csv

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/etalab/sill-data/cmd/application"
	"github.com/etalab/sill-data/pkg/convert"
	"github.com/etalab/sill-data/pkg/errors"
	"github.com/etalab/sill-data/pkg/logging"
)

// NewCommand creates the csv command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:     "csv",
		GroupID: "core",
		Short:   "Export software, referents and services as CSV",
		Args:    cobra.NoArgs,
		Long: `Csv writes software.csv, referent.csv and service.csv.

Ids are resolved to names, booleans become "Oui" or an empty cell and
list cells are joined with " ; ". Files start with a UTF-8 byte order mark.`,
		Example: `  sill csv                   # Write into ./data/build
  sill csv --out-dir exports # Write into ./exports`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outDir == "" {
				outDir = app.BuildDir()
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			ctx = logging.WithOperation(ctx, "csv")
			return Run(ctx, app, outDir)
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "output directory (default is the build directory)")

	return cmd
}

// Run loads the tables, projects them and writes the three CSV files to
// outDir.
func Run(ctx context.Context, app application.Application, outDir string) error {
	logger := logging.FromContext(logging.WithDataDir(ctx, app.DataDir()))
	store := app.Store()

	tables, err := store.LoadTables(app.DataDir())
	if err != nil {
		return errors.WrapResource("load", "tables", app.DataDir(), err)
	}

	rows, err := convert.ToCSV(*tables, app.Clock())
	if err != nil {
		return err
	}

	if err := store.WriteCSV(outDir, rows); err != nil {
		return err
	}

	logger.Info().
		Int("software", len(rows.Software)).
		Int("referents", len(rows.Referent)).
		Int("services", len(rows.Service)).
		Str("out_dir", outDir).
		Msg("CSV exported")

	return nil
}
