// Package build provides the build command, which compiles the catalog
// documents into the build directory.
package build

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/etalab/sill-data/cmd/application"
	"github.com/etalab/sill-data/pkg/catalogs"
	"github.com/etalab/sill-data/pkg/constants"
	"github.com/etalab/sill-data/pkg/errors"
	"github.com/etalab/sill-data/pkg/logging"
	"github.com/etalab/sill-data/pkg/save"
)

// NewCommand creates the build command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "build",
		GroupID: "core",
		Short:   "Compile the catalog documents",
		Args:    cobra.NoArgs,
		Long: `Build joins the software table with the referents through the
software-referent links and writes two documents to the build directory:

  compiledData.json                  catalog with referents, and services
  compiledData_withoutReferents.json same document without referents

A parent, alike or service software id that is not in the software table
stops the build. Both files are written together: if one cannot be
written, neither is replaced.`,
		Example: `  sill build                              # Read ./data, write ./data/build
  sill build --data-dir ../sill-data/data # Use another data directory
  sill build --format yaml                # Write YAML documents instead`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := save.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			ctx = logging.WithOperation(ctx, "build")
			return Run(ctx, app, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", constants.DefaultFormat, "output format: json, yaml")

	return cmd
}

// Run loads the tables, builds both catalog variants and writes them.
// A known software reference without a matching software row aborts the
// run before anything is written.
func Run(ctx context.Context, app application.Application, format save.Format) error {
	ctx = logging.WithDataDir(ctx, app.DataDir())
	logger := logging.FromContext(ctx)
	store := app.Store()

	tables, err := store.LoadTables(app.DataDir())
	if err != nil {
		return errors.WrapResource("load", "tables", app.DataDir(), err)
	}

	if err := tables.ValidateReferences(); err != nil {
		return errors.WrapResource("validate", "tables", app.DataDir(), err)
	}

	catalog, err := catalogs.Build(tables.Software, tables.Referents, tables.SoftwareReferents, logger)
	if err != nil {
		return errors.WrapResource("build", "catalog", "", err)
	}

	data := catalogs.Compile(catalog, tables.RawServices)
	if err := store.WriteCompiled(data, save.WithPath(app.BuildDir()), save.WithFormat(format)); err != nil {
		return err
	}

	logger.Info().
		Int("software", len(data.Catalog)).
		Int("services", len(data.Services)).
		Str("build_dir", app.BuildDir()).
		Msg("Catalog compiled")

	return nil
}
