// Package application provides the application interface for sill commands.
//
// Commands receive an Application instead of the concrete app type so they
// can be tested against an in-memory filesystem and a fixed clock:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            tables, err := app.Store().LoadTables(app.DataDir())
//	            if err != nil {
//	                return err
//	            }
//	            // ... use tables
//	            return nil
//	        },
//	    }
//	}
package application

import (
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/etalab/sill-data/internal/catalogs/persistence"
)

// Application provides what commands need from the application.
// The App struct from cmd/sill/app implements this interface.
type Application interface {
	// Store returns the data store bound to the application filesystem
	// and logger.
	Store() *persistence.Store

	// Clock returns the clock used for date dependent columns.
	Clock() clockwork.Clock

	// DataDir returns the directory holding the input tables.
	DataDir() string

	// BuildDir returns the output directory. It defaults to the build
	// subdirectory of DataDir.
	BuildDir() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
