// Package app provides the application context and dependency management
// for the sill CLI. It centralizes configuration, the data store and the
// logger so commands only see the application.Application interface.
package app

import (
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/etalab/sill-data/cmd/application"
	"github.com/etalab/sill-data/internal/catalogs/persistence"
	"github.com/etalab/sill-data/pkg/constants"
	"github.com/etalab/sill-data/pkg/errors"
)

// App represents the sill application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// fixedLogger is set when the logger was injected and must survive
	// flag parsing.
	fixedLogger bool

	fs    afero.Fs
	clock clockwork.Clock
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the config
// file, then customized by the options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
		clock:   clockwork.NewRealClock(),
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Clock returns the application clock.
func (a *App) Clock() clockwork.Clock {
	return a.clock
}

// Store returns a data store on the application filesystem.
func (a *App) Store() *persistence.Store {
	return persistence.New(a.fs, a.logger)
}

// DataDir returns the configured data directory.
func (a *App) DataDir() string {
	if a.config.DataDir == "" {
		return constants.DefaultDataDir
	}
	return a.config.DataDir
}

// BuildDir returns the configured build directory, or the build
// subdirectory of DataDir when none is set.
func (a *App) BuildDir() string {
	if a.config.BuildDir != "" {
		return a.config.BuildDir
	}
	return filepath.Join(a.DataDir(), constants.BuildDirName)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "nil configuration", nil)
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger. Global logging flags no longer replace it.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.fixedLogger = true
		return nil
	}
}

// WithFs sets the filesystem used to read tables and write outputs.
func WithFs(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// WithClock sets the clock (useful for testing).
func WithClock(clock clockwork.Clock) Option {
	return func(a *App) error {
		a.clock = clock
		return nil
	}
}
