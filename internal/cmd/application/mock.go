// Package application provides test doubles for cmd/application.
package application

import (
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	app "github.com/etalab/sill-data/cmd/application"
	"github.com/etalab/sill-data/internal/catalogs/persistence"
	"github.com/etalab/sill-data/pkg/constants"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding field.
// Fields left nil fall back to an in-memory filesystem, a real clock,
// the default data directory and a no-op logger.
//
// Example Usage:
//
//	fs := afero.NewMemMapFs()
//	mock := &application.Mock{
//	    Fs:    fs,
//	    Clock: clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
//	}
//	cmd := build.NewCommand(mock)
type Mock struct {
	Fs          afero.Fs
	FakeClock   clockwork.Clock
	DataDirPath string
	BuildPath   string
	LoggerFunc  func() *zerolog.Logger
	VersionFunc func() string
}

var _ app.Application = (*Mock)(nil)

// Store returns a store on m.Fs, creating an in-memory one on first use.
func (m *Mock) Store() *persistence.Store {
	if m.Fs == nil {
		m.Fs = afero.NewMemMapFs()
	}
	return persistence.New(m.Fs, m.Logger())
}

// Clock returns m.FakeClock or a real clock.
func (m *Mock) Clock() clockwork.Clock {
	if m.FakeClock != nil {
		return m.FakeClock
	}
	return clockwork.NewRealClock()
}

// DataDir returns m.DataDirPath or the default data directory.
func (m *Mock) DataDir() string {
	if m.DataDirPath != "" {
		return m.DataDirPath
	}
	return constants.DefaultDataDir
}

// BuildDir returns m.BuildPath or the build subdirectory of DataDir.
func (m *Mock) BuildDir() string {
	if m.BuildPath != "" {
		return m.BuildPath
	}
	return filepath.Join(m.DataDir(), constants.BuildDirName)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns "unknown".
func (m *Mock) Commit() string {
	return "unknown"
}

// Date returns "unknown".
func (m *Mock) Date() string {
	return "unknown"
}

// BuiltBy returns "unknown".
func (m *Mock) BuiltBy() string {
	return "unknown"
}
