// Package persistence reads the sill tables from a data directory and writes
// the build artifacts next to them. All file access goes through an
// afero.Fs so callers and tests can swap the filesystem.
package persistence

import (
	"path/filepath"

	"github.com/c2h5oh/datasize"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/etalab/sill-data/pkg/constants"
	"github.com/etalab/sill-data/pkg/errors"
	"github.com/etalab/sill-data/pkg/logging"
)

// Store reads and writes sill data files on a filesystem.
type Store struct {
	fs     afero.Fs
	logger *zerolog.Logger
}

// New returns a Store on fs. A nil fs means the OS filesystem and a nil
// logger the default logger.
func New(fs afero.Fs, logger *zerolog.Logger) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs, logger: logging.OrDefault(logger)}
}

// file is one output staged by writeAll.
type file struct {
	name string
	data []byte
}

// writeAll writes files into dir, creating it if needed. Every file is first
// written under a staging name; the final names only appear once all staged
// writes have succeeded. Existing outputs are moved aside before the staged
// files take their place, and put back if any rename fails, so dir never
// holds files from two different runs.
func (s *Store) writeAll(dir string, files []file) error {
	if err := s.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	staged := make([]string, 0, len(files))
	for _, f := range files {
		tmp := filepath.Join(dir, f.name+constants.StagingSuffix)
		if err := afero.WriteFile(s.fs, tmp, f.data, constants.FilePermissions); err != nil {
			s.removeAll(staged)
			return errors.WrapIO("write", tmp, err)
		}
		staged = append(staged, tmp)
	}

	var (
		placed  []string
		backups = make(map[string]string)
	)
	rollback := func() {
		s.removeAll(placed)
		for path, backup := range backups {
			if err := s.fs.Rename(backup, path); err != nil {
				s.logger.Error().Err(err).Str("file", path).Str("backup", backup).Msg("Failed to restore file")
			}
		}
		s.removeAll(staged)
	}

	for i, f := range files {
		path := filepath.Join(dir, f.name)

		exists, err := afero.Exists(s.fs, path)
		if err != nil {
			rollback()
			return errors.WrapIO("stat", path, err)
		}
		if exists {
			backup := path + constants.BackupSuffix
			if err := s.fs.Rename(path, backup); err != nil {
				rollback()
				return errors.WrapIO("rename", path, err)
			}
			backups[path] = backup
		}

		if err := s.fs.Rename(staged[i], path); err != nil {
			rollback()
			return errors.WrapIO("rename", path, err)
		}
		placed = append(placed, path)
	}

	for _, backup := range backups {
		if err := s.fs.Remove(backup); err != nil {
			s.logger.Warn().Err(err).Str("file", backup).Msg("Failed to remove backup")
		}
	}

	for i, f := range files {
		s.logger.Info().
			Str("file", placed[i]).
			Str("size", datasize.ByteSize(len(f.data)).HumanReadable()).
			Msg("Wrote file")
	}

	return nil
}

// removeAll removes paths, ignoring files that are already gone.
func (s *Store) removeAll(paths []string) {
	for _, path := range paths {
		_ = s.fs.Remove(path)
	}
}
