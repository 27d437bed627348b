package persistence

import (
	"encoding/json"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/etalab/sill-data/pkg/catalogs"
	"github.com/etalab/sill-data/pkg/constants"
	"github.com/etalab/sill-data/pkg/errors"
)

// LoadTables reads the four input tables from dataDir. Service rows are
// kept both as read and decoded.
func (s *Store) LoadTables(dataDir string) (*catalogs.Tables, error) {
	tables := &catalogs.Tables{}

	if err := s.readTable(dataDir, constants.SoftwareFile, &tables.Software); err != nil {
		return nil, err
	}
	if err := s.readTable(dataDir, constants.ReferentFile, &tables.Referents); err != nil {
		return nil, err
	}
	if err := s.readTable(dataDir, constants.SoftwareReferentFile, &tables.SoftwareReferents); err != nil {
		return nil, err
	}
	if err := s.readTable(dataDir, constants.ServiceFile, &tables.RawServices); err != nil {
		return nil, err
	}

	tables.Services = make([]catalogs.Service, len(tables.RawServices))
	for i, raw := range tables.RawServices {
		svc, err := raw.Decode()
		if err != nil {
			return nil, errors.WrapParse("json", filepath.Join(dataDir, constants.ServiceFile), err)
		}
		tables.Services[i] = svc
	}

	s.logger.Debug().
		Str("data_dir", dataDir).
		Int("software", len(tables.Software)).
		Int("referents", len(tables.Referents)).
		Int("software_referents", len(tables.SoftwareReferents)).
		Int("services", len(tables.Services)).
		Msg("Loaded tables")

	return tables, nil
}

// readTable decodes the JSON array in dataDir/name into out. A leading UTF-8
// byte order mark is dropped.
func (s *Store) readTable(dataDir, name string, out any) error {
	path := filepath.Join(dataDir, name)

	f, err := s.fs.Open(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	defer func() { _ = f.Close() }()

	decoder := json.NewDecoder(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	if err := decoder.Decode(out); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}
