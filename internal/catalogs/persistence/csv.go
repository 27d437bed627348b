package persistence

import (
	"bytes"
	"encoding/csv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/etalab/sill-data/pkg/constants"
	"github.com/etalab/sill-data/pkg/convert"
	"github.com/etalab/sill-data/pkg/errors"
)

// WriteCSV writes the three projections as software.csv, referent.csv and
// service.csv into dir. Files start with a UTF-8 byte order mark so
// spreadsheet tools pick the right encoding.
func (s *Store) WriteCSV(dir string, rows *convert.CSVRows) error {
	software, err := EncodeCSV(convert.SoftwareColumns, rows.Software)
	if err != nil {
		return errors.WrapResource("encode", "csv", constants.SoftwareCSVFile, err)
	}
	referent, err := EncodeCSV(convert.ReferentColumns, rows.Referent)
	if err != nil {
		return errors.WrapResource("encode", "csv", constants.ReferentCSVFile, err)
	}
	service, err := EncodeCSV(convert.ServiceColumns, rows.Service)
	if err != nil {
		return errors.WrapResource("encode", "csv", constants.ServiceCSVFile, err)
	}

	return s.writeAll(dir, []file{
		{name: constants.SoftwareCSVFile, data: software},
		{name: constants.ReferentCSVFile, data: referent},
		{name: constants.ServiceCSVFile, data: service},
	})
}

// EncodeCSV renders a header row followed by one record per row.
func EncodeCSV(columns []string, rows []convert.Row) ([]byte, error) {
	var buf bytes.Buffer
	bom := transform.NewWriter(&buf, unicode.UTF8BOM.NewEncoder())

	w := csv.NewWriter(bom)
	if err := w.Write(columns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, column := range columns {
			record[i] = row.Get(column)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	if err := bom.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
