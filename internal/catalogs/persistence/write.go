package persistence

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"

	"github.com/etalab/sill-data/pkg/catalogs"
	"github.com/etalab/sill-data/pkg/constants"
	"github.com/etalab/sill-data/pkg/errors"
	"github.com/etalab/sill-data/pkg/save"
)

// WriteCompiled writes both variants of the compiled document into the
// directory given by save.WithPath. Either both files are written or
// neither is.
func (s *Store) WriteCompiled(data catalogs.CompiledData, opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)
	if options.Path() == "" {
		return &errors.ConfigError{
			Component: "persistence",
			Message:   "no build directory configured",
		}
	}

	public := data.WithoutReferents()

	var files []file
	switch options.Format() {
	case save.FormatJSON:
		withReferents, err := MarshalJSON(data)
		if err != nil {
			return err
		}
		withoutReferents, err := MarshalJSON(public)
		if err != nil {
			return err
		}
		files = []file{
			{name: constants.CompiledDataFile, data: withReferents},
			{name: constants.CompiledDataWithoutReferentsFile, data: withoutReferents},
		}
	case save.FormatYAML:
		withReferents, err := yaml.Marshal(data)
		if err != nil {
			return errors.WrapResource("encode", "catalog", "yaml", err)
		}
		withoutReferents, err := yaml.Marshal(public)
		if err != nil {
			return errors.WrapResource("encode", "catalog", "yaml", err)
		}
		files = []file{
			{name: constants.CompiledDataYAMLFile, data: withReferents},
			{name: constants.CompiledDataWithoutReferentsYAMLFile, data: withoutReferents},
		}
	default:
		return errors.NewConfigError("persistence", "unsupported format "+options.Format().String(), nil)
	}

	return s.writeAll(options.Path(), files)
}

// MarshalJSON encodes v with two-space indentation, without HTML escaping
// and without a trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return nil, errors.WrapResource("encode", "catalog", "json", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
