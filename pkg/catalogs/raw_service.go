package catalogs

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// RawService is a service row exactly as read from service.json. The
// compiled document carries services in this form so keys the Service
// struct does not know about, and keys absent from the input, are written
// back as they were read.
type RawService json.RawMessage

// MarshalJSON writes the row unchanged.
func (r RawService) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON keeps a copy of data.
func (r *RawService) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// MarshalYAML writes the row as a YAML mapping with the keys in input order.
func (r RawService) MarshalYAML() (any, error) {
	if len(r) == 0 {
		return nil, nil
	}
	var row yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(r, &row, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return row, nil
}

// Decode parses the row into a Service.
func (r RawService) Decode() (Service, error) {
	var svc Service
	err := json.Unmarshal(r, &svc)
	return svc, err
}
