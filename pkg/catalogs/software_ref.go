package catalogs

import (
	"encoding/json"

	"github.com/etalab/sill-data/pkg/errors"
)

// SoftwareRef points at another software. A known reference carries the id
// of a row of the software table, an unknown one only the free-text name of
// a software the catalog does not list. A SoftwareRef is always exactly one
// of the two.
type SoftwareRef struct {
	known bool
	id    SoftwareID
	name  string
}

// KnownSoftware returns a reference to the software row with the given id.
func KnownSoftware(id SoftwareID) SoftwareRef {
	return SoftwareRef{known: true, id: id}
}

// UnknownSoftware returns a reference to a software outside the catalog.
func UnknownSoftware(name string) SoftwareRef {
	return SoftwareRef{name: name}
}

// IsKnown reports whether the reference carries a software id.
func (r SoftwareRef) IsKnown() bool {
	return r.known
}

// ID returns the referenced software id. ok is false for unknown references.
func (r SoftwareRef) ID() (id SoftwareID, ok bool) {
	return r.id, r.known
}

// Name returns the free-text name. ok is false for known references.
func (r SoftwareRef) Name() (name string, ok bool) {
	return r.name, !r.known
}

// String returns a short description used in logs and errors.
func (r SoftwareRef) String() string {
	if r.known {
		return "software#" + r.id.String()
	}
	return "unknown software " + r.name
}

type softwareRefJSON struct {
	IsKnown      *bool       `json:"isKnown" yaml:"isKnown"`
	SoftwareID   *SoftwareID `json:"softwareId,omitempty" yaml:"softwareId,omitempty"`
	SoftwareName *string     `json:"softwareName,omitempty" yaml:"softwareName,omitempty"`
}

func (r SoftwareRef) wire() softwareRefJSON {
	known := r.known
	out := softwareRefJSON{IsKnown: &known}
	if r.known {
		id := r.id
		out.SoftwareID = &id
	} else {
		name := r.name
		out.SoftwareName = &name
	}
	return out
}

// MarshalJSON writes {"isKnown":true,"softwareId":N} or
// {"isKnown":false,"softwareName":"..."}.
func (r SoftwareRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// MarshalYAML writes the same shape as MarshalJSON.
func (r SoftwareRef) MarshalYAML() (any, error) {
	return r.wire(), nil
}

// UnmarshalJSON decodes a reference and rejects one that carries both an id
// and a name, or neither. When isKnown is absent it is inferred from the
// field that is present.
func (r *SoftwareRef) UnmarshalJSON(data []byte) error {
	var in softwareRefJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	hasID := in.SoftwareID != nil
	hasName := in.SoftwareName != nil

	switch {
	case hasID && hasName:
		return errors.NewValidationError("softwareRef", string(data), "softwareId and softwareName are mutually exclusive")
	case !hasID && !hasName:
		return errors.NewValidationError("softwareRef", string(data), "one of softwareId or softwareName is required")
	}

	if in.IsKnown != nil && *in.IsKnown != hasID {
		return errors.NewValidationError("softwareRef", string(data), "isKnown does not match the fields present")
	}

	if hasID {
		*r = KnownSoftware(*in.SoftwareID)
	} else {
		*r = UnknownSoftware(*in.SoftwareName)
	}
	return nil
}
