package catalogs

import (
	"github.com/etalab/sill-data/pkg/errors"
)

// Index resolves software and referent ids to their rows. It is built once
// from the tables and never modified.
type Index struct {
	software  map[SoftwareID]*Software
	referents map[ReferentID]*Referent
}

// NewIndex indexes the software and referent tables. Duplicate ids within a
// table are reported as an integrity error.
func NewIndex(software []Software, referents []Referent) (*Index, error) {
	ix := &Index{
		software:  make(map[SoftwareID]*Software, len(software)),
		referents: make(map[ReferentID]*Referent, len(referents)),
	}

	var dupSoftware []string
	for i := range software {
		row := &software[i]
		if _, exists := ix.software[row.ID]; exists {
			dupSoftware = append(dupSoftware, row.ID.String())
			continue
		}
		ix.software[row.ID] = row
	}
	if len(dupSoftware) > 0 {
		return nil, errors.NewIntegrityError("software", dupSoftware, "duplicate software id")
	}

	var dupReferents []string
	for i := range referents {
		row := &referents[i]
		if _, exists := ix.referents[row.ID]; exists {
			dupReferents = append(dupReferents, row.ID.String())
			continue
		}
		ix.referents[row.ID] = row
	}
	if len(dupReferents) > 0 {
		return nil, errors.NewIntegrityError("referent", dupReferents, "duplicate referent id")
	}

	return ix, nil
}

// Software returns the software row with the given id.
func (ix *Index) Software(id SoftwareID) (*Software, error) {
	row, ok := ix.software[id]
	if !ok {
		return nil, errors.NewNotFoundError("software", id.String())
	}
	return row, nil
}

// Referent returns the referent row with the given id.
func (ix *Index) Referent(id ReferentID) (*Referent, error) {
	row, ok := ix.referents[id]
	if !ok {
		return nil, errors.NewNotFoundError("referent", id.String())
	}
	return row, nil
}

// SoftwareName returns the display name of ref: the name of the referenced
// row for a known reference, the stored text otherwise.
func (ix *Index) SoftwareName(ref SoftwareRef) (string, error) {
	if name, ok := ref.Name(); ok {
		return name, nil
	}
	id, _ := ref.ID()
	row, err := ix.Software(id)
	if err != nil {
		return "", err
	}
	return row.Name, nil
}
