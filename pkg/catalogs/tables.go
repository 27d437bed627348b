package catalogs

import (
	stderrors "errors"

	"github.com/etalab/sill-data/pkg/errors"
)

// Tables holds the four input tables as loaded from the data directory.
// RawServices holds the service rows as read, in the same order as Services.
type Tables struct {
	Software          []Software
	Referents         []Referent
	SoftwareReferents []SoftwareReferent
	Services          []Service
	RawServices       []RawService
}

// ValidateReferences checks the software references of the tables: parent
// and alike software, and the software of each service. Every known
// reference must point at an existing software row and every service must
// name exactly one software. All problems are returned joined.
func (t *Tables) ValidateReferences() error {
	ix, err := NewIndex(t.Software, t.Referents)
	if err != nil {
		return err
	}
	return stderrors.Join(t.referenceErrors(ix)...)
}

// Validate runs ValidateReferences and also checks the referent id stored on
// each software row, which the CSV export relies on.
func (t *Tables) Validate() error {
	ix, err := NewIndex(t.Software, t.Referents)
	if err != nil {
		return err
	}

	errs := t.referenceErrors(ix)
	for i := range t.Software {
		if id := t.Software[i].ReferentID; id != nil {
			if _, err := ix.Referent(*id); err != nil {
				errs = append(errs, errors.WrapResource("resolve", "software", t.Software[i].ID.String(), err))
			}
		}
	}

	return stderrors.Join(errs...)
}

func (t *Tables) referenceErrors(ix *Index) []error {
	var errs []error

	for i := range t.Software {
		for _, ref := range t.Software[i].References() {
			if _, err := ix.SoftwareName(ref); err != nil {
				errs = append(errs, errors.WrapResource("resolve", "software", t.Software[i].ID.String(), err))
			}
		}
	}

	for i := range t.Services {
		ref, err := t.Services[i].Software()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := ix.SoftwareName(ref); err != nil {
			errs = append(errs, errors.WrapResource("resolve", "service", t.Services[i].ID.String(), err))
		}
	}

	return errs
}
