package catalogs

import (
	"github.com/rs/zerolog"

	"github.com/etalab/sill-data/pkg/errors"
	"github.com/etalab/sill-data/pkg/logging"
)

// CatalogReferent is the referent attached to a catalog entry.
type CatalogReferent struct {
	Email    string  `json:"email" yaml:"email"`
	EmailAlt *string `json:"emailAlt,omitempty" yaml:"emailAlt,omitempty"`
	IsExpert bool    `json:"isExpert" yaml:"isExpert"`
}

// CatalogEntry is a software row together with its resolved referent.
type CatalogEntry struct {
	Software `yaml:",inline"`

	Referent *CatalogReferent `json:"referent,omitempty" yaml:"referent,omitempty"`
}

// Catalog lists entries in the order of the software table.
type Catalog []CatalogEntry

// Build joins the software rows with their referents through the link table.
//
// A link naming an unknown referent is logged and the entry is kept without
// a referent. Several links for the same software are all logged and then
// rejected with an integrity error, as are duplicate software ids.
func Build(software []Software, referents []Referent, links []SoftwareReferent, logger *zerolog.Logger) (Catalog, error) {
	logger = logging.OrDefault(logger)

	ix, err := NewIndex(software, referents)
	if err != nil {
		return nil, err
	}

	bySoftware, err := indexLinks(ix, links, logger)
	if err != nil {
		return nil, err
	}

	catalog := make(Catalog, 0, len(software))
	for _, row := range software {
		entry := CatalogEntry{Software: row}

		if link, ok := bySoftware[row.ID]; ok {
			referent, err := ix.Referent(link.ReferentID)
			if err != nil {
				logger.Error().
					Err(err).
					Stringer("software_id", row.ID).
					Stringer("referent_id", link.ReferentID).
					Msg("Referent of software not found, leaving it without referent")
			} else {
				entry.Referent = &CatalogReferent{
					Email:    referent.Email,
					EmailAlt: referent.EmailAlt,
					IsExpert: link.IsExpert,
				}
			}
		}

		catalog = append(catalog, entry)
	}

	logger.Debug().
		Int("software", len(software)).
		Int("links", len(links)).
		Msg("Catalog built")

	return catalog, nil
}

// indexLinks maps each software id to its single link.
func indexLinks(ix *Index, links []SoftwareReferent, logger *zerolog.Logger) (map[SoftwareID]SoftwareReferent, error) {
	bySoftware := make(map[SoftwareID]SoftwareReferent, len(links))
	reported := make(map[SoftwareID]bool)
	var duplicated []string

	for _, link := range links {
		if _, err := ix.Software(link.SoftwareID); err != nil {
			logger.Warn().
				Stringer("software_id", link.SoftwareID).
				Stringer("referent_id", link.ReferentID).
				Msg("Referent link points at an unknown software")
			continue
		}

		first, exists := bySoftware[link.SoftwareID]
		if !exists {
			bySoftware[link.SoftwareID] = link
			continue
		}

		if !reported[link.SoftwareID] {
			reported[link.SoftwareID] = true
			duplicated = append(duplicated, link.SoftwareID.String())
			logger.Error().
				Stringer("software_id", first.SoftwareID).
				Stringer("referent_id", first.ReferentID).
				Msg("Software has several referent links")
		}
		logger.Error().
			Stringer("software_id", link.SoftwareID).
			Stringer("referent_id", link.ReferentID).
			Msg("Software has several referent links")
	}

	if len(duplicated) > 0 {
		return nil, errors.NewIntegrityError("softwareReferent", duplicated, "several referent links for one software")
	}
	return bySoftware, nil
}

// RemoveReferent returns a copy of entry without its referent.
func RemoveReferent(entry CatalogEntry) CatalogEntry {
	entry.Referent = nil
	return entry
}
