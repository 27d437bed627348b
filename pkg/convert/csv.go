// Package convert flattens the sill tables into spreadsheet rows.
//
// Each projection resolves ids to display names (parent software, alike
// software, service software) so the rows can be read without the other
// tables. Serializing the rows to CSV text is left to the caller.
package convert

import (
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/etalab/sill-data/pkg/catalogs"
	"github.com/etalab/sill-data/pkg/constants"
	"github.com/etalab/sill-data/pkg/errors"
)

// CSVRows holds the three projections.
type CSVRows struct {
	Software []Row `json:"software"`
	Referent []Row `json:"referent"`
	Service  []Row `json:"service"`
}

// ToCSV projects the software, referent and service tables. The link table
// is not used: the referent projection reads the referent id stored on each
// software row. The current year, needed by the "annees" column, is read
// from clock.
//
// A known reference to a missing software or referent aborts the projection
// with a not-found error.
func ToCSV(tables catalogs.Tables, clock clockwork.Clock) (*CSVRows, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	ix, err := catalogs.NewIndex(tables.Software, tables.Referents)
	if err != nil {
		return nil, err
	}

	software, err := SoftwareRows(ix, tables.Software, clock.Now())
	if err != nil {
		return nil, err
	}
	referent, err := ReferentRows(ix, tables.Software)
	if err != nil {
		return nil, err
	}
	service, err := ServiceRows(ix, tables.Services)
	if err != nil {
		return nil, err
	}

	return &CSVRows{
		Software: software,
		Referent: referent,
		Service:  service,
	}, nil
}

// SoftwareRows projects the software table, one row per software.
func SoftwareRows(ix *catalogs.Index, software []catalogs.Software, now time.Time) ([]Row, error) {
	rows := make([]Row, 0, len(software))
	for i := range software {
		row, err := softwareRow(ix, &software[i], now)
		if err != nil {
			return nil, errors.WrapResource("project", "software", software[i].ID.String(), err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func softwareRow(ix *catalogs.Index, s *catalogs.Software, now time.Time) (Row, error) {
	years, err := ReferenceYears(s.ReferencedSinceTime.Time, now)
	if err != nil {
		return Row{}, err
	}

	status, err := StatusCode(s.RecommendationStatus)
	if err != nil {
		return Row{}, err
	}

	parent := ""
	if s.ParentSoftware != nil {
		if parent, err = ix.SoftwareName(*s.ParentSoftware); err != nil {
			return Row{}, err
		}
	}

	alike := make([]string, 0, len(s.AlikeSoftwares))
	for _, ref := range s.AlikeSoftwares {
		name, err := ix.SoftwareName(ref)
		if err != nil {
			return Row{}, err
		}
		alike = append(alike, name)
	}

	row := newRow()
	row.set(ColSoftwareID, s.ID.String())
	row.set(ColSoftwareName, s.Name)
	row.set(ColFunction, s.Function)
	row.set(ColYears, years)
	row.set(ColStatus, status)
	row.set(ColParent, parent)
	row.set(ColPublic, yes(s.IsFromFrenchPublicService))
	row.set(ColSupport, yes(s.IsPresentInSupportContract))
	row.set(ColAlike, strings.Join(alike, constants.ListSeparator))
	row.set(ColWikidata, orEmpty(s.WikidataID))
	row.set(ColComptoirDuLibre, intOrEmpty(s.ComptoirDuLibreID))
	row.set(ColLicense, s.License)
	row.set(ColUsageContext, orEmpty(s.WhereAndInWhatContextIsItUsed))
	row.set(ColLabel, orEmpty(s.CatalogNumeriqueGouvFrID))
	row.set(ColUseCases, strings.Join(s.UseCasesURLs, constants.ListSeparator))
	row.set(ColWorkshop, orEmpty(s.WorkshopURL))
	row.set(ColTest, orEmpty(s.TestURL))
	row.set(ColGroup, string(s.MimGroup))
	row.set(ColVersionMin, s.VersionMin)
	row.set(ColVersionMax, orEmpty(s.VersionMax))
	return row, nil
}

// ReferentRows pairs every software that has a referent id with its
// referent. Software without a referent id produce no row.
func ReferentRows(ix *catalogs.Index, software []catalogs.Software) ([]Row, error) {
	rows := make([]Row, 0)
	for i := range software {
		s := &software[i]
		if s.ReferentID == nil {
			continue
		}

		referent, err := ix.Referent(*s.ReferentID)
		if err != nil {
			return nil, errors.WrapResource("project", "software", s.ID.String(), err)
		}

		row := newRow()
		row.set(ColReferentSoftware, s.Name)
		row.set(ColEmail, referent.Email)
		row.set(ColEmailAlt, orEmpty(referent.EmailAlt))
		row.set(ColIsExpert, yes(s.IsReferentExpert))
		rows = append(rows, row)
	}
	return rows, nil
}

// ServiceRows projects the service table. For a service running a listed
// software, its name and Comptoir du Libre id come from the software table;
// otherwise the values stored on the service are used.
func ServiceRows(ix *catalogs.Index, services []catalogs.Service) ([]Row, error) {
	rows := make([]Row, 0, len(services))
	for i := range services {
		svc := &services[i]

		ref, err := svc.Software()
		if err != nil {
			return nil, err
		}

		var softwareName, softwareID, comptoirID string
		if id, ok := ref.ID(); ok {
			software, err := ix.Software(id)
			if err != nil {
				return nil, errors.WrapResource("project", "service", svc.ID.String(), err)
			}
			softwareName = software.Name
			softwareID = id.String()
			comptoirID = intOrEmpty(software.ComptoirDuLibreID)
		} else {
			softwareName, _ = ref.Name()
			comptoirID = intOrEmpty(svc.ComptoirDuLibreID)
		}

		row := newRow()
		row.set(ColServiceID, svc.ID.String())
		row.set(ColAgencyName, svc.AgencyName)
		row.set(ColPublicSector, svc.PublicSector)
		row.set(ColAgencyURL, svc.AgencyURL)
		row.set(ColServiceName, svc.ServiceName)
		row.set(ColServiceURL, svc.ServiceURL)
		row.set(ColDescription, svc.Description)
		row.set(ColServiceSoftwareName, softwareName)
		row.set(ColServiceSoftwareID, softwareID)
		row.set(ColServiceComptoirID, comptoirID)
		row.set(ColPublicationDate, svc.PublicationDate)
		row.set(ColLastUpdateDate, svc.LastUpdateDate)
		row.set(ColSignupScope, svc.SignupScope)
		row.set(ColUsageScope, svc.UsageScope)
		row.set(ColSignupValidationMethod, svc.SignupValidationMethod)
		row.set(ColContentModerationMethod, svc.ContentModerationMethod)
		rows = append(rows, row)
	}
	return rows, nil
}

// ReferenceYears lists one year per full year elapsed between since and now,
// counting down from constants.ReferenceYearAnchor, joined with " ; ".
//
// The list starts at the fixed anchor, not at the current year, so it drifts
// further from the real reference years every January. This matches the
// published exports and must be confirmed with the data owners before it is
// changed.
func ReferenceYears(since, now time.Time) (string, error) {
	n := now.UTC().Year() - since.UTC().Year()
	if n < 0 {
		return "", errors.NewValidationError("referencedSinceTime", since, "is after the current year")
	}

	years := make([]string, n)
	for i := range years {
		years[i] = strconv.Itoa(constants.ReferenceYearAnchor - i)
	}
	return strings.Join(years, constants.ListSeparator), nil
}

// StatusCode returns the short export code of a recommendation status.
func StatusCode(status catalogs.RecommendationStatus) (string, error) {
	switch status {
	case catalogs.StatusInObservation:
		return "O", nil
	case catalogs.StatusRecommended:
		return "R", nil
	case catalogs.StatusNoLongerRecommended:
		return "FR", nil
	default:
		return "", errors.NewValidationError("recommendationStatus", status, "unknown recommendation status")
	}
}

func yes(flag bool) string {
	if flag {
		return constants.YesMarker
	}
	return ""
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
