package catalogs

import "encoding/json"

func ptr[T any](v T) *T {
	return &v
}

// sampleTables returns a small but complete set of tables: three software
// rows (one parent/child pair and one alike link to an unlisted software),
// two referents, two links and two services.
func sampleTables() Tables {
	tables := Tables{
		Software: []Software{
			{
				ID:                   1,
				Name:                 "LibreOffice",
				Function:             "Office suite",
				RecommendationStatus: StatusRecommended,
				AlikeSoftwares:       []SoftwareRef{UnknownSoftware("Microsoft Office")},
				License:              "MPL-2.0",
				UseCasesURLs:         []string{},
				MimGroup:             MimGroupMIMO,
				VersionMin:           "7.0",
				ReferentID:           ptr(ReferentID(9)),
				IsReferentExpert:     true,
			},
			{
				ID:                   2,
				Name:                 "LibreOffice Calc",
				Function:             "Spreadsheet",
				RecommendationStatus: StatusInObservation,
				ParentSoftware:       ptr(KnownSoftware(1)),
				AlikeSoftwares:       []SoftwareRef{},
				License:              "MPL-2.0",
				UseCasesURLs:         []string{},
				MimGroup:             MimGroupMIMO,
				VersionMin:           "7.0",
			},
			{
				ID:                   3,
				Name:                 "PostgreSQL",
				Function:             "Database",
				RecommendationStatus: StatusNoLongerRecommended,
				AlikeSoftwares:       []SoftwareRef{},
				License:              "PostgreSQL",
				UseCasesURLs:         []string{},
				MimGroup:             MimGroupMIMPROD,
				VersionMin:           "12",
				ReferentID:           ptr(ReferentID(10)),
			},
		},
		Referents: []Referent{
			{ID: 9, Email: "a@b.c"},
			{ID: 10, Email: "db@b.c", EmailAlt: ptr("dba@b.c")},
		},
		SoftwareReferents: []SoftwareReferent{
			{SoftwareID: 1, ReferentID: 9, IsExpert: true},
			{SoftwareID: 3, ReferentID: 10, IsExpert: false},
		},
		Services: []Service{
			{ID: 100, AgencyName: "DINUM", ServiceName: "Pad", SoftwareID: ptr(SoftwareID(1))},
			{ID: 101, AgencyName: "DINUM", ServiceName: "Visio", SoftwareName: ptr("Jitsi"), ComptoirDuLibreID: ptr(117)},
		},
	}
	tables.RawServices = rawServices(tables.Services)
	return tables
}

// rawServices encodes services the way they would be read from service.json.
func rawServices(services []Service) []RawService {
	raw := make([]RawService, len(services))
	for i := range services {
		b, err := json.Marshal(services[i])
		if err != nil {
			panic(err)
		}
		raw[i] = b
	}
	return raw
}
