package convert

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etalab/sill-data/pkg/catalogs"
	"github.com/etalab/sill-data/pkg/errors"
)

func ptr[T any](v T) *T {
	return &v
}

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func since(year int) catalogs.Timestamp {
	return catalogs.NewTimestamp(time.Date(year, time.March, 15, 0, 0, 0, 0, time.UTC))
}

func testTables() catalogs.Tables {
	return catalogs.Tables{
		Software: []catalogs.Software{
			{
				ID:                        7,
				Name:                      "LibreOffice",
				Function:                  "Office suite",
				ReferencedSinceTime:       since(2021),
				RecommendationStatus:      catalogs.StatusRecommended,
				AlikeSoftwares:            []catalogs.SoftwareRef{catalogs.UnknownSoftware("Microsoft Office"), catalogs.KnownSoftware(8)},
				IsFromFrenchPublicService: true,
				WikidataID:                ptr("Q10135"),
				ComptoirDuLibreID:         ptr(62),
				License:                   "MPL-2.0",
				UseCasesURLs:              []string{"https://a.example/1", "https://a.example/2"},
				MimGroup:                  catalogs.MimGroupMIMO,
				VersionMin:                "7.0",
				ReferentID:                ptr(catalogs.ReferentID(9)),
				IsReferentExpert:          true,
			},
			{
				ID:                         8,
				Name:                       "Calc",
				Function:                   "Spreadsheet",
				ReferencedSinceTime:        since(2023),
				RecommendationStatus:       catalogs.StatusInObservation,
				ParentSoftware:             ptr(catalogs.KnownSoftware(7)),
				IsPresentInSupportContract: true,
				License:                    "MPL-2.0",
				MimGroup:                   catalogs.MimGroupMIMDEV,
				VersionMin:                 "7.2",
				VersionMax:                 ptr("7.6"),
			},
			{
				ID:                   9,
				Name:                 "Forked",
				ReferencedSinceTime:  since(2024),
				RecommendationStatus: catalogs.StatusNoLongerRecommended,
				ParentSoftware:       ptr(catalogs.UnknownSoftware("Foo")),
				License:              "GPL-3.0",
				MimGroup:             catalogs.MimGroupMIMPROD,
				ReferentID:           ptr(catalogs.ReferentID(10)),
			},
		},
		Referents: []catalogs.Referent{
			{ID: 9, Email: "a@b.c"},
			{ID: 10, Email: "x@b.c", EmailAlt: ptr("y@b.c")},
		},
		Services: []catalogs.Service{
			{
				ID:                      1,
				AgencyName:              "DINUM",
				PublicSector:            "Etat",
				AgencyURL:               "https://dinum.example",
				ServiceName:             "Office en ligne",
				ServiceURL:              "https://office.example",
				Description:             "Suite bureautique",
				SoftwareID:              ptr(catalogs.SoftwareID(7)),
				ComptoirDuLibreID:       ptr(999),
				PublicationDate:         "2022-01-03",
				LastUpdateDate:          "2023-02-04",
				SignupScope:             "agents",
				UsageScope:              "agents",
				SignupValidationMethod:  "email",
				ContentModerationMethod: "none",
			},
			{
				ID:                2,
				AgencyName:        "Ville",
				ServiceName:       "Visio",
				SoftwareName:      ptr("Jitsi"),
				ComptoirDuLibreID: ptr(117),
			},
			{
				ID:           3,
				AgencyName:   "Ville",
				ServiceName:  "Wiki",
				SoftwareName: ptr("MediaWiki"),
			},
		},
	}
}

func TestToCSV(t *testing.T) {
	rows, err := ToCSV(testTables(), clockwork.NewFakeClockAt(testNow))
	require.NoError(t, err)

	require.Len(t, rows.Software, 3)
	require.Len(t, rows.Referent, 2)
	require.Len(t, rows.Service, 3)

	t.Run("software row", func(t *testing.T) {
		want := map[string]string{
			"ID":                "7",
			"nom":               "LibreOffice",
			"fonction":          "Office suite",
			"annees":            "2022 ; 2021 ; 2020",
			"statut":            "R",
			"parent":            "",
			"public":            "Oui",
			"support":           "",
			"similaire-a":       "Microsoft Office ; Calc",
			"wikidata":          "Q10135",
			"comptoir-du-libre": "62",
			"licence":           "MPL-2.0",
			"contexte-usage":    "",
			"label":             "",
			"fiche":             "https://a.example/1 ; https://a.example/2",
			"atelier":           "",
			"test":              "",
			"groupe":            "MIMO",
			"version_min":       "7.0",
			"version_max":       "",
		}
		assert.Equal(t, want, rows.Software[0].Map())
		assert.Equal(t, SoftwareColumns, rows.Software[0].Columns())
	})

	t.Run("known parent renders its name", func(t *testing.T) {
		calc := rows.Software[1]
		assert.Equal(t, "LibreOffice", calc.Get(ColParent))
		assert.Equal(t, "O", calc.Get(ColStatus))
		assert.Equal(t, "2022", calc.Get(ColYears))
		assert.Equal(t, "Oui", calc.Get(ColSupport))
		assert.Equal(t, "", calc.Get(ColPublic))
		assert.Equal(t, "", calc.Get(ColAlike))
		assert.Equal(t, "", calc.Get(ColComptoirDuLibre))
		assert.Equal(t, "7.6", calc.Get(ColVersionMax))
	})

	t.Run("unknown parent renders stored name", func(t *testing.T) {
		forked := rows.Software[2]
		assert.Equal(t, "Foo", forked.Get(ColParent))
		assert.Equal(t, "FR", forked.Get(ColStatus))
		assert.Equal(t, "", forked.Get(ColYears))
	})

	t.Run("referent rows skip software without referent", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"Logiciel":                      "LibreOffice",
			"Courriel":                      "a@b.c",
			"Courriel 2":                    "",
			"Référent : expert technique ?": "Oui",
		}, rows.Referent[0].Map())
		assert.Equal(t, map[string]string{
			"Logiciel":                      "Forked",
			"Courriel":                      "x@b.c",
			"Courriel 2":                    "y@b.c",
			"Référent : expert technique ?": "",
		}, rows.Referent[1].Map())
		assert.Equal(t, ReferentColumns, rows.Referent[0].Columns())
	})

	t.Run("service with known software uses software table", func(t *testing.T) {
		svc := rows.Service[0]
		assert.Equal(t, "1", svc.Get(ColServiceID))
		assert.Equal(t, "LibreOffice", svc.Get(ColServiceSoftwareName))
		assert.Equal(t, "7", svc.Get(ColServiceSoftwareID))
		assert.Equal(t, "62", svc.Get(ColServiceComptoirID), "stored comptoir id is ignored for known software")
		assert.Equal(t, "Etat", svc.Get(ColPublicSector))
		assert.Equal(t, "2022-01-03", svc.Get(ColPublicationDate))
		assert.Equal(t, "none", svc.Get(ColContentModerationMethod))
		assert.Equal(t, ServiceColumns, svc.Columns())
	})

	t.Run("service with unknown software uses stored values", func(t *testing.T) {
		assert.Equal(t, "Jitsi", rows.Service[1].Get(ColServiceSoftwareName))
		assert.Equal(t, "", rows.Service[1].Get(ColServiceSoftwareID))
		assert.Equal(t, "117", rows.Service[1].Get(ColServiceComptoirID))

		assert.Equal(t, "MediaWiki", rows.Service[2].Get(ColServiceSoftwareName))
		assert.Equal(t, "", rows.Service[2].Get(ColServiceComptoirID))
	})
}

func TestToCSV_EndToEndScenario(t *testing.T) {
	tables := catalogs.Tables{
		Software: []catalogs.Software{{
			ID:                   1,
			Name:                 "A",
			ReferencedSinceTime:  since(2024),
			RecommendationStatus: catalogs.StatusRecommended,
			ReferentID:           ptr(catalogs.ReferentID(9)),
			IsReferentExpert:     true,
		}},
		Referents: []catalogs.Referent{{ID: 9, Email: "a@b.c"}},
	}

	rows, err := ToCSV(tables, clockwork.NewFakeClockAt(testNow))
	require.NoError(t, err)
	require.Len(t, rows.Referent, 1)
	assert.Equal(t, map[string]string{
		"Logiciel":                      "A",
		"Courriel":                      "a@b.c",
		"Courriel 2":                    "",
		"Référent : expert technique ?": "Oui",
	}, rows.Referent[0].Map())
	assert.Empty(t, rows.Service)
}

func TestToCSV_DanglingReferences(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testNow)

	t.Run("parent", func(t *testing.T) {
		tables := testTables()
		tables.Software[1].ParentSoftware = ptr(catalogs.KnownSoftware(404))
		_, err := ToCSV(tables, clock)
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("alike", func(t *testing.T) {
		tables := testTables()
		tables.Software[0].AlikeSoftwares = []catalogs.SoftwareRef{catalogs.KnownSoftware(405)}
		_, err := ToCSV(tables, clock)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("referent", func(t *testing.T) {
		tables := testTables()
		tables.Software[1].ReferentID = ptr(catalogs.ReferentID(406))
		_, err := ToCSV(tables, clock)
		assert.True(t, errors.IsNotFound(err))
		assert.Contains(t, err.Error(), "referent with ID 406")
	})

	t.Run("service software", func(t *testing.T) {
		tables := testTables()
		tables.Services[0].SoftwareID = ptr(catalogs.SoftwareID(407))
		_, err := ToCSV(tables, clock)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestReferenceYears(t *testing.T) {
	tests := []struct {
		name      string
		sinceYear int
		nowYear   int
		want      string
	}{
		{name: "three years", sinceYear: 2021, nowYear: 2024, want: "2022 ; 2021 ; 2020"},
		{name: "one year", sinceYear: 2023, nowYear: 2024, want: "2022"},
		{name: "same year", sinceYear: 2024, nowYear: 2024, want: ""},
		{name: "anchor does not follow the clock", sinceYear: 2020, nowYear: 2026, want: "2022 ; 2021 ; 2020 ; 2019 ; 2018 ; 2017"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReferenceYears(
				time.Date(tt.sinceYear, time.December, 31, 0, 0, 0, 0, time.UTC),
				time.Date(tt.nowYear, time.January, 1, 0, 0, 0, 0, time.UTC),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("future reference date", func(t *testing.T) {
		_, err := ReferenceYears(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), testNow)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestStatusCode(t *testing.T) {
	for status, want := range map[catalogs.RecommendationStatus]string{
		catalogs.StatusRecommended:         "R",
		catalogs.StatusInObservation:       "O",
		catalogs.StatusNoLongerRecommended: "FR",
	} {
		got, err := StatusCode(status)
		require.NoError(t, err)
		assert.Equal(t, want, got, status)
	}

	_, err := StatusCode("")
	assert.True(t, errors.IsValidationError(err))
}

func TestRow_MarshalJSON(t *testing.T) {
	row := newRow()
	row.set("b", "2")
	row.set("a", "1")

	out, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"2","a":"1"}`, string(out))
	assert.Equal(t, []string{"2", "1"}, row.Values())
	assert.Equal(t, "", row.Get("missing"))
}
