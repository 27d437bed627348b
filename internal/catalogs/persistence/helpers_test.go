package persistence_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/etalab/sill-data/pkg/constants"
)

const (
	softwareJSON = `[
  {
    "id": 1,
    "name": "LibreOffice",
    "function": "Office suite",
    "referencedSinceTime": 1577836800000,
    "recommendationStatus": "recommended",
    "alikeSoftwares": [{"isKnown": false, "softwareName": "Microsoft Office"}],
    "isFromFrenchPublicService": false,
    "isPresentInSupportContract": true,
    "license": "MPL-2.0",
    "useCasesUrls": ["https://example.org/fiche/1"],
    "mimGroup": "MIMO",
    "versionMin": "7.0",
    "referentId": 9,
    "isReferentExpert": true
  },
  {
    "id": 2,
    "name": "LibreOffice Calc",
    "function": "Spreadsheet",
    "referencedSinceTime": "2021-03-01T00:00:00Z",
    "recommendationStatus": "in-observation",
    "parentSoftware": {"isKnown": true, "softwareId": 1},
    "alikeSoftwares": [],
    "isFromFrenchPublicService": false,
    "isPresentInSupportContract": false,
    "license": "MPL-2.0",
    "useCasesUrls": [],
    "mimGroup": "MIMO",
    "versionMin": "7.0"
  }
]`
	referentJSON         = `[{"id": 9, "email": "a@b.c"}]`
	softwareReferentJSON = `[{"softwareId": 1, "referentId": 9, "isExpert": true}]`
	serviceJSON          = `[
  {
    "id": 100,
    "agencyName": "DINUM",
    "publicSector": "État",
    "agencyUrl": "https://numerique.gouv.fr",
    "serviceName": "Pad <collaboratif>",
    "serviceUrl": "https://pad.numerique.gouv.fr",
    "description": "Édition, à plusieurs",
    "softwareId": 1,
    "publicationDate": "2021-01-01",
    "lastUpdateDate": "2022-01-01",
    "signupScope": "agents",
    "usageScope": "agents",
    "signupValidationMethod": "email",
    "contentModerationMethod": "none",
    "extraField": "keep me"
  }
]`
)

// seedDataDir writes a consistent set of input tables under dir.
func seedDataDir(t *testing.T, fs afero.Fs, dir string) {
	t.Helper()

	files := map[string]string{
		constants.SoftwareFile:         softwareJSON,
		constants.ReferentFile:         referentJSON,
		constants.SoftwareReferentFile: softwareReferentJSON,
		constants.ServiceFile:          serviceJSON,
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(content), constants.FilePermissions))
	}
}
