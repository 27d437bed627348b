package catalogs

// Software is one row of the software table.
type Software struct {
	// Identity
	ID       SoftwareID `json:"id" yaml:"id"`             // Unique software identifier
	Name     string     `json:"name" yaml:"name"`         // Display name
	Function string     `json:"function" yaml:"function"` // What the software is used for

	// Listing status
	ReferencedSinceTime  Timestamp            `json:"referencedSinceTime" yaml:"referencedSinceTime"`   // When the software entered the catalog
	RecommendationStatus RecommendationStatus `json:"recommendationStatus" yaml:"recommendationStatus"` // O, R or FR in exports

	// Relations to other software
	ParentSoftware *SoftwareRef  `json:"parentSoftware,omitempty" yaml:"parentSoftware,omitempty"`
	AlikeSoftwares []SoftwareRef `json:"alikeSoftwares" yaml:"alikeSoftwares"`

	IsFromFrenchPublicService  bool `json:"isFromFrenchPublicService" yaml:"isFromFrenchPublicService"`
	IsPresentInSupportContract bool `json:"isPresentInSupportContract" yaml:"isPresentInSupportContract"`

	// External identifiers
	WikidataID               *string `json:"wikidataId,omitempty" yaml:"wikidataId,omitempty"`
	ComptoirDuLibreID        *int    `json:"comptoirDuLibreId,omitempty" yaml:"comptoirDuLibreId,omitempty"`
	CatalogNumeriqueGouvFrID *string `json:"catalogNumeriqueGouvFrId,omitempty" yaml:"catalogNumeriqueGouvFrId,omitempty"`

	License string `json:"license" yaml:"license"`

	// Usage
	WhereAndInWhatContextIsItUsed *string  `json:"whereAndInWhatContextIsItUsed,omitempty" yaml:"whereAndInWhatContextIsItUsed,omitempty"`
	UseCasesURLs                  []string `json:"useCasesUrls" yaml:"useCasesUrls"`
	WorkshopURL                   *string  `json:"workshopUrl,omitempty" yaml:"workshopUrl,omitempty"`
	TestURL                       *string  `json:"testUrl,omitempty" yaml:"testUrl,omitempty"`
	MimGroup                      MimGroup `json:"mimGroup" yaml:"mimGroup"`
	VersionMin                    string   `json:"versionMin" yaml:"versionMin"`
	VersionMax                    *string  `json:"versionMax,omitempty" yaml:"versionMax,omitempty"`

	// Referent as recorded on the software row itself (used by exports)
	ReferentID       *ReferentID `json:"referentId,omitempty" yaml:"referentId,omitempty"`
	IsReferentExpert bool        `json:"isReferentExpert" yaml:"isReferentExpert"`
}

// References returns the parent and alike references of s, parent first.
func (s *Software) References() []SoftwareRef {
	refs := make([]SoftwareRef, 0, len(s.AlikeSoftwares)+1)
	if s.ParentSoftware != nil {
		refs = append(refs, *s.ParentSoftware)
	}
	return append(refs, s.AlikeSoftwares...)
}
