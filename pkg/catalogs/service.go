package catalogs

import "github.com/etalab/sill-data/pkg/errors"

// Service is an online public service running one software. The software
// is stored either as SoftwareID, or as SoftwareName plus an optional
// Comptoir du Libre id when the catalog does not list it.
type Service struct {
	ID           ServiceID `json:"id" yaml:"id"`
	AgencyName   string    `json:"agencyName" yaml:"agencyName"`
	PublicSector string    `json:"publicSector" yaml:"publicSector"`
	AgencyURL    string    `json:"agencyUrl" yaml:"agencyUrl"`
	ServiceName  string    `json:"serviceName" yaml:"serviceName"`
	ServiceURL   string    `json:"serviceUrl" yaml:"serviceUrl"`
	Description  string    `json:"description" yaml:"description"`

	SoftwareID        *SoftwareID `json:"softwareId,omitempty" yaml:"softwareId,omitempty"`
	SoftwareName      *string     `json:"softwareName,omitempty" yaml:"softwareName,omitempty"`
	ComptoirDuLibreID *int        `json:"comptoirDuLibreId,omitempty" yaml:"comptoirDuLibreId,omitempty"`

	PublicationDate         string `json:"publicationDate" yaml:"publicationDate"`
	LastUpdateDate          string `json:"lastUpdateDate" yaml:"lastUpdateDate"`
	SignupScope             string `json:"signupScope" yaml:"signupScope"`
	UsageScope              string `json:"usageScope" yaml:"usageScope"`
	SignupValidationMethod  string `json:"signupValidationMethod" yaml:"signupValidationMethod"`
	ContentModerationMethod string `json:"contentModerationMethod" yaml:"contentModerationMethod"`
}

// Software returns the software reference of the service.
func (s *Service) Software() (SoftwareRef, error) {
	switch {
	case s.SoftwareID != nil && s.SoftwareName != nil:
		return SoftwareRef{}, errors.NewValidationError("service "+s.ID.String(), nil, "softwareId and softwareName are mutually exclusive")
	case s.SoftwareID != nil:
		return KnownSoftware(*s.SoftwareID), nil
	case s.SoftwareName != nil:
		return UnknownSoftware(*s.SoftwareName), nil
	default:
		return SoftwareRef{}, errors.NewValidationError("service "+s.ID.String(), nil, "one of softwareId or softwareName is required")
	}
}
