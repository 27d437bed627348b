package catalogs

// Referent is a contact for one or more software.
type Referent struct {
	ID       ReferentID `json:"id" yaml:"id"`
	Email    string     `json:"email" yaml:"email"`
	EmailAlt *string    `json:"emailAlt,omitempty" yaml:"emailAlt,omitempty"`
}

// SoftwareReferent links a software to its referent.
type SoftwareReferent struct {
	SoftwareID SoftwareID `json:"softwareId" yaml:"softwareId"`
	ReferentID ReferentID `json:"referentId" yaml:"referentId"`
	IsExpert   bool       `json:"isExpert" yaml:"isExpert"`
}
