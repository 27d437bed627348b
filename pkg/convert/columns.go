package convert

// Software export columns.
const (
	ColSoftwareID      = "ID"
	ColSoftwareName    = "nom"
	ColFunction        = "fonction"
	ColYears           = "annees"
	ColStatus          = "statut"
	ColParent          = "parent"
	ColPublic          = "public"
	ColSupport         = "support"
	ColAlike           = "similaire-a"
	ColWikidata        = "wikidata"
	ColComptoirDuLibre = "comptoir-du-libre"
	ColLicense         = "licence"
	ColUsageContext    = "contexte-usage"
	ColLabel           = "label"
	ColUseCases        = "fiche"
	ColWorkshop        = "atelier"
	ColTest            = "test"
	ColGroup           = "groupe"
	ColVersionMin      = "version_min"
	ColVersionMax      = "version_max"
)

// Referent export columns.
const (
	ColReferentSoftware = "Logiciel"
	ColEmail            = "Courriel"
	ColEmailAlt         = "Courriel 2"
	ColIsExpert         = "Référent : expert technique ?"
)

// Service export columns.
const (
	ColServiceID               = "id"
	ColAgencyName              = "agency_name"
	ColPublicSector            = "public_sector"
	ColAgencyURL               = "agency_url"
	ColServiceName             = "service_name"
	ColServiceURL              = "service_url"
	ColDescription             = "description"
	ColServiceSoftwareName     = "software_name"
	ColServiceSoftwareID       = "software_sill_id"
	ColServiceComptoirID       = "software_comptoir_id"
	ColPublicationDate         = "publication_date"
	ColLastUpdateDate          = "last_update_date"
	ColSignupScope             = "signup_scope"
	ColUsageScope              = "usage_scope"
	ColSignupValidationMethod  = "signup_validation_method"
	ColContentModerationMethod = "content_moderation_method"
)

// SoftwareColumns lists the software export columns in order.
var SoftwareColumns = []string{
	ColSoftwareID, ColSoftwareName, ColFunction, ColYears, ColStatus, ColParent,
	ColPublic, ColSupport, ColAlike, ColWikidata, ColComptoirDuLibre, ColLicense,
	ColUsageContext, ColLabel, ColUseCases, ColWorkshop, ColTest, ColGroup,
	ColVersionMin, ColVersionMax,
}

// ReferentColumns lists the referent export columns in order.
var ReferentColumns = []string{
	ColReferentSoftware, ColEmail, ColEmailAlt, ColIsExpert,
}

// ServiceColumns lists the service export columns in order.
var ServiceColumns = []string{
	ColServiceID, ColAgencyName, ColPublicSector, ColAgencyURL, ColServiceName,
	ColServiceURL, ColDescription, ColServiceSoftwareName, ColServiceSoftwareID,
	ColServiceComptoirID, ColPublicationDate, ColLastUpdateDate, ColSignupScope,
	ColUsageScope, ColSignupValidationMethod, ColContentModerationMethod,
}
