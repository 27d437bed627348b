// Package constants provides shared constants used throughout the sill data
// builder: input and output file names, permissions and export markers.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Input table file names, relative to the data directory.
const (
	SoftwareFile         = "software.json"
	ReferentFile         = "referent.json"
	SoftwareReferentFile = "softwareReferent.json"
	ServiceFile          = "service.json"
)

// Output locations.
const (
	// BuildDirName is the build directory created under the data directory.
	BuildDirName = "build"

	// CompiledDataFile holds the catalog with referents.
	CompiledDataFile = "compiledData.json"

	// CompiledDataWithoutReferentsFile holds the public catalog.
	CompiledDataWithoutReferentsFile = "compiledData_withoutReferents.json"

	// CompiledDataYAMLFile and CompiledDataWithoutReferentsYAMLFile are used with the yaml format.
	CompiledDataYAMLFile                 = "compiledData.yaml"
	CompiledDataWithoutReferentsYAMLFile = "compiledData_withoutReferents.yaml"

	// CSV exports.
	SoftwareCSVFile = "software.csv"
	ReferentCSVFile = "referent.csv"
	ServiceCSVFile  = "service.csv"

	// StagingSuffix marks files written but not yet renamed into place.
	StagingSuffix = ".tmp"

	// BackupSuffix marks a previous output kept until a write completes.
	BackupSuffix = ".bak"
)

// Spreadsheet export values.
const (
	// YesMarker is written for true boolean flags; false flags are left empty.
	YesMarker = "Oui"

	// ListSeparator joins multi-valued cells.
	ListSeparator = " ; "

	// ReferenceYearAnchor is the first year of the "annees" column.
	// It has been 2022 since that release and is not derived from the clock.
	ReferenceYearAnchor = 2022
)

// Defaults for configuration.
const (
	DefaultDataDir = "data"
	DefaultFormat  = "json"
)
