package catalogs

import "strconv"

// SoftwareID identifies a row of the software table.
type SoftwareID int

// String returns the decimal form of the id.
func (id SoftwareID) String() string {
	return strconv.Itoa(int(id))
}

// ReferentID identifies a row of the referent table.
type ReferentID int

// String returns the decimal form of the id.
func (id ReferentID) String() string {
	return strconv.Itoa(int(id))
}

// ServiceID identifies a row of the service table.
type ServiceID int

// String returns the decimal form of the id.
func (id ServiceID) String() string {
	return strconv.Itoa(int(id))
}
