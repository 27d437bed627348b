package catalogs

import (
	"encoding/json"
	"strings"

	"github.com/etalab/sill-data/pkg/errors"
)

// RecommendationStatus is the recommendation level of a software.
type RecommendationStatus string

// Recommendation statuses.
const (
	StatusInObservation       RecommendationStatus = "in observation"
	StatusRecommended         RecommendationStatus = "recommended"
	StatusNoLongerRecommended RecommendationStatus = "no longer recommended"
)

// String returns the string representation of a RecommendationStatus.
func (s RecommendationStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the known statuses.
func (s RecommendationStatus) IsValid() bool {
	switch s {
	case StatusInObservation, StatusRecommended, StatusNoLongerRecommended:
		return true
	}
	return false
}

// ParseRecommendationStatus accepts both the spaced and the hyphenated
// spelling ("in observation", "in-observation").
func ParseRecommendationStatus(s string) (RecommendationStatus, error) {
	status := RecommendationStatus(strings.ReplaceAll(strings.TrimSpace(s), "-", " "))
	if !status.IsValid() {
		return "", errors.NewValidationError("recommendationStatus", s, "unknown recommendation status")
	}
	return status, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *RecommendationStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status, err := ParseRecommendationStatus(raw)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// MimGroup is the MIM working group a software is filed under.
type MimGroup string

// MIM groups.
const (
	MimGroupMIMO       MimGroup = "MIMO"
	MimGroupMIMDEV     MimGroup = "MIMDEV"
	MimGroupMIMPROD    MimGroup = "MIMPROD"
	MimGroupMIMDEVPROD MimGroup = "MIMDEVPROD"
)
