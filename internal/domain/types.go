// Package domain contains core business entities and types for structured
// clinical intake documentation following the SIS (Strukturierte
// Informationssammlung) model and the NBA (Neues Begutachtungsassessment)
// care-grade methodology used in German long-term care.
package domain

import (
	"errors"
	"fmt"
)

// TopicArea identifies one of the six fixed SIS assessment domains, plus the
// risk matrix pseudo-area used for the risk screening grid.
type TopicArea string

const (
	AreaCognition TopicArea = "tf1" // Kognition und Kommunikation
	AreaMobility  TopicArea = "tf2" // Mobilität
	AreaIllness   TopicArea = "tf3" // Krankheitsbezogene Anforderungen
	AreaSelfCare  TopicArea = "tf4" // Selbstversorgung
	AreaSocial    TopicArea = "tf5" // Soziales & Schlaf
	AreaDischarge TopicArea = "tf6" // Entlassmanagement
	AreaMatrix    TopicArea = "matrix"
)

// Category identifies the item list a catalog item belongs to. The codes are
// the wire strings used inside composite item identifiers.
type Category string

const (
	CategoryRisk     Category = "risk" // Risiko
	CategoryFinding  Category = "stat" // Befund
	CategoryMeasure  Category = "act"  // Maßnahme
	CategoryResource Category = "res"  // Ressource
	CategoryAid      Category = "aid"  // Hilfs- und Heilmittel
)

// CareGrade is the discrete 0-5 classification produced by the grading
// engine. Grade 0 means no entitlement; the computed grade is always a
// proposal, never a legally binding classification.
type CareGrade int

// Validation errors for intake data integrity.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidTopicArea = errors.New("invalid topic area")
	ErrInvalidCategory  = errors.New("invalid item category")
	ErrInvalidCareGrade = errors.New("invalid care grade")
)

// IsValid reports whether the topic area is one of the known SIS domains.
func (a TopicArea) IsValid() bool {
	switch a {
	case AreaCognition, AreaMobility, AreaIllness, AreaSelfCare, AreaSocial, AreaDischarge, AreaMatrix:
		return true
	default:
		return false
	}
}

// Label returns the short human-readable label used in documentation and in
// risk evidence ("TF 2").
func (a TopicArea) Label() string {
	switch a {
	case AreaCognition:
		return "TF 1"
	case AreaMobility:
		return "TF 2"
	case AreaIllness:
		return "TF 3"
	case AreaSelfCare:
		return "TF 4"
	case AreaSocial:
		return "TF 5"
	case AreaDischarge:
		return "TF 6"
	case AreaMatrix:
		return "Matrix"
	default:
		return string(a)
	}
}

func (a TopicArea) String() string {
	return string(a)
}

// IsValid reports whether the category code is known.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRisk, CategoryFinding, CategoryMeasure, CategoryResource, CategoryAid:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the grade is in the defined 0-5 range.
func (g CareGrade) IsValid() bool {
	return g >= 0 && g <= 5
}

// String returns the display label, e.g. "PG 2".
func (g CareGrade) String() string {
	return fmt.Sprintf("PG %d", int(g))
}

// LogFields returns structured logging fields for audit trails.
func (g CareGrade) LogFields() map[string]any {
	return map[string]any{
		"care_grade":  int(g),
		"label":       g.String(),
		"is_valid":    g.IsValid(),
		"entitlement": g >= 1,
	}
}

// ParseCareGrade parses a display label such as "PG 3". Labels carrying no
// digit parse as grade 0, mirroring how the client profile treats an unset
// grade.
func ParseCareGrade(label string) CareGrade {
	var n int
	for _, r := range label {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	if n > 5 {
		n = 5
	}
	return CareGrade(n)
}
