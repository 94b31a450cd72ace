package models

import "strings"

// Availability states used by the catalog.
const (
	Available   = "Available"
	Unavailable = "Unavailable"
)

// Service is a single bookable offer inside a category.
type Service struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Price        string `bson:"price" json:"price"`               // currency-prefixed, e.g. "€500"
	Availability string `bson:"availability" json:"availability"` // "Available" or "Unavailable"
	Image        string `bson:"image" json:"image"`               // opaque asset reference
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
}

// IsAvailable reports whether the service can be recommended. Stored catalogs
// are not consistent about case, so the comparison ignores it.
func (s Service) IsAvailable() bool {
	return strings.EqualFold(s.Availability, Available)
}

// Category groups services of one kind (venues, catering, ...).
type Category struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Services []Service `bson:"services" json:"services"`
}

// CategoryKeywords maps a category name to the substrings that select it in free text.
type CategoryKeywords struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}
