package models

// ResponseKind tells the client how to render a recommendation.
type ResponseKind string

const (
	KindListing  ResponseKind = "listing"
	KindPackage  ResponseKind = "package"
	KindNone     ResponseKind = "none"
	KindDelegate ResponseKind = "delegate"
)

// Intent is the structured reading of a free-text query.
type Intent struct {
	Budget     int64      `json:"budget,omitempty"` // 0 means no constraint
	Categories []Category `json:"categories"`
}

// Package is a selection of at most one service per category.
type Package struct {
	Items     []Service `json:"items"`
	Total     int64     `json:"total"`
	IsPackage bool      `json:"isPackage"`
}

// Empty reports whether the package holds no services.
func (p Package) Empty() bool {
	return len(p.Items) == 0
}

// Recommendation is the result of answering a query.
type Recommendation struct {
	Kind      ResponseKind `json:"kind"`
	Items     []Service    `json:"items"`
	Message   string       `json:"message"`
	Total     int64        `json:"total"`
	IsPackage bool         `json:"isPackage"`
}
