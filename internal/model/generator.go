package model

// Generator enumerates conflict-free schedule selections over an immutable
// catalog. Generate never mutates the catalog or the constraints, so a single
// Generator is safe to share across concurrent requests.
type Generator interface {
	Generate(constraints Constraints, maxResults int) ([]Selection, []Diagnostic)
}

// NewGenerator builds a Generator over the given catalog. The catalog must
// not be mutated after construction.
func NewGenerator(catalog []*Offering) Generator {
	return &enumerationGenerator{catalog: catalog}
}
