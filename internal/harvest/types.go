// internal/harvest/types.go

// Package harvest implements the paginated harvest engine: page discovery,
// extraction, filtering and concurrent aggregation of normalized records.
package harvest

import (
	"fmt"
)

// MalformedItemError reports a catalog item missing an expected sub-node.
// It is scoped to the single item; sibling items are unaffected.
type MalformedItemError struct {
	Index int
	Part  string
}

// Error implements the error interface.
func (e *MalformedItemError) Error() string {
	return fmt.Sprintf("catalog item %d: missing %s node", e.Index, e.Part)
}

// MissingFieldError reports an expected field absent from a decoded entity
// document. It is scoped to the single entity; the pagination loop continues.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("entity document missing field '%s'", e.Field)
}

// listingPage is the raw payload of one directory search page. The length of
// Value is the raw item count the pagination cursor terminates on.
type listingPage struct {
	Value []Candidate `json:"value"`
}

// Candidate is the pre-normalization summary of one directory entity as it
// appears on a listing page. ID is the key used for the enrichment lookup;
// Visibility lets the filter reject an entity before its enrichment fetch.
type Candidate struct {
	ID         string `json:"id"`
	Visibility string `json:"visibility"`
}
