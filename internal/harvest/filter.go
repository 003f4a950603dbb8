// internal/harvest/filter.go
package harvest

import (
	"github.com/valeran/harvester/internal/record"
)

// VisibilityPublic is the only visibility value admitted by the directory
// filter. The match is exact and case-sensitive.
const VisibilityPublic = "Public"

// Predicate decides whether a record is admitted to the aggregator.
// Filtering happens before admission, never after.
type Predicate func(record.Record) bool

// AdmitAll is the catalog-mode predicate: no filtering is applied.
func AdmitAll(record.Record) bool {
	return true
}

// PublicOnly admits directory organizations whose visibility is exactly
// "Public". Every other value, including different casing, is rejected.
func PublicOnly(rec record.Record) bool {
	org, ok := rec.(record.Organization)
	if !ok {
		return false
	}
	return org.Visibility == VisibilityPublic
}
