// internal/record/record.go

// Package record defines the normalized shapes of harvested entities and the
// placeholder policy applied when records are serialized to an output sink.
package record

import (
	"strings"
)

// Placeholder is the marker substituted for empty field values.
const Placeholder = "N/A"

// OrPlaceholder returns the placeholder when the value is empty or consists
// only of whitespace. Trimming is used for emptiness detection only: a value
// such as "  x  " is returned unchanged.
func OrPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}

// Record is a normalized entity ready for serialization. Headers returns the
// schema field names in output order; Values returns the field values in the
// same order with the placeholder policy applied. In-memory fields keep their
// raw values; the policy takes effect only at the serialization boundary.
type Record interface {
	Headers() []string
	Values() []string
}

// CatalogItem is one product harvested from an HTML catalog listing. No field
// is guaranteed non-empty.
type CatalogItem struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Image string `json:"image"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

var catalogHeaders = []string{"id", "url", "image", "name", "price"}

// Headers returns the catalog schema field names in output order.
func (c CatalogItem) Headers() []string {
	return catalogHeaders
}

// Values returns the field values in header order with the placeholder
// policy applied.
func (c CatalogItem) Values() []string {
	return []string{
		OrPlaceholder(c.ID),
		OrPlaceholder(c.URL),
		OrPlaceholder(c.Image),
		OrPlaceholder(c.Name),
		OrPlaceholder(c.Price),
	}
}

// SocialMedia holds an organization's social links. All four fields are
// always present; absent sources default each field to the placeholder at
// construction time rather than merging defaults at call sites.
type SocialMedia struct {
	Website   string `json:"website"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
}

// NewSocialMedia builds a SocialMedia record from a raw source mapping.
// Missing or empty entries become the placeholder marker.
func NewSocialMedia(raw map[string]string) SocialMedia {
	get := func(key string) string {
		if v, ok := raw[key]; ok && strings.TrimSpace(v) != "" {
			return v
		}
		return Placeholder
	}
	return SocialMedia{
		Website:   get("website"),
		Facebook:  get("facebook"),
		Twitter:   get("twitter"),
		Instagram: get("instagram"),
	}
}

// Organization is one directory entity harvested from a discovery API.
type Organization struct {
	ID            string      `json:"id"`
	InstitutionID string      `json:"institutionId"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Email         string      `json:"email"`
	Status        string      `json:"status"`
	Visibility    string      `json:"visibility"`
	Social        SocialMedia `json:"socialMedia"`
}

var organizationHeaders = []string{
	"id", "institution_id", "name", "description", "email",
	"status", "visibility", "website", "facebook", "twitter", "instagram",
}

// Headers returns the organization schema field names in output order.
func (o Organization) Headers() []string {
	return organizationHeaders
}

// Values returns the field values in header order with the placeholder
// policy applied.
func (o Organization) Values() []string {
	return []string{
		OrPlaceholder(o.ID),
		OrPlaceholder(o.InstitutionID),
		OrPlaceholder(o.Name),
		OrPlaceholder(o.Description),
		OrPlaceholder(o.Email),
		OrPlaceholder(o.Status),
		OrPlaceholder(o.Visibility),
		OrPlaceholder(o.Social.Website),
		OrPlaceholder(o.Social.Facebook),
		OrPlaceholder(o.Social.Twitter),
		OrPlaceholder(o.Social.Instagram),
	}
}
