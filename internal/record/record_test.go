// internal/record/record_test.go
package record

import (
	"reflect"
	"testing"
)

func TestOrPlaceholder_EmptyValue(t *testing.T) {
	if got := OrPlaceholder(""); got != Placeholder {
		t.Fatalf("Expected placeholder for empty value, got '%s'", got)
	}
}

func TestOrPlaceholder_WhitespaceOnly(t *testing.T) {
	cases := []string{" ", "\t", "\n", "  \t \n "}
	for _, c := range cases {
		if got := OrPlaceholder(c); got != Placeholder {
			t.Errorf("Expected placeholder for %q, got %q", c, got)
		}
	}
}

func TestOrPlaceholder_PreservesSurroundingWhitespace(t *testing.T) {
	// Trimming detects emptiness only; the stored value is not modified.
	if got := OrPlaceholder("  x  "); got != "  x  " {
		t.Fatalf("Expected '  x  ' unchanged, got %q", got)
	}
}

func TestCatalogItem_Values(t *testing.T) {
	item := CatalogItem{
		ID:    "product-42",
		URL:   "https://shop.example.com/p/42",
		Image: "",
		Name:  "Widget",
		Price: "$9.99",
	}

	want := []string{"product-42", "https://shop.example.com/p/42", "N/A", "Widget", "$9.99"}
	if got := item.Values(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected values %v, got %v", want, got)
	}

	if len(item.Headers()) != len(item.Values()) {
		t.Fatal("Headers and Values must have the same length")
	}
}

func TestNewSocialMedia_DefaultsAbsentKeys(t *testing.T) {
	sm := NewSocialMedia(map[string]string{
		"website": "https://club.example.edu",
		"twitter": "   ",
	})

	if sm.Website != "https://club.example.edu" {
		t.Errorf("Expected website preserved, got %q", sm.Website)
	}
	if sm.Facebook != Placeholder {
		t.Errorf("Expected placeholder for missing facebook, got %q", sm.Facebook)
	}
	if sm.Twitter != Placeholder {
		t.Errorf("Expected placeholder for blank twitter, got %q", sm.Twitter)
	}
	if sm.Instagram != Placeholder {
		t.Errorf("Expected placeholder for missing instagram, got %q", sm.Instagram)
	}
}

func TestNewSocialMedia_NilSource(t *testing.T) {
	sm := NewSocialMedia(nil)

	want := SocialMedia{
		Website:   Placeholder,
		Facebook:  Placeholder,
		Twitter:   Placeholder,
		Instagram: Placeholder,
	}
	if sm != want {
		t.Fatalf("Expected all placeholders, got %+v", sm)
	}
}

func TestOrganization_Values(t *testing.T) {
	org := Organization{
		ID:            "abc123",
		InstitutionID: "inst-1",
		Name:          "Chess Club",
		Description:   "",
		Email:         "chess@example.edu",
		Status:        "Active",
		Visibility:    "Public",
		Social:        NewSocialMedia(nil),
	}

	values := org.Values()
	headers := org.Headers()

	if len(values) != len(headers) {
		t.Fatalf("Expected %d values, got %d", len(headers), len(values))
	}
	if values[3] != Placeholder {
		t.Errorf("Expected placeholder for empty description, got %q", values[3])
	}
	if values[6] != "Public" {
		t.Errorf("Expected visibility 'Public', got %q", values[6])
	}
}
