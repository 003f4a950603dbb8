// internal/harvest/extractor_test.go
package harvest

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/valeran/harvester/internal/record"
)

const catalogPage = `
<html><body><ul>
  <li class="product" id="product-1">
    <a href="https://shop.example.com/p/1"><img src="/img/1.jpg"><h2>Widget</h2></a>
    <span class="price">$9.99</span>
  </li>
  <li class="product" id="product-2">
    <a href="https://shop.example.com/p/2"><img src="/img/2.jpg"><h2>Gadget</h2></a>
    <span class="price">$19.99</span>
  </li>
</ul></body></html>`

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse HTML: %v", err)
	}
	return doc
}

func TestListExtractor_Extract(t *testing.T) {
	doc := parseHTML(t, catalogPage)

	extractor := &ListExtractor{}
	items, errs := extractor.Extract(doc)

	if len(errs) != 0 {
		t.Fatalf("Expected no item errors, got %v", errs)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.ID != "product-1" {
		t.Errorf("Expected ID 'product-1', got %q", first.ID)
	}
	if first.URL != "https://shop.example.com/p/1" {
		t.Errorf("Unexpected URL: %q", first.URL)
	}
	if first.Image != "/img/1.jpg" {
		t.Errorf("Unexpected image: %q", first.Image)
	}
	if first.Name != "Widget" {
		t.Errorf("Unexpected name: %q", first.Name)
	}
	if first.Price != "$9.99" {
		t.Errorf("Unexpected price: %q", first.Price)
	}
}

// A malformed item is skipped without disturbing its siblings.
func TestListExtractor_MalformedItemIsIsolated(t *testing.T) {
	html := `
<html><body><ul>
  <li class="product" id="ok">
    <a href="/p/ok"><img src="/i.jpg"><h2>OK</h2></a>
    <span class="price">$1</span>
  </li>
  <li class="product" id="no-price">
    <a href="/p/bad"><img src="/i.jpg"><h2>Bad</h2></a>
  </li>
</ul></body></html>`
	doc := parseHTML(t, html)

	extractor := &ListExtractor{}
	items, errs := extractor.Extract(doc)

	if len(items) != 1 {
		t.Fatalf("Expected 1 surviving item, got %d", len(items))
	}
	if items[0].ID != "ok" {
		t.Fatalf("Expected surviving item 'ok', got %q", items[0].ID)
	}

	if len(errs) != 1 {
		t.Fatalf("Expected 1 item error, got %d", len(errs))
	}
	var mie *MalformedItemError
	if !errors.As(errs[0], &mie) {
		t.Fatalf("Expected MalformedItemError, got %T", errs[0])
	}
	if mie.Part != "price" {
		t.Fatalf("Expected missing price node, got %q", mie.Part)
	}
}

func TestListExtractor_EmptyAttributesAreNotErrors(t *testing.T) {
	// A present node with a missing attribute is an empty field, not a
	// malformed item; the placeholder policy handles it at serialization.
	html := `
<html><body>
  <li class="product">
    <a><img><h2>Bare</h2></a>
    <span class="price"></span>
  </li>
</body></html>`
	doc := parseHTML(t, html)

	extractor := &ListExtractor{}
	items, errs := extractor.Extract(doc)

	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].URL != "" || items[0].ID != "" {
		t.Fatalf("Expected empty raw fields, got %+v", items[0])
	}
	if values := items[0].Values(); values[0] != record.Placeholder {
		t.Fatalf("Expected placeholder at serialization, got %q", values[0])
	}
}

func TestListExtractor_CustomSelector(t *testing.T) {
	html := `
<html><body>
  <div class="card">
    <a href="/p/1"><img src="/i.jpg"><h2>Card</h2></a>
    <span class="price">$5</span>
  </div>
</body></html>`
	doc := parseHTML(t, html)

	extractor := &ListExtractor{ItemSelector: "div.card"}
	items, errs := extractor.Extract(doc)
	if len(errs) != 0 || len(items) != 1 {
		t.Fatalf("Expected 1 item with custom selector, got %d items, errs %v", len(items), errs)
	}
}

func decodeEntity(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("Failed to decode entity JSON: %v", err)
	}
	return doc
}

func TestExtractOrganization(t *testing.T) {
	doc := decodeEntity(t, `{
		"id": "42",
		"institutionId": "7",
		"name": "Chess Club",
		"description": "We play chess",
		"email": "chess@example.edu",
		"status": "Active",
		"visibility": "Public",
		"socialMedia": {
			"website": "https://chess.example.edu",
			"facebook": "chessclub"
		}
	}`)

	org, err := ExtractOrganization(doc)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}

	if org.ID != "42" || org.Name != "Chess Club" || org.Visibility != "Public" {
		t.Fatalf("Unexpected organization: %+v", org)
	}
	if org.Social.Website != "https://chess.example.edu" {
		t.Errorf("Unexpected website: %q", org.Social.Website)
	}
	if org.Social.Twitter != record.Placeholder || org.Social.Instagram != record.Placeholder {
		t.Errorf("Expected placeholders for absent social links, got %+v", org.Social)
	}
}

func TestExtractOrganization_MissingField(t *testing.T) {
	doc := decodeEntity(t, `{
		"id": "42",
		"name": "Chess Club",
		"description": "x",
		"email": "x",
		"status": "Active",
		"visibility": "Public"
	}`)

	_, err := ExtractOrganization(doc)
	if err == nil {
		t.Fatal("Expected error for missing institutionId")
	}

	var mfe *MissingFieldError
	if !errors.As(err, &mfe) {
		t.Fatalf("Expected MissingFieldError, got %T: %v", err, err)
	}
	if mfe.Field != "institutionId" {
		t.Fatalf("Expected missing field 'institutionId', got %q", mfe.Field)
	}
}

func TestExtractOrganization_NullFieldsBecomeEmpty(t *testing.T) {
	doc := decodeEntity(t, `{
		"id": "42",
		"institutionId": "7",
		"name": "Chess Club",
		"description": null,
		"email": null,
		"status": "Active",
		"visibility": "Public"
	}`)

	org, err := ExtractOrganization(doc)
	if err != nil {
		t.Fatalf("Null field values must not fail extraction: %v", err)
	}
	if org.Description != "" {
		t.Fatalf("Expected empty description for null, got %q", org.Description)
	}
	if org.Values()[3] != record.Placeholder {
		t.Fatal("Expected placeholder for null description at serialization")
	}
}

func TestExtractOrganization_MissingSocialMediaDefaults(t *testing.T) {
	doc := decodeEntity(t, `{
		"id": "42",
		"institutionId": "7",
		"name": "Chess Club",
		"description": "x",
		"email": "x",
		"status": "Active",
		"visibility": "Public"
	}`)

	org, err := ExtractOrganization(doc)
	if err != nil {
		t.Fatalf("Extraction failed: %v", err)
	}

	want := record.SocialMedia{
		Website:   record.Placeholder,
		Facebook:  record.Placeholder,
		Twitter:   record.Placeholder,
		Instagram: record.Placeholder,
	}
	if org.Social != want {
		t.Fatalf("Expected all social links defaulted, got %+v", org.Social)
	}
}
