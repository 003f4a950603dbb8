// internal/harvest/extractor.go
package harvest

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/valeran/harvester/internal/record"
)

// DefaultItemSelector matches one product entry on a catalog listing page.
const DefaultItemSelector = "li.product"

// ListExtractor turns a catalog listing document into candidate catalog
// items. A malformed item yields a MalformedItemError for that item only;
// extraction of its siblings continues.
type ListExtractor struct {
	// ItemSelector selects the item nodes. Defaults to DefaultItemSelector.
	ItemSelector string
}

func (le *ListExtractor) selector() string {
	if le.ItemSelector == "" {
		return DefaultItemSelector
	}
	return le.ItemSelector
}

// Extract returns the items that parsed cleanly plus one error per item that
// was missing an expected sub-node.
func (le *ListExtractor) Extract(doc *goquery.Document) ([]record.CatalogItem, []error) {
	var items []record.CatalogItem
	var errs []error

	doc.Find(le.selector()).Each(func(i int, s *goquery.Selection) {
		item, err := extractItem(i, s)
		if err != nil {
			errs = append(errs, err)
			return
		}
		items = append(items, item)
	})

	return items, errs
}

// extractItem pulls the first matching link, image, heading and price node
// from one item selection.
func extractItem(index int, s *goquery.Selection) (record.CatalogItem, error) {
	link := s.Find("a").First()
	if link.Length() == 0 {
		return record.CatalogItem{}, &MalformedItemError{Index: index, Part: "link"}
	}

	img := s.Find("img").First()
	if img.Length() == 0 {
		return record.CatalogItem{}, &MalformedItemError{Index: index, Part: "image"}
	}

	heading := s.Find("h2").First()
	if heading.Length() == 0 {
		return record.CatalogItem{}, &MalformedItemError{Index: index, Part: "heading"}
	}

	price := s.Find(".price").First()
	if price.Length() == 0 {
		return record.CatalogItem{}, &MalformedItemError{Index: index, Part: "price"}
	}

	id, _ := s.Attr("id")
	href, _ := link.Attr("href")
	src, _ := img.Attr("src")

	return record.CatalogItem{
		ID:    id,
		URL:   href,
		Image: src,
		Name:  heading.Text(),
		Price: price.Text(),
	}, nil
}

// requiredEntityFields are the top-level keys an entity document must carry.
var requiredEntityFields = []string{
	"id", "institutionId", "name", "description", "email", "status", "visibility",
}

// ExtractOrganization normalizes a decoded entity document. A missing
// top-level key aborts this entity with a MissingFieldError; the caller drops
// the entity and moves on.
func ExtractOrganization(doc map[string]interface{}) (record.Organization, error) {
	fields := make(map[string]string, len(requiredEntityFields))
	for _, key := range requiredEntityFields {
		raw, ok := doc[key]
		if !ok {
			return record.Organization{}, &MissingFieldError{Field: key}
		}
		fields[key] = asString(raw)
	}

	return record.Organization{
		ID:            fields["id"],
		InstitutionID: fields["institutionId"],
		Name:          fields["name"],
		Description:   fields["description"],
		Email:         fields["email"],
		Status:        fields["status"],
		Visibility:    fields["visibility"],
		Social:        record.NewSocialMedia(socialLinks(doc["socialMedia"])),
	}, nil
}

// socialLinks flattens the optional socialMedia sub-mapping to strings.
func socialLinks(raw interface{}) map[string]string {
	nested, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	links := make(map[string]string, len(nested))
	for key, value := range nested {
		links[key] = asString(value)
	}
	return links
}

// asString renders a decoded JSON value for the fixed string schema. JSON
// null becomes the empty string so the placeholder policy applies at
// serialization.
func asString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}
