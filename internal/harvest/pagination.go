// internal/harvest/pagination.go
package harvest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// PageSet is the fixed-set pagination policy: every page descriptor to visit
// is known before the run starts.
type PageSet struct {
	urls []string
}

// NewPageSet creates a fixed page set from the given URLs.
func NewPageSet(urls []string) *PageSet {
	return &PageSet{urls: urls}
}

// URLs returns the descriptors to visit, in seed order.
func (ps *PageSet) URLs() []string {
	return ps.urls
}

// Len returns the number of descriptors in the set.
func (ps *PageSet) Len() int {
	return len(ps.urls)
}

// OffsetCursor is the offset-increment pagination policy used for paged
// search APIs. The skip offset is page*pageSize and the cursor terminates
// when a fetched page's raw item count falls below the page size. A corpus
// that is an exact multiple of the page size therefore costs one extra fetch
// of an empty page before the cursor reports completion.
type OffsetCursor struct {
	page     int
	pageSize int
	done     bool
	fetches  int
}

// NewOffsetCursor creates a cursor starting at startPage with the given page
// size.
func NewOffsetCursor(startPage, pageSize int) *OffsetCursor {
	return &OffsetCursor{page: startPage, pageSize: pageSize}
}

// Page returns the current page index.
func (c *OffsetCursor) Page() int {
	return c.page
}

// Skip returns the skip offset for the current page.
func (c *OffsetCursor) Skip() int {
	return c.page * c.pageSize
}

// Done reports whether the last page has been consumed.
func (c *OffsetCursor) Done() bool {
	return c.done
}

// Fetches returns how many listing pages have been consumed so far.
func (c *OffsetCursor) Fetches() int {
	return c.fetches
}

// Advance records the raw item count of the page just fetched and moves the
// cursor. Termination is decided on the raw payload size, never on how many
// records survive filtering.
func (c *OffsetCursor) Advance(rawCount int) {
	c.fetches++
	if rawCount < c.pageSize {
		c.done = true
		return
	}
	c.page++
}

// Endpoints derives the request URLs for a directory harvest from a base
// domain.
type Endpoints struct {
	Base string
}

// SearchURL returns the listing URL for one page of the organization search,
// ordered by upper-cased name.
func (e Endpoints) SearchURL(top, skip int) (string, error) {
	u, err := url.Parse(strings.TrimRight(e.Base, "/") + "/engage/api/discovery/search/organizations")
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	query := u.Query()
	query.Set("orderBy[0]", "UpperName asc")
	query.Set("top", strconv.Itoa(top))
	query.Set("skip", strconv.Itoa(skip))
	u.RawQuery = query.Encode()

	return u.String(), nil
}

// OrganizationURL returns the per-entity enrichment URL for the given key.
func (e Endpoints) OrganizationURL(key string) string {
	return strings.TrimRight(e.Base, "/") + "/engage/api/discovery/organization/bykey/" + url.PathEscape(key)
}
