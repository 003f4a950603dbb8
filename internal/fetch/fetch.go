// internal/fetch/fetch.go

// Package fetch wraps HTTP page retrieval as a pure function from page
// descriptor to parsed content. One call performs exactly one network round
// trip; there are no retries and no caching.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// TransportError reports a non-success HTTP status.
type TransportError struct {
	URL        string
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s returned %s", e.URL, e.Status)
}

// DecodeError reports a response body that could not be parsed as the
// expected format.
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Fetcher performs single-round-trip page fetches with a fixed set of
// request headers applied to every request.
type Fetcher struct {
	client  *http.Client
	headers map[string]string
}

// New creates a Fetcher that sends the given headers with every request.
// The client carries no overall timeout: a hung fetch blocks its caller.
func New(headers map[string]string) *Fetcher {
	client := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &Fetcher{
		client:  client,
		headers: headers,
	}
}

// get performs one GET round trip. The caller owns the response body on
// success; a non-2xx status yields a TransportError with the body closed.
func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	return resp, nil
}

// Document fetches the URL and parses the body as an HTML document.
func (f *Fetcher) Document(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}

	return doc, nil
}

// JSON fetches the URL and decodes the body into v.
func (f *Fetcher) JSON(ctx context.Context, url string, v interface{}) error {
	resp, err := f.get(ctx, url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &DecodeError{URL: url, Err: err}
	}

	return nil
}

// Close releases idle connections held by the underlying transport.
func (f *Fetcher) Close() {
	if transport, ok := f.client.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
