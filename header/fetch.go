package header

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
)

// DefaultSource is where the header markup is fetched from, relative to the
// current page.
const DefaultSource = "header.html"

// maxMarkupBytes caps the size of a header response.
const maxMarkupBytes = 1 << 20

// ErrMarkupTooLarge is returned for a header response over maxMarkupBytes.
var ErrMarkupTooLarge = fmt.Errorf("header markup exceeds %d bytes", maxMarkupBytes)

// Fetcher retrieves header markup.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (string, error)
}

// StatusError is returned for a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d (%s)", e.Code, e.URL)
}

// HTTPFetcher GETs paths relative to Base. Under js/wasm net/http is backed
// by the browser's fetch, so the same fetcher serves both hosts.
type HTTPFetcher struct {
	Client *http.Client
	Base   *url.URL
}

// NewHTTPFetcher returns a fetcher resolving paths against base.
// A nil client means http.DefaultClient.
func NewHTTPFetcher(client *http.Client, base *url.URL) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{Client: client, Base: base}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", path, err)
	}
	target := ref
	if f.Base != nil {
		target = f.Base.ResolveReference(ref)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", target, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: target.String(), Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMarkupBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", target, err)
	}
	if len(body) > maxMarkupBytes {
		return "", fmt.Errorf("read %s: %w", target, ErrMarkupTooLarge)
	}
	return string(body), nil
}

// FSFetcher reads header markup from a filesystem, for prerendering.
type FSFetcher struct {
	FS fs.FS
}

func (f FSFetcher) Fetch(_ context.Context, path string) (string, error) {
	b, err := fs.ReadFile(f.FS, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &StatusError{URL: path, Code: http.StatusNotFound}
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
