package header

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vcrobe/siteheader/console"
	"github.com/vcrobe/siteheader/dom"
)

// ErrPlaceholderMissing is returned when the document has no placeholder
// element to inject the header into.
var ErrPlaceholderMissing = errors.New("header placeholder not found")

// Loader fetches header markup, injects it into the placeholder and builds a
// Header over it. The zero value with a Fetcher set uses the defaults.
type Loader struct {
	Fetcher       Fetcher
	Source        string        // defaults to DefaultSource
	PlaceholderID string        // defaults to PlaceholderID
	Timeout       time.Duration // zero means no timeout

	// Fallback injects the built-in header (Brand, Nav) when the fetch fails.
	Fallback bool
	Brand    string
	Nav      []NavItem

	Options []Option

	mu      sync.Mutex
	current *Header
}

// Load runs LoadErr and logs any failure instead of returning it.
// It returns nil when no header was installed.
func (l *Loader) Load(ctx context.Context, win dom.Window) *Header {
	h, err := l.LoadErr(ctx, win)
	switch {
	case errors.Is(err, ErrPlaceholderMissing):
		console.Warn(fmt.Sprintf(`Header placeholder not found. Make sure you have <div id="%s"></div> in your HTML.`, l.placeholderID()))
		return nil
	case err != nil:
		console.Error("Error loading header:", err)
		return nil
	}
	return h
}

// LoadErr fetches the markup, replaces the placeholder's content with it and
// returns a new Header. The Header from the previous successful load is
// destroyed once the new markup is in place. On error the document is left as it was.
func (l *Loader) LoadErr(ctx context.Context, win dom.Window) (*Header, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Fetcher == nil {
		return nil, errors.New("header loader: no fetcher configured")
	}
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	markup, err := l.Fetcher.Fetch(ctx, l.source())
	if err != nil {
		if !l.Fallback {
			return nil, err
		}
		console.Log("Falling back to direct header insertion:", err)
		if markup, err = l.fallbackMarkup(); err != nil {
			return nil, err
		}
	}

	placeholder := win.Document().GetElementByID(l.placeholderID())
	if placeholder == nil {
		return nil, fmt.Errorf("%w: #%s", ErrPlaceholderMissing, l.placeholderID())
	}

	if err := placeholder.SetInnerHTML(markup); err != nil {
		return nil, fmt.Errorf("inject header: %w", err)
	}

	if l.current != nil {
		l.current.Destroy()
	}
	l.current = New(win, l.Options...)
	return l.current, nil
}

// Current returns the Header installed by the last successful load.
func (l *Loader) Current() *Header {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Close destroys the current Header, if any.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		l.current.Destroy()
		l.current = nil
	}
}

func (l *Loader) fallbackMarkup() (string, error) {
	brand := l.Brand
	if brand == "" {
		brand = DefaultBrand
	}
	nav := l.Nav
	if nav == nil {
		nav = DefaultNav
	}
	return Markup(brand, nav)
}

func (l *Loader) source() string {
	if l.Source == "" {
		return DefaultSource
	}
	return l.Source
}

func (l *Loader) placeholderID() string {
	if l.PlaceholderID == "" {
		return PlaceholderID
	}
	return l.PlaceholderID
}
