package bubblepop

import (
	"fmt"
	"net/url"
)

// Navigator performs the full-page navigation that follows a pop. From the
// session's point of view the call is a one-shot, irreversible side effect.
type Navigator interface {
	Navigate(target string) error
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(target string) error

// Navigate implements Navigator.
func (f NavigatorFunc) Navigate(target string) error {
	return f(target)
}

// HeaderSource reports where the header overlay currently ends.
type HeaderSource interface {
	HeaderBounds() HeaderBounds
}

// StaticHeader is a HeaderSource with a fixed boundary.
type StaticHeader HeaderBounds

// HeaderBounds implements HeaderSource.
func (h StaticHeader) HeaderBounds() HeaderBounds {
	return HeaderBounds(h)
}

// resolveTarget resolves a site-relative route against base. An empty base
// returns the route unchanged.
func resolveTarget(base, route string) (string, error) {
	if base == "" {
		return route, nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("bubblepop: parse base url %q: %w", base, err)
	}
	r, err := url.Parse(route)
	if err != nil {
		return "", fmt.Errorf("bubblepop: parse route %q: %w", route, err)
	}
	return b.ResolveReference(r).String(), nil
}
