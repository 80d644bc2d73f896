//go:build js && wasm

package bubblepop

import (
	"syscall/js"
)

// The page provides the header, so the game leaves that band to the DOM.
const hostDrawsHeader = false

const reducedMotionQuery = "(prefers-reduced-motion: reduce)"

// locationNavigator performs a full-page navigation in the browser.
type locationNavigator struct{}

// NewPlatformNavigator returns the navigator for this platform. Routes are
// already site-relative, so the configured base URL is ignored.
func NewPlatformNavigator(_ *Config) Navigator {
	return locationNavigator{}
}

func (locationNavigator) Navigate(target string) error {
	js.Global().Get("window").Get("location").Set("href", target)
	return nil
}

// domHeader reads the bottom edge of the page's #header element.
type domHeader struct{}

// NewPlatformHeader returns a HeaderSource backed by the DOM.
func NewPlatformHeader(_ *Config) HeaderSource {
	return domHeader{}
}

func (domHeader) HeaderBounds() HeaderBounds {
	el := js.Global().Get("document").Call("getElementById", "header")
	if el.IsNull() || el.IsUndefined() {
		return HeaderBounds{}
	}
	rect := el.Call("getBoundingClientRect")
	return HeaderBounds{Bottom: rect.Get("bottom").Float(), Present: true}
}

// WatchReducedMotion seeds m from the prefers-reduced-motion media query and
// keeps it current. The change callback runs outside the game goroutine.
func WatchReducedMotion(m *MotionPreference) (stop func()) {
	mm := js.Global().Get("window").Get("matchMedia")
	if mm.IsUndefined() {
		return func() {}
	}
	mql := js.Global().Get("window").Call("matchMedia", reducedMotionQuery)
	if mql.Get("matches").Truthy() {
		m.SetReduced(true)
	}
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			m.SetReduced(args[0].Get("matches").Truthy())
		}
		return nil
	})
	mql.Call("addEventListener", "change", cb)
	return func() {
		mql.Call("removeEventListener", "change", cb)
		cb.Release()
	}
}
