//go:build !js

package bubblepop

import (
	"fmt"
	"os/exec"
	"runtime"
)

// hostDrawsHeader reports whether the game draws the header band itself.
// On desktop there is no page around the canvas, so it does.
const hostDrawsHeader = true

// BrowserNavigator opens resolved routes in the system browser.
type BrowserNavigator struct {
	BaseURL string
	open    func(url string) error
}

// NewPlatformNavigator returns the navigator for this platform.
func NewPlatformNavigator(cfg *Config) Navigator {
	return &BrowserNavigator{BaseURL: cfg.Navigation.BaseURL, open: openBrowser}
}

// Navigate implements Navigator.
func (n *BrowserNavigator) Navigate(target string) error {
	u, err := resolveTarget(n.BaseURL, target)
	if err != nil {
		return err
	}
	open := n.open
	if open == nil {
		open = openBrowser
	}
	return open(u)
}

func openBrowser(u string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("bubblepop: open browser: %w", err)
	}
	go cmd.Wait() //nolint:errcheck
	return nil
}

// NewPlatformHeader returns the header boundary of the band the game draws.
func NewPlatformHeader(cfg *Config) HeaderSource {
	return StaticHeader{Bottom: cfg.Header.Height, Present: cfg.Header.Height > 0}
}

// WatchReducedMotion has nothing to watch on desktop: the preference comes
// from configuration, the environment or flags. The returned stop func is a
// no-op.
func WatchReducedMotion(_ *MotionPreference) (stop func()) {
	return func() {}
}
