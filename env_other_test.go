//go:build !js

package bubblepop

import "testing"

func TestBrowserNavigatorResolves(t *testing.T) {
	var opened []string
	n := &BrowserNavigator{
		BaseURL: "https://example.com",
		open: func(u string) error {
			opened = append(opened, u)
			return nil
		},
	}
	if err := n.Navigate("/site/social/index.html"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if len(opened) != 1 || opened[0] != "https://example.com/site/social/index.html" {
		t.Errorf("opened = %v", opened)
	}
}

func TestBrowserNavigatorBadBase(t *testing.T) {
	n := &BrowserNavigator{
		BaseURL: "://bad",
		open: func(string) error {
			t.Fatal("open should not be called")
			return nil
		},
	}
	if err := n.Navigate("/x"); err == nil {
		t.Error("expected error")
	}
}

func TestNewPlatformHeader(t *testing.T) {
	cfg := DefaultConfig()
	if b := NewPlatformHeader(cfg).HeaderBounds(); !b.Present || b.Bottom != cfg.Header.Height {
		t.Errorf("HeaderBounds = %+v", b)
	}
	cfg.Header.Height = 0
	if b := NewPlatformHeader(cfg).HeaderBounds(); b.Present {
		t.Errorf("zero-height header should be absent, got %+v", b)
	}
}
