package bubblepop

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Timing.SpawnInterval.Duration != 3*time.Second {
		t.Errorf("SpawnInterval = %v, want 3s", cfg.Timing.SpawnInterval)
	}
	if cfg.Timing.FloatDuration.Duration != 15*time.Second {
		t.Errorf("FloatDuration = %v, want 15s", cfg.Timing.FloatDuration)
	}
	if cfg.Size.MinRadius != 60 || cfg.Size.MaxRadius != 80 {
		t.Errorf("radius range = [%v, %v], want [60, 80]", cfg.Size.MinRadius, cfg.Size.MaxRadius)
	}
	if len(cfg.Labels) != 5 {
		t.Fatalf("len(Labels) = %d, want 5", len(cfg.Labels))
	}
	want := []string{"Resume", "Projects", "Photography", "Social", "Surprise Me"}
	for i, l := range cfg.Labels {
		if l.Name != want[i] {
			t.Errorf("Labels[%d] = %q, want %q", i, l.Name, want[i])
		}
	}
	if !cfg.Labels[4].Surprise {
		t.Error("Surprise Me should be a surprise label")
	}
	if cfg.Labels[1].Route != "/helen-website-bubbles/projects/index.html" {
		t.Errorf("Projects route = %q", cfg.Labels[1].Route)
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"300ms", 300 * time.Millisecond, false},
		{"15s", 15 * time.Second, false},
		{"", 0, false},
		{"-1s", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		var d Duration
		err := d.UnmarshalText([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && d.Duration != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, d.Duration, tt.want)
		}
	}
}

func TestLoadFromReaderOverrides(t *testing.T) {
	doc := `
[timing]
spawn_interval = "1s"
pop_duration = "600ms"

[size]
min_radius = 40
max_radius = 40

[colors.sky]
top = "#000000"

[header]
height = 0
`
	cfg, err := LoadFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Timing.SpawnInterval.Duration != time.Second {
		t.Errorf("SpawnInterval = %v, want 1s", cfg.Timing.SpawnInterval)
	}
	if cfg.Timing.PopDuration.Duration != 600*time.Millisecond {
		t.Errorf("PopDuration = %v, want 600ms", cfg.Timing.PopDuration)
	}
	if cfg.Timing.FloatDuration.Duration != 15*time.Second {
		t.Errorf("FloatDuration = %v, want default 15s", cfg.Timing.FloatDuration)
	}
	if cfg.Size.MinRadius != 40 || cfg.Size.MaxRadius != 40 {
		t.Errorf("radius = [%v, %v], want [40, 40]", cfg.Size.MinRadius, cfg.Size.MaxRadius)
	}
	if cfg.Colors.Sky.Top != (Color{0, 0, 0, 1}) {
		t.Errorf("Sky.Top = %v, want black", cfg.Colors.Sky.Top)
	}
	if cfg.Colors.Sky.Bottom != DefaultConfig().Colors.Sky.Bottom {
		t.Errorf("Sky.Bottom changed: %v", cfg.Colors.Sky.Bottom)
	}
	if cfg.Header.Height != 0 {
		t.Errorf("Header.Height = %v, want 0", cfg.Header.Height)
	}
	if len(cfg.Labels) != 5 {
		t.Errorf("labels not in the document should keep the defaults, got %d", len(cfg.Labels))
	}
}

func TestLoadFromReaderLabelsReplaceDefaults(t *testing.T) {
	doc := `
[[labels]]
name = "Blog"
route = "/blog/"

[[labels]]
name = "Lucky"
surprise = true
`
	cfg, err := LoadFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if len(cfg.Labels) != 2 {
		t.Fatalf("len(Labels) = %d, want 2", len(cfg.Labels))
	}
	if cfg.Labels[0] != (Label{Name: "Blog", Route: "/blog/"}) {
		t.Errorf("Labels[0] = %+v", cfg.Labels[0])
	}
	if !cfg.Labels[1].Surprise {
		t.Errorf("Labels[1] = %+v, want surprise", cfg.Labels[1])
	}
}

func TestLoadFromReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", "[timing]\nspawn_every = \"1s\"\n", ErrInvalidConfig},
		{"zero duration", "[timing]\npop_duration = \"0s\"\n", ErrInvalidConfig},
		{"radius range", "[size]\nmin_radius = 90\n", ErrInvalidConfig},
		{"pop scale", "[physics]\npop_scale = 0.5\n", ErrInvalidConfig},
		{"volume", "[sound]\nvolume = 2.0\n", ErrInvalidConfig},
		{"only surprise", "[[labels]]\nname = \"Lucky\"\nsurprise = true\n", ErrNoRoutes},
		{"missing route", "[[labels]]\nname = \"Blog\"\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadFromReaderSyntaxError(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("[timing\n")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Timing.SpawnInterval != DefaultConfig().Timing.SpawnInterval {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[window]\ntitle = \"hi\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Window.Title != "hi" {
		t.Errorf("Window.Title = %q, want hi", cfg.Window.Title)
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "bubblepop"), 0o755); err != nil {
		t.Fatal(err)
	}
	doc := "[navigation]\nbase_url = \"https://example.org\"\n"
	if err := os.WriteFile(filepath.Join(dir, "bubblepop", "config.toml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Navigation.BaseURL != "https://example.org" {
		t.Errorf("BaseURL = %q", cfg.Navigation.BaseURL)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BUBBLEPOP_BASE_URL", "https://helen.example")
	t.Setenv("BUBBLEPOP_REDUCED_MOTION", "true")
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Navigation.BaseURL != "https://helen.example" {
		t.Errorf("BaseURL = %q", cfg.Navigation.BaseURL)
	}
	if !cfg.Accessibility.ReducedMotion {
		t.Error("ReducedMotion should be set from the environment")
	}
}
