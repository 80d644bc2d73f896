package bubblepop

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Sentinel errors returned by configuration validation and route lookup.
var (
	ErrInvalidConfig = errors.New("bubblepop: invalid config")
	ErrNoLabels      = errors.New("bubblepop: label sequence is empty")
	ErrNoRoutes      = errors.New("bubblepop: no label carries a route")
	ErrUnknownLabel  = errors.New("bubblepop: unknown label")
)

// Duration wraps time.Duration with TOML-friendly string parsing.
// Supports standard Go duration strings: "300ms", "3s", "15s", etc.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full set of tunables consumed by the session, the bubbles
// and the host adapter.
type Config struct {
	Timing        TimingConfig        `toml:"timing"`
	Size          SizeConfig          `toml:"size"`
	Physics       PhysicsConfig       `toml:"physics"`
	Colors        ColorConfig         `toml:"colors"`
	Labels        []Label             `toml:"labels"`
	Navigation    NavigationConfig    `toml:"navigation"`
	Header        HeaderConfig        `toml:"header"`
	Window        WindowConfig        `toml:"window"`
	Accessibility AccessibilityConfig `toml:"accessibility"`
	Sound         SoundConfig         `toml:"sound"`
}

// TimingConfig holds the animation clock constants.
type TimingConfig struct {
	SpawnInterval Duration `toml:"spawn_interval"`
	FloatDuration Duration `toml:"float_duration"`
	PopDuration   Duration `toml:"pop_duration"`
	FadeDuration  Duration `toml:"fade_duration"`
	PulsePeriod   Duration `toml:"pulse_period"`
}

// SizeConfig bounds bubble radii and spawn placement.
type SizeConfig struct {
	MinRadius float64 `toml:"min_radius"`
	MaxRadius float64 `toml:"max_radius"`
	// SpawnMargin is added to the radius to keep spawn positions away from
	// the left and right viewport edges.
	SpawnMargin  float64 `toml:"spawn_margin"`
	HitTolerance float64 `toml:"hit_tolerance"`
}

// PhysicsConfig shapes the floating motion.
type PhysicsConfig struct {
	OscillationAmplitude float64 `toml:"oscillation_amplitude"` // px
	OscillationCycles    float64 `toml:"oscillation_cycles"`    // per float duration
	WobbleAmplitude      float64 `toml:"wobble_amplitude"`      // degrees
	WobbleCycles         float64 `toml:"wobble_cycles"`         // per float duration
	PulseAmplitude       float64 `toml:"pulse_amplitude"`
	HoverScale           float64 `toml:"hover_scale"`
	PopScale             float64 `toml:"pop_scale"`
}

// SkyColors is the page background gradient.
type SkyColors struct {
	Top    Color `toml:"top"`
	Mid    Color `toml:"mid"`
	Bottom Color `toml:"bottom"`
}

// BubbleColors are the stops of the bubble body layers.
type BubbleColors struct {
	BaseLight Color `toml:"base_light"`
	BaseMid   Color `toml:"base_mid"`
	BaseDark  Color `toml:"base_dark"`
	Highlight Color `toml:"highlight"`
	Edge      Color `toml:"edge"`
}

// MetallicColors are the label gradient stops, also used for the focus ring.
type MetallicColors struct {
	Start Color `toml:"start"`
	Mid   Color `toml:"mid"`
	End   Color `toml:"end"`
}

// ColorConfig groups every color table.
type ColorConfig struct {
	Sky      SkyColors      `toml:"sky"`
	Bubble   BubbleColors   `toml:"bubble"`
	Metallic MetallicColors `toml:"metallic"`
}

// NavigationConfig controls how resolved routes are turned into navigations.
type NavigationConfig struct {
	// BaseURL is prefixed to routes by the desktop navigator. Ignored in the
	// browser, where routes are already site-relative.
	BaseURL        string `toml:"base_url"`
	ExitOnNavigate bool   `toml:"exit_on_navigate"`
}

// HeaderConfig describes the fixed overlay band at the top of the desktop
// window. A zero Height means no header.
type HeaderConfig struct {
	Title  string  `toml:"title"`
	Height float64 `toml:"height"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	ShowFPS bool   `toml:"show_fps"`
}

// AccessibilityConfig controls the keyboard path and motion preference.
type AccessibilityConfig struct {
	Controls      bool `toml:"controls"`
	ReducedMotion bool `toml:"reduced_motion"`
}

// SoundConfig controls the optional pop sound.
type SoundConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // in [0, 1]
}

const siteBase = "/helen-website-bubbles"

// DefaultConfig returns the configuration the landing page ships with.
func DefaultConfig() *Config {
	return &Config{
		Timing: TimingConfig{
			SpawnInterval: Duration{3000 * time.Millisecond},
			FloatDuration: Duration{15000 * time.Millisecond},
			PopDuration:   Duration{300 * time.Millisecond},
			FadeDuration:  Duration{500 * time.Millisecond},
			PulsePeriod:   Duration{3000 * time.Millisecond},
		},
		Size: SizeConfig{
			MinRadius:    60,
			MaxRadius:    80,
			SpawnMargin:  50,
			HitTolerance: 5,
		},
		Physics: PhysicsConfig{
			OscillationAmplitude: 40,
			OscillationCycles:    2.5,
			WobbleAmplitude:      5,
			WobbleCycles:         2,
			PulseAmplitude:       0.02,
			HoverScale:           1.08,
			PopScale:             1.3,
		},
		Colors: ColorConfig{
			Sky: SkyColors{
				Top:    MustParseColor("#87CEEB"),
				Mid:    MustParseColor("#B0E0F6"),
				Bottom: MustParseColor("#E0F4FF"),
			},
			Bubble: BubbleColors{
				BaseLight: MustParseColor("rgba(255, 255, 255, 0.4)"),
				BaseMid:   MustParseColor("rgba(127, 219, 255, 0.3)"),
				BaseDark:  MustParseColor("rgba(221, 160, 221, 0.2)"),
				Highlight: MustParseColor("rgba(255, 255, 255, 0.8)"),
				Edge:      MustParseColor("rgba(255, 255, 255, 0.3)"),
			},
			Metallic: MetallicColors{
				Start: MustParseColor("#FF69B4"),
				Mid:   MustParseColor("#00CED1"),
				End:   MustParseColor("#9370DB"),
			},
		},
		Labels: []Label{
			{Name: "Resume", Route: siteBase + "/resume/index.html"},
			{Name: "Projects", Route: siteBase + "/projects/index.html"},
			{Name: "Photography", Route: siteBase + "/photography/index.html"},
			{Name: "Social", Route: siteBase + "/social/index.html"},
			{Name: "Surprise Me", Surprise: true},
		},
		Navigation: NavigationConfig{
			BaseURL: "http://localhost:5173",
		},
		Header: HeaderConfig{
			Title:  "Helen",
			Height: 96,
		},
		Window: WindowConfig{
			Title:  "bubbles",
			Width:  1024,
			Height: 768,
		},
		Accessibility: AccessibilityConfig{
			Controls: true,
		},
		Sound: SoundConfig{
			Volume: 0.5,
		},
	}
}

// Validate reports the first inconsistency in the configuration.
func (c *Config) Validate() error {
	t := c.Timing
	for _, d := range []struct {
		name string
		v    Duration
	}{
		{"timing.spawn_interval", t.SpawnInterval},
		{"timing.float_duration", t.FloatDuration},
		{"timing.pop_duration", t.PopDuration},
		{"timing.fade_duration", t.FadeDuration},
		{"timing.pulse_period", t.PulsePeriod},
	} {
		if d.v.Duration <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, d.name)
		}
	}
	if c.Size.MinRadius <= 0 || c.Size.MaxRadius < c.Size.MinRadius {
		return fmt.Errorf("%w: size radius range [%v, %v]", ErrInvalidConfig, c.Size.MinRadius, c.Size.MaxRadius)
	}
	if c.Size.SpawnMargin < 0 || c.Size.HitTolerance < 0 {
		return fmt.Errorf("%w: size margins must not be negative", ErrInvalidConfig)
	}
	if c.Physics.PopScale < 1 {
		return fmt.Errorf("%w: physics.pop_scale %v below 1", ErrInvalidConfig, c.Physics.PopScale)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound.volume %v outside [0, 1]", ErrInvalidConfig, c.Sound.Volume)
	}
	_, err := NewRouteTable(c.Labels)
	return err
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/bubblepop/config.toml
//  2. ~/.config/bubblepop/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys absent from the
// document keep their defaults; a [[labels]] list replaces the default
// sequence as a whole. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Labels
	cfg.Labels = nil

	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if len(cfg.Labels) == 0 {
		cfg.Labels = defaults
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BUBBLEPOP_BASE_URL"); v != "" {
		cfg.Navigation.BaseURL = v
	}
	if v := os.Getenv("BUBBLEPOP_REDUCED_MOTION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Accessibility.ReducedMotion = b
		}
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "bubblepop", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "bubblepop", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
