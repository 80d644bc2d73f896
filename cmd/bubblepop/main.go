// Command bubblepop runs the bubble landing page in a window, or in the
// browser when built for js/wasm.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/bubblepop"
	"github.com/phanxgames/bubblepop/sound"
)

type options struct {
	configPath    string
	seed          uint64
	width         int
	height        int
	reducedMotion bool
	scriptPath    string
	screenshotDir string
	sound         bool
	debug         bool
	showFPS       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "bubblepop",
		Short:        "Floating, poppable navigation bubbles",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "path to a TOML config file (default: XDG search)")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed; 0 seeds from the clock")
	f.IntVar(&opts.width, "width", 0, "window width in layout pixels")
	f.IntVar(&opts.height, "height", 0, "window height in layout pixels")
	f.BoolVar(&opts.reducedMotion, "reduced-motion", false, "suppress bubble rotation")
	f.StringVar(&opts.scriptPath, "script", "", "YAML or JSON input script to replay")
	f.StringVar(&opts.screenshotDir, "screenshot-dir", "screenshots", "directory for scripted screenshots")
	f.BoolVar(&opts.sound, "sound", false, "play a sound when a bubble pops")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	f.BoolVar(&opts.showFPS, "show-fps", false, "draw an FPS overlay")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	log, err := newLogger(opts.debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	var cfg *bubblepop.Config
	if opts.configPath != "" {
		cfg, err = bubblepop.LoadFromFile(opts.configPath)
	} else {
		cfg, err = bubblepop.Load()
	}
	if err != nil {
		log.Error("load config", zap.Error(err))
		return err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", zap.Error(err))
		return err
	}

	motion := bubblepop.NewMotionPreference(cfg.Accessibility.ReducedMotion)
	stopWatch := bubblepop.WatchReducedMotion(motion)
	defer stopWatch()

	var onPop func(*bubblepop.Bubble)
	if cfg.Sound.Enabled {
		player := sound.New(cfg.Sound.Volume)
		if err := player.Init(); err != nil {
			log.Warn("sound disabled", zap.Error(err))
		} else {
			defer player.Close()
			onPop = func(*bubblepop.Bubble) { player.Pop() }
		}
	}

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}

	session, err := bubblepop.NewSession(cfg, bubblepop.SessionOptions{
		Rand:      rng,
		Navigator: bubblepop.NewPlatformNavigator(cfg),
		Header:    bubblepop.NewPlatformHeader(cfg),
		Motion:    motion,
		Logger:    log.Named("session"),
		OnPop:     onPop,
	})
	if err != nil {
		log.Error("create session", zap.Error(err))
		return err
	}

	var script *bubblepop.Script
	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if script, err = bubblepop.LoadScript(data); err != nil {
			return err
		}
	}

	log.Info("starting",
		zap.Int("labels", len(cfg.Labels)),
		zap.Duration("spawn_interval", cfg.Timing.SpawnInterval.Duration),
		zap.Bool("reduced_motion", motion.Reduced()),
	)
	return bubblepop.Run(session, bubblepop.RunConfig{
		Title:          cfg.Window.Title,
		Width:          cfg.Window.Width,
		Height:         cfg.Window.Height,
		ShowFPS:        cfg.Window.ShowFPS,
		ExitOnNavigate: cfg.Navigation.ExitOnNavigate,
		Script:         script,
		ScreenshotDir:  opts.screenshotDir,
		Logger:         log.Named("game"),
	})
}

// applyFlags lets explicitly set flags override the loaded config.
func applyFlags(cmd *cobra.Command, opts *options, cfg *bubblepop.Config) {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if f.Changed("height") {
		cfg.Window.Height = opts.height
	}
	if f.Changed("reduced-motion") {
		cfg.Accessibility.ReducedMotion = opts.reducedMotion
	}
	if f.Changed("sound") {
		cfg.Sound.Enabled = opts.sound
	}
	if f.Changed("show-fps") {
		cfg.Window.ShowFPS = opts.showFPS
	}
}

// newLogger builds a console logger on a terminal and a JSON logger
// otherwise.
func newLogger(debug bool) (*zap.Logger, error) {
	var zc zap.Config
	if fd := os.Stderr.Fd(); isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
