package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/zombies/asset"
	"github.com/lixenwraith/zombies/audio"
	"github.com/lixenwraith/zombies/config"
	"github.com/lixenwraith/zombies/engine"
	"github.com/lixenwraith/zombies/terminal"
	"github.com/lixenwraith/zombies/vmath"
	"github.com/lixenwraith/zombies/window"
)

// options are the command-line overrides; set records which flags were given
type options struct {
	configPath string
	backend    string
	assetDir   string
	seed       int64
	debug      bool
	mute       bool
	set        map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	o := &options{set: make(map[string]bool)}
	fs.StringVar(&o.configPath, "config", "zombies.yaml", "YAML config file (missing file uses defaults)")
	fs.StringVar(&o.backend, "backend", config.BackendTerminal, "Display backend: terminal, window")
	fs.StringVar(&o.assetDir, "assets", "", "Directory with sprite sheets (default: embedded)")
	fs.Int64Var(&o.seed, "seed", 0, "RNG seed (0: from clock)")
	fs.BoolVar(&o.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&o.mute, "mute", false, "Start with sound muted")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// apply overlays flags the user actually passed
func (o *options) apply(cfg *config.Config) {
	if o.set["backend"] {
		cfg.Backend = o.backend
	}
	if o.set["seed"] {
		cfg.Seed = o.seed
	}
	if o.set["assets"] {
		cfg.AssetDir = o.assetDir
	}
}

// resolveSeed picks a clock seed when none is configured
func resolveSeed(seed int64, now time.Time) uint64 {
	if seed != 0 {
		return uint64(seed)
	}
	return uint64(now.UnixNano())
}

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mZOMBIES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)

	err = run(opts)

	log.Printf("shutdown: err=%v", err)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "zombies: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	seed := resolveSeed(cfg.Seed, time.Now())
	log.Printf("config: backend=%s seed=%d spawn_chance=%.3f baddie_cap=%d audio=%v volume=%.2f",
		cfg.Backend, seed, cfg.SpawnChance, cfg.BaddieCap, cfg.Audio.Enabled, cfg.Audio.MasterVolume)

	sheets, err := loadSheets(cfg)
	if err != nil {
		return err
	}

	gameOpts := engine.DefaultOptions()
	gameOpts.SpawnChance = cfg.SpawnChance
	gameOpts.BaddieCap = cfg.BaddieCap
	game := engine.NewGame(gameOpts, vmath.NewFastRand(seed))
	game.RegisterEventHandler(newEventLog(game))

	sound := audio.NewSoundManager(&cfg.Audio)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	if opts.mute {
		sound.ToggleMute()
	}
	game.RegisterEventHandler(sound)

	toggleMute := func() {
		log.Printf("muted=%v", sound.ToggleMute())
	}

	switch cfg.Backend {
	case config.BackendWindow:
		w := window.NewGame(game, sheets)
		w.OnMute = toggleMute
		return window.Run(w)
	default:
		return runTerminal(game, sheets, cfg, toggleMute)
	}
}

// loadSheets decodes the sprite sheets, failing instead of stalling past the asset timeout
func loadSheets(cfg *config.Config) ([]image.Image, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.AssetTimeout)
	defer cancel()

	start := time.Now()
	sheets, err := asset.FromDir(cfg.AssetDir).LoadSprites(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load sprites")
	}
	log.Printf("loaded %d sprite sheets in %v", len(sheets), time.Since(start))
	return sheets, nil
}

func runTerminal(game *engine.Game, sheets []image.Image, cfg *config.Config, onMute func()) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	runner := terminal.NewRunner(screen, game, sheets, cfg.HoldTimeout)
	runner.OnMute = onMute

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return errors.Wrap(err, "terminal loop")
	}
	return nil
}
