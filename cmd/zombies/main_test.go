package main

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/lixenwraith/zombies/config"
	"github.com/lixenwraith/zombies/engine"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("zombies", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// TestFlagsOverrideOnlyWhenSet verifies unset flags keep config values
func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-debug"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := config.Default()
	cfg.Backend = config.BackendWindow
	cfg.Seed = 5
	opts.apply(cfg)

	if cfg.Backend != config.BackendWindow {
		t.Errorf("Backend = %q, want config value kept", cfg.Backend)
	}
	if cfg.Seed != 5 {
		t.Errorf("Seed = %d, want config value kept", cfg.Seed)
	}
	if !opts.debug {
		t.Error("Expected debug flag set")
	}
}

// TestFlagsOverride verifies explicit flags win
func TestFlagsOverride(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-backend", "window", "-seed", "42", "-assets", "/tmp/sprites", "-mute"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := config.Default()
	opts.apply(cfg)

	if cfg.Backend != config.BackendWindow {
		t.Errorf("Backend = %q, want window", cfg.Backend)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.AssetDir != "/tmp/sprites" {
		t.Errorf("AssetDir = %q", cfg.AssetDir)
	}
	if !opts.mute {
		t.Error("Expected mute flag set")
	}
}

// TestBadFlag verifies unknown flags are rejected
func TestBadFlag(t *testing.T) {
	if _, err := parseFlags(newFlagSet(), []string{"-fullscreen"}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}

// TestResolveSeed verifies fixed seeds pass through and zero uses the clock
func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 123456789)
	if got := resolveSeed(9, now); got != 9 {
		t.Errorf("resolveSeed(9) = %d", got)
	}
	if got := resolveSeed(0, now); got != 123456789 {
		t.Errorf("resolveSeed(0) = %d, want clock nanos", got)
	}
}

// TestLoadSheetsEmbedded verifies the embedded sprites load within the timeout
func TestLoadSheetsEmbedded(t *testing.T) {
	sheets, err := loadSheets(config.Default())
	if err != nil {
		t.Fatalf("loadSheets: %v", err)
	}
	if len(sheets) != 5 {
		t.Errorf("Expected 5 sheets, got %d", len(sheets))
	}
}

// TestLoadSheetsMissingDir verifies a bad asset directory is an error, not a stall
func TestLoadSheetsMissingDir(t *testing.T) {
	cfg := config.Default()
	cfg.AssetDir = t.TempDir()
	if _, err := loadSheets(cfg); err == nil {
		t.Error("Expected error for directory without sprites")
	}
}

// TestEventLogHandlesAll verifies the log handler accepts every event
func TestEventLogHandlesAll(t *testing.T) {
	game := engine.NewGame(engine.DefaultOptions(), nil)
	l := newEventLog(game)
	for _, ev := range []engine.Event{engine.EventShot, engine.EventBaddieKilled, engine.EventPlayerHit, engine.EventGameOver} {
		l.HandleEvent(ev)
	}
}
