package terminal

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/engine"
	"github.com/lixenwraith/zombies/input"
	"github.com/lixenwraith/zombies/render"
)

// Runner drives the frame loop against a tcell screen
type Runner struct {
	screen    tcell.Screen
	game      *engine.Game
	canvas    *render.Canvas
	presenter *Presenter
	hold      *input.HoldState
	keys      *input.KeyTable

	// OnMute is called for the mute key; nil ignores it
	OnMute func()
	// OnCrash handles a panic in the event poller; defaults to CrashHandler
	OnCrash func(r any)

	frameInterval time.Duration
}

// NewScreen creates and initializes a tcell screen
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// CrashHandler resets the terminal, prints the panic with its stack and exits
func CrashHandler(r any) {
	EmergencyReset(os.Stdout)
	// \r\n for raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mZOMBIES CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// NewRunner wires a game to an initialized screen. The canvas maps the
// logical surface to one raster pixel per 8x8 logical pixels
func NewRunner(screen tcell.Screen, game *engine.Game, sheets []image.Image, holdTimeout time.Duration) *Runner {
	opts := game.Options()
	canvas := render.NewCanvas(int(opts.Width), int(opts.Height), constants.TerminalPixelW, constants.TerminalPixelH, sheets)
	return &Runner{
		screen:        screen,
		game:          game,
		canvas:        canvas,
		presenter:     NewPresenter(screen, canvas),
		hold:          input.NewHoldState(holdTimeout),
		keys:          input.DefaultKeyTable(),
		OnCrash:       CrashHandler,
		frameInterval: constants.FrameUpdateInterval,
	}
}

// Canvas returns the raster the runner draws into
func (r *Runner) Canvas() *render.Canvas {
	return r.canvas
}

// Run processes input and frames until a quit key, ctx cancellation or screen closure
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 256)
	go r.poll(events)

	ticker := time.NewTicker(r.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !r.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			r.Step(now)
		}
	}
}

// poll feeds screen events into events; closes it when the screen finishes
func (r *Runner) poll(events chan<- tcell.Event) {
	defer func() {
		if rec := recover(); rec != nil && r.OnCrash != nil {
			r.OnCrash(rec)
		}
	}()
	defer close(events)

	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

// HandleEvent applies one screen event; returns false when the game should exit
func (r *Runner) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent, role := r.keys.Lookup(ev)
		switch intent {
		case input.IntentQuit:
			log.Printf("quit key %s", ev.Name())
			return false
		case input.IntentToggleMute:
			if r.OnMute != nil {
				r.OnMute()
			}
		case input.IntentRole:
			r.hold.Press(role, now)
		}
	case *tcell.EventResize:
		r.screen.Sync()
		if r.presenter.Resize() {
			w, h := r.screen.Size()
			log.Printf("terminal resized to %dx%d", w, h)
		}
	}
	return true
}

// Step advances one frame with the hold state at now and presents it
func (r *Runner) Step(now time.Time) {
	r.game.Frame(r.hold.Snapshot(now), r.canvas)
	r.presenter.Present()
}
