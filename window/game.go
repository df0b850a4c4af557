// Package window runs the game in a desktop window through ebiten.
package window

import (
	"image"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/engine"
	"github.com/lixenwraith/zombies/input"
	"github.com/lixenwraith/zombies/render"
)

// Game adapts engine.Game to ebiten's Update/Draw/Layout loop. Update
// advances the simulation into a Recorder; Draw replays it on the screen
type Game struct {
	game   *engine.Game
	hold   *input.HoldState
	frame  *render.Recorder
	images []image.Image
	sheets []*ebiten.Image

	// OnMute is called when the mute key goes down; nil ignores it
	OnMute func()

	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
	now         func() time.Time
}

// NewGame wraps game; sheets are uploaded on the first Draw
func NewGame(game *engine.Game, sheets []image.Image) *Game {
	return &Game{
		game:        game,
		hold:        input.NewHoldState(0),
		frame:       &render.Recorder{},
		images:      sheets,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		now:         time.Now,
	}
}

// Update polls key state and advances one frame
func (g *Game) Update() error {
	if anyKey(quitKeys, g.justPressed) {
		log.Printf("quit key")
		return ebiten.Termination
	}
	if g.justPressed(muteKey) && g.OnMute != nil {
		g.OnMute()
	}

	now := g.now()
	g.poll(now)

	g.frame.Reset()
	g.game.Frame(g.hold.Snapshot(now), g.frame)
	return nil
}

// poll copies real key state into the hold state
func (g *Game) poll(now time.Time) {
	for _, b := range roleKeys {
		g.hold.Set(b.role, anyKey(b.keys, g.pressed), now)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.sheets == nil {
		g.sheets = SheetImages(g.images)
	}
	g.frame.Replay(NewSurface(screen, g.sheets))
}

func (g *Game) Layout(_, _ int) (int, int) {
	opts := g.game.Options()
	return int(opts.Width), int(opts.Height)
}

// Run opens the window and blocks until it closes or a quit key is pressed
func Run(g *Game) error {
	opts := g.game.Options()
	ebiten.SetWindowTitle(constants.WindowTitle)
	ebiten.SetWindowSize(int(opts.Width)*constants.WindowScale, int(opts.Height)*constants.WindowScale)
	ebiten.SetTPS(constants.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}
