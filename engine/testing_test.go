package engine

import (
	"github.com/lixenwraith/zombies/component"
	"github.com/lixenwraith/zombies/vmath"
)

// seqRand replays values in order, repeating the last one when exhausted
type seqRand struct {
	vals []float64
	pos  int
}

func newSeqRand(vals ...float64) *seqRand {
	return &seqRand{vals: vals}
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	if r.pos >= len(r.vals) {
		return r.vals[len(r.vals)-1]
	}
	v := r.vals[r.pos]
	r.pos++
	return v
}

// quietGame returns a game whose rolls are all 0.5: no spawns, still particles
func quietGame() *Game {
	return NewGame(DefaultOptions(), newSeqRand(0.5))
}

func baddieAt(x, y float64, sprite int) component.Baddie {
	return component.Baddie{
		Rect:   vmath.Rect{X: x, Y: y, W: 32, H: 32},
		Sprite: sprite,
	}
}

type eventLog struct {
	events []Event
}

func (l *eventLog) HandleEvent(ev Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) count(ev Event) int {
	n := 0
	for _, e := range l.events {
		if e == ev {
			n++
		}
	}
	return n
}
