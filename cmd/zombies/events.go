package main

import (
	"log"

	"github.com/lixenwraith/zombies/engine"
)

// eventLog writes notable gameplay events to the debug log
type eventLog struct {
	game *engine.Game
}

func newEventLog(game *engine.Game) *eventLog {
	return &eventLog{game: game}
}

func (l *eventLog) HandleEvent(ev engine.Event) {
	st := l.game.State
	switch ev {
	case engine.EventPlayerHit:
		log.Printf("player hit: health=%d/%d", st.Health, st.MaxHealth)
	case engine.EventGameOver:
		log.Printf("game over: score=%d frames=%d", st.Score, st.FrameNumber)
	}
}
