package engine

// Event is a gameplay notification emitted during a frame
type Event uint8

const (
	EventShot Event = iota
	EventBaddieKilled
	EventPlayerHit
	EventGameOver
)

var eventNames = [...]string{"shot", "baddie_killed", "player_hit", "game_over"}

func (e Event) String() string {
	if int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}

// EventHandler receives gameplay events synchronously on the frame goroutine
type EventHandler interface {
	HandleEvent(ev Event)
}

// EventHandlerFunc adapts a function to EventHandler
type EventHandlerFunc func(ev Event)

func (f EventHandlerFunc) HandleEvent(ev Event) { f(ev) }
