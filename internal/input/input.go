// Package input turns raw key activity into the game's logical key events.
package input

// Key is a logical input recognized by the game.
// Front-ends map their own key codes to these so the game never sees them.
type Key int

const (
	KeyAny Key = iota // Any key with no gameplay meaning
	KeyMoveUp1
	KeyMoveDown1
	KeyMoveUp2
	KeyMoveDown2
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyMoveUp1:
		return "MoveUp1"
	case KeyMoveDown1:
		return "MoveDown1"
	case KeyMoveUp2:
		return "MoveUp2"
	case KeyMoveDown2:
		return "MoveDown2"
	case KeyQuit:
		return "Quit"
	default:
		return "Any"
	}
}

// Movement reports which paddle a key moves and in which direction.
// ok is false for keys that do not move a paddle.
func (k Key) Movement() (player int, up bool, ok bool) {
	switch k {
	case KeyMoveUp1:
		return 1, true, true
	case KeyMoveDown1:
		return 1, false, true
	case KeyMoveUp2:
		return 2, true, true
	case KeyMoveDown2:
		return 2, false, true
	default:
		return 0, false, false
	}
}

// EventKind identifies the type of an input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventQuit
)

// Event is one discrete input event, delivered in arrival order.
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyDown returns a key-down event for k.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// KeyUp returns a key-up event for k.
func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit, Key: KeyQuit} }
