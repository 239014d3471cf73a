package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/pong/internal/input"
)

// MapKey maps an ebiten key to the game's logical key.
func MapKey(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyW:
		return input.KeyMoveUp1
	case ebiten.KeyS:
		return input.KeyMoveDown1
	case ebiten.KeyArrowUp:
		return input.KeyMoveUp2
	case ebiten.KeyArrowDown:
		return input.KeyMoveDown2
	case ebiten.KeyQ:
		return input.KeyQuit
	default:
		return input.KeyAny
	}
}

// appendEvents converts one frame of key transitions into events.
// Presses come before releases; a pressed quit key becomes a single quit event.
func appendEvents(events []input.Event, pressed, released []ebiten.Key) []input.Event {
	for _, k := range pressed {
		key := MapKey(k)
		if key == input.KeyQuit {
			return append(events, input.Quit())
		}
		events = append(events, input.KeyDown(key))
	}
	for _, k := range released {
		if key := MapKey(k); key != input.KeyQuit {
			events = append(events, input.KeyUp(key))
		}
	}
	return events
}
