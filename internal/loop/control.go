package loop

import (
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/object"
)

// Intent is the pair of paddle velocities requested by the players' keys.
type Intent struct {
	Left, Right float64
}

// Transition applies one input event to the paddle intent and game state.
// It is pure: resets and other side effects of a transition are left to the
// caller, which compares the returned state with the one it passed in.
//
//	Start    --key down--> Playing
//	Playing  --movement key down/up--> Playing (velocity change)
//	GameOver --key down--> Start
//
// Every other event leaves both values unchanged. Quit is not handled here.
func Transition(in Intent, state GameState, ev input.Event) (Intent, GameState) {
	switch state {
	case GameStateStart:
		if ev.Kind == input.EventKeyDown {
			return in, GameStatePlaying
		}
	case GameStateGameOver:
		if ev.Kind == input.EventKeyDown {
			return in, GameStateStart
		}
	case GameStatePlaying:
		player, up, ok := ev.Key.Movement()
		if !ok {
			return in, state
		}
		vel := &in.Left
		if player == 2 {
			vel = &in.Right
		}
		switch ev.Kind {
		case input.EventKeyDown:
			*vel = object.PressVelocity(up)
		case input.EventKeyUp:
			*vel = object.ReleaseVelocity(*vel, up)
		}
	}
	return in, state
}
