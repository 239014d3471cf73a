package loop

import (
	"github.com/tomz197/pong/internal/object"
)

// GameState is the current screen of the match.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active rally
	GameStateGameOver                  // A player reached the winning score
)

func (s GameState) String() string {
	switch s {
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "game over"
	default:
		return "start"
	}
}

// MatchState holds everything the simulation mutates.
// It is owned by a single Driver and only touched from its tick.
type MatchState struct {
	State      GameState
	Ball       object.Ball
	Left       object.Paddle
	Right      object.Paddle
	LeftScore  int
	RightScore int
	Winner     string // Empty until the match is won
}

// NewMatchState creates a match waiting on the title screen with centered
// paddles and no scores.
func NewMatchState() *MatchState {
	return &MatchState{
		State: GameStateStart,
		Left:  object.NewPaddle(object.SideLeft),
		Right: object.NewPaddle(object.SideRight),
	}
}

// Paddle returns the paddle defending side.
func (m *MatchState) Paddle(side object.Side) *object.Paddle {
	if side == object.SideLeft {
		return &m.Left
	}
	return &m.Right
}

// Intent returns the current paddle velocities.
func (m *MatchState) Intent() Intent {
	return Intent{Left: m.Left.VY, Right: m.Right.VY}
}

// setIntent writes paddle velocities back.
func (m *MatchState) setIntent(in Intent) {
	m.Left.VY = in.Left
	m.Right.VY = in.Right
}
