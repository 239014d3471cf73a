package loop

import (
	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
)

// HandleEvent feeds one input event through the state machine and performs
// the full reset when the match leaves the title screen.
func (m *MatchState) HandleEvent(ev input.Event, rng object.Rand) {
	in, next := Transition(m.Intent(), m.State, ev)
	if m.State == GameStateStart && next == GameStatePlaying {
		m.reset(rng)
		m.State = next
		return
	}
	m.setIntent(in)
	m.State = next
}

// reset starts a new match: scores and winner cleared, paddles centered and
// stopped, and a ball served in a random direction.
func (m *MatchState) reset(rng object.Rand) {
	m.LeftScore = 0
	m.RightScore = 0
	m.Winner = ""
	m.Left = object.NewPaddle(object.SideLeft)
	m.Right = object.NewPaddle(object.SideRight)
	m.Ball = object.SpawnBall(rng, rng.Intn(2) == 1)
}

// Step advances a playing match by one tick: paddles, ball, walls, then the
// paddle-or-score check. It returns the sound cues raised during the tick,
// appended to cues. Matches that are not playing are left untouched.
func (m *MatchState) Step(rng object.Rand, cues []audio.Cue) []audio.Cue {
	if m.State != GameStatePlaying {
		return cues
	}

	m.Left.Integrate()
	m.Right.Integrate()
	m.Ball.Integrate()

	if m.Ball.BounceWalls() {
		cues = append(cues, audio.CueBounce)
	}

	if cue, ok := m.resolveSides(rng); ok {
		cues = append(cues, cue)
	}
	return cues
}

// resolveSides checks the ball against the collision zone it is in, if any.
// The left zone is checked first; the zones never overlap.
func (m *MatchState) resolveSides(rng object.Rand) (audio.Cue, bool) {
	for _, side := range []object.Side{object.SideLeft, object.SideRight} {
		if !m.Ball.InZone(side) {
			continue
		}
		paddle := m.Paddle(side)
		if paddle.Covers(m.Ball.Y) {
			m.Ball.Reflect(paddle)
			return audio.CueBounce, true
		}
		m.concede(side, rng)
		return audio.CueScore, true
	}
	return 0, false
}

// concede awards a point to the opponent of side. At the winning score the
// match ends; otherwise the paddles stop and the ball is served again.
//
// The serve goes toward the scorer: after a left miss the ball heads right,
// after a right miss it heads left.
func (m *MatchState) concede(side object.Side, rng object.Rand) {
	scorer := side.Opponent()

	var score *int
	label := config.Player1Label
	if scorer == object.SideLeft {
		score = &m.LeftScore
	} else {
		score = &m.RightScore
		label = config.Player2Label
	}
	*score++

	if *score >= config.WinningScore {
		m.Winner = label
		m.State = GameStateGameOver
		return
	}

	m.Left.VY = 0
	m.Right.VY = 0
	m.Ball = object.SpawnBall(rng, scorer == object.SideRight)
}
