package loop

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
)

// zeroRand always returns 0: serves go left at (-3, -1).
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func playingMatch() *MatchState {
	m := NewMatchState()
	m.HandleEvent(input.KeyDown(input.KeyAny), zeroRand{})
	return m
}

func TestNewMatchState(t *testing.T) {
	m := NewMatchState()
	assert.Equal(t, GameStateStart, m.State)
	assert.Zero(t, m.LeftScore)
	assert.Zero(t, m.RightScore)
	assert.Empty(t, m.Winner)
	assert.Equal(t, 200.0, m.Left.Y)
	assert.Equal(t, 200.0, m.Right.Y)
}

func TestStartPerformsFullReset(t *testing.T) {
	m := NewMatchState()
	m.LeftScore, m.RightScore, m.Winner = 3, 5, config.Player2Label
	m.Left.Y = 50
	m.Right.VY = 8

	m.HandleEvent(input.KeyDown(input.KeyMoveDown1), zeroRand{})

	assert.Equal(t, GameStatePlaying, m.State)
	assert.Zero(t, m.LeftScore)
	assert.Zero(t, m.RightScore)
	assert.Empty(t, m.Winner)
	assert.Equal(t, 200.0, m.Left.Y)
	assert.Zero(t, m.Left.VY)
	assert.Zero(t, m.Right.VY)
	assert.Equal(t, object.Ball{X: 300, Y: 200, VX: -3, VY: -1}, m.Ball)
}

func TestMultipleKeysOnStartResetOnce(t *testing.T) {
	m := NewMatchState()
	m.HandleEvent(input.KeyDown(input.KeyAny), zeroRand{})
	m.LeftScore = 2
	m.HandleEvent(input.KeyDown(input.KeyAny), zeroRand{})
	m.HandleEvent(input.KeyDown(input.KeyMoveUp1), zeroRand{})

	assert.Equal(t, GameStatePlaying, m.State)
	assert.Equal(t, 2, m.LeftScore, "only the first key resets the match")
	assert.Equal(t, -8.0, m.Left.VY, "later keys are paddle input")
}

func TestGameOverReturnsToStartWithoutReset(t *testing.T) {
	m := NewMatchState()
	m.State = GameStateGameOver
	m.LeftScore = 5
	m.Winner = config.Player1Label

	m.HandleEvent(input.KeyDown(input.KeyAny), zeroRand{})

	assert.Equal(t, GameStateStart, m.State)
	assert.Equal(t, 5, m.LeftScore)
	assert.Equal(t, config.Player1Label, m.Winner)
}

func TestStepIgnoredOutsidePlaying(t *testing.T) {
	for _, s := range []GameState{GameStateStart, GameStateGameOver} {
		m := NewMatchState()
		m.State = s
		m.Ball = object.Ball{X: 100, Y: 100, VX: 4, VY: 2}
		m.Left.VY = 8

		cues := m.Step(zeroRand{}, nil)

		assert.Empty(t, cues)
		assert.Equal(t, 100.0, m.Ball.X)
		assert.Equal(t, 200.0, m.Left.Y)
	}
}

func TestStepOrderPaddleThenBall(t *testing.T) {
	m := playingMatch()
	m.Ball = object.Ball{X: 100, Y: 100, VX: 4.7, VY: -2.2}
	m.Left.VY = 8

	cues := m.Step(zeroRand{}, nil)

	assert.Empty(t, cues)
	assert.Equal(t, 208.0, m.Left.Y)
	assert.Equal(t, 104.0, m.Ball.X)
	assert.Equal(t, 98.0, m.Ball.Y)
}

func TestStepWallBounce(t *testing.T) {
	m := playingMatch()
	m.Ball = object.Ball{X: 300, Y: 16, VX: 3, VY: -2}

	cues := m.Step(zeroRand{}, nil)

	assert.Equal(t, []audio.Cue{audio.CueBounce}, cues)
	assert.Equal(t, 15.0, m.Ball.Y)
	assert.Equal(t, 2.0, m.Ball.VY)
}

// Left paddle at y=200, ball at (23,200) moving left at vx=-4.
func TestScenarioLeftPaddleBounce(t *testing.T) {
	m := playingMatch()
	m.Ball = object.Ball{X: 23, Y: 200, VX: -4, VY: 0}

	cue, ok := m.resolveSides(zeroRand{})

	require.True(t, ok)
	assert.Equal(t, audio.CueBounce, cue)
	assert.InDelta(t, 4.2, m.Ball.VX, 1e-9)
	assert.Equal(t, 23.0, m.Ball.X)
	assert.Zero(t, m.LeftScore+m.RightScore)
}

// Right paddle at y=50, ball at (577,390): a miss.
func TestScenarioRightPaddleMiss(t *testing.T) {
	m := playingMatch()
	m.Right.Y = 50
	m.Left.VY = -8
	m.Right.VY = 8
	m.Ball = object.Ball{X: 577, Y: 390, VX: 5, VY: 1}

	cue, ok := m.resolveSides(zeroRand{})

	require.True(t, ok)
	assert.Equal(t, audio.CueScore, cue)
	assert.Equal(t, 1, m.LeftScore)
	assert.Zero(t, m.RightScore)
	assert.Less(t, m.Ball.VX, 0.0, "served toward the left scorer")
	assert.Equal(t, 300.0, m.Ball.X)
	assert.Zero(t, m.Left.VY, "paddles stop after a point")
	assert.Zero(t, m.Right.VY)
	assert.Equal(t, GameStatePlaying, m.State)
}

func TestLeftMissServesRight(t *testing.T) {
	m := playingMatch()
	m.Left.Y = 350
	m.Ball = object.Ball{X: 20, Y: 100, VX: -4, VY: 1}

	cue, ok := m.resolveSides(zeroRand{})

	require.True(t, ok)
	assert.Equal(t, audio.CueScore, cue)
	assert.Equal(t, 1, m.RightScore)
	assert.Greater(t, m.Ball.VX, 0.0)
}

// l_score reaching 5 ends the match and freezes the field.
func TestScenarioLeftWins(t *testing.T) {
	m := playingMatch()
	m.LeftScore = 4
	m.Right.Y = 50
	m.Ball = object.Ball{X: 577, Y: 390, VX: 5, VY: 1}

	m.resolveSides(zeroRand{})

	assert.Equal(t, 5, m.LeftScore)
	assert.Equal(t, "Player 1", m.Winner)
	assert.Equal(t, GameStateGameOver, m.State)

	ball := m.Ball
	m.Left.VY = 8
	for i := 0; i < 10; i++ {
		assert.Empty(t, m.Step(zeroRand{}, nil))
	}
	assert.Equal(t, ball, m.Ball)
	assert.Equal(t, 200.0, m.Left.Y)
}

func TestRightWinsAtThreshold(t *testing.T) {
	m := playingMatch()
	m.RightScore = 4
	m.Left.Y = 350
	m.Ball = object.Ball{X: 20, Y: 100, VX: -4, VY: 1}

	m.resolveSides(zeroRand{})

	assert.Equal(t, "Player 2", m.Winner)
	assert.Equal(t, GameStateGameOver, m.State)
}

func TestNoScoreOutsideZones(t *testing.T) {
	m := playingMatch()
	m.Left.Y = 350
	m.Right.Y = 50
	m.Ball = object.Ball{X: 24, Y: 100}
	_, ok := m.resolveSides(zeroRand{})
	assert.False(t, ok)

	m.Ball = object.Ball{X: 575, Y: 390}
	_, ok = m.resolveSides(zeroRand{})
	assert.False(t, ok)
	assert.Zero(t, m.LeftScore+m.RightScore)
}

// Random full matches: the invariants hold on every tick.
func TestSimulatedMatchInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := NewMatchState()
	m.HandleEvent(input.KeyDown(input.KeyAny), rng)

	keys := []input.Key{input.KeyMoveUp1, input.KeyMoveDown1, input.KeyMoveUp2, input.KeyMoveDown2}
	for tick := 0; tick < 20000 && m.State == GameStatePlaying; tick++ {
		if tick%15 == 0 {
			k := keys[rng.Intn(len(keys))]
			if rng.Intn(2) == 0 {
				m.HandleEvent(input.KeyDown(k), rng)
			} else {
				m.HandleEvent(input.KeyUp(k), rng)
			}
		}

		before := m.Ball
		prevLeft, prevRight := m.LeftScore, m.RightScore
		cues := m.Step(rng, nil)

		for _, p := range []object.Paddle{m.Left, m.Right} {
			assert.GreaterOrEqual(t, p.Y, float64(config.HalfPaddleHeight))
			assert.LessOrEqual(t, p.Y, float64(config.ScreenHeight-config.HalfPaddleHeight))
		}

		scored := m.LeftScore != prevLeft || m.RightScore != prevRight
		if scored {
			assert.Contains(t, cues, audio.CueScore)
			assert.Equal(t, 1, m.LeftScore+m.RightScore-prevLeft-prevRight)
		} else if m.Ball.VX*before.VX < 0 {
			// Paddle bounce
			assert.InDelta(t, math.Abs(before.VX)*1.05, math.Abs(m.Ball.VX), 1e-9)
			assert.LessOrEqual(t, math.Abs(m.Ball.VY), math.Abs(m.Ball.VX)+1e-9)
		}

		if m.State == GameStatePlaying {
			assert.GreaterOrEqual(t, m.Ball.Y, float64(config.BallRadius))
			assert.LessOrEqual(t, m.Ball.Y, float64(config.ScreenHeight-1-config.BallRadius))
		}
	}

	switch {
	case m.LeftScore >= config.WinningScore:
		assert.Equal(t, GameStateGameOver, m.State)
		assert.Equal(t, config.Player1Label, m.Winner)
	case m.RightScore >= config.WinningScore:
		assert.Equal(t, GameStateGameOver, m.State)
		assert.Equal(t, config.Player2Label, m.Winner)
	default:
		assert.Equal(t, GameStatePlaying, m.State)
		assert.Empty(t, m.Winner)
	}
}
