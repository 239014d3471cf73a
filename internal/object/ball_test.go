package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/pong/internal/loop/config"
)

// seqRand returns the queued values in order, reduced modulo n.
type seqRand struct {
	vals []int
	next int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.next%len(r.vals)]
	r.next++
	return v % n
}

func TestSpawnBallRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		goRight := i%2 == 0
		b := SpawnBall(rng, goRight)

		assert.Equal(t, 300.0, b.X)
		assert.Equal(t, 200.0, b.Y)
		if goRight {
			assert.Greater(t, b.VX, 0.0)
		} else {
			assert.Less(t, b.VX, 0.0)
		}
		assert.Less(t, b.VY, 0.0, "serve always starts upward")

		vx, vy := math.Abs(b.VX), math.Abs(b.VY)
		assert.GreaterOrEqual(t, vx, 3.0)
		assert.Less(t, vx, 5.0)
		assert.GreaterOrEqual(t, vy, 1.0)
		assert.Less(t, vy, 3.0)
	}
}

func TestSpawnBallUsesRandomSource(t *testing.T) {
	b := SpawnBall(&seqRand{vals: []int{1, 1}}, true)
	assert.Equal(t, 4.0, b.VX)
	assert.Equal(t, -2.0, b.VY)

	b = SpawnBall(&seqRand{vals: []int{0, 0}}, false)
	assert.Equal(t, -3.0, b.VX)
	assert.Equal(t, -1.0, b.VY)
}

func TestIntegrateTruncatesVelocity(t *testing.T) {
	b := Ball{X: 100, Y: 100, VX: 4.2, VY: -1.9}
	b.Integrate()
	assert.Equal(t, 104.0, b.X)
	assert.Equal(t, 99.0, b.Y)

	b = Ball{X: 100, Y: 100, VX: -4.41, VY: 0.5}
	b.Integrate()
	assert.Equal(t, 96.0, b.X)
	assert.Equal(t, 100.0, b.Y, "fractional vy below one pixel does not move the ball")
}

func TestBounceWalls(t *testing.T) {
	tests := []struct {
		name   string
		ball   Ball
		bounce bool
		wantY  float64
	}{
		{"top wall", Ball{Y: 12, VY: -2}, true, config.BallRadius},
		{"exactly at top", Ball{Y: 15, VY: -1}, true, 15},
		{"bottom wall", Ball{Y: 390, VY: 2.5}, true, config.ScreenHeight - 1 - config.BallRadius},
		{"open field", Ball{Y: 200, VY: 2}, false, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.ball
			before := b.VY
			got := b.BounceWalls()
			assert.Equal(t, tt.bounce, got)
			assert.Equal(t, tt.wantY, b.Y)
			if tt.bounce {
				assert.Equal(t, -before, b.VY, "vy flips sign")
				assert.Equal(t, math.Abs(before), math.Abs(b.VY), "|vy| unchanged")
			} else {
				assert.Equal(t, before, b.VY)
			}
		})
	}
}

func TestInZone(t *testing.T) {
	assert.True(t, (&Ball{X: 23}).InZone(SideLeft))
	assert.False(t, (&Ball{X: 24}).InZone(SideLeft))
	assert.True(t, (&Ball{X: 576}).InZone(SideRight))
	assert.False(t, (&Ball{X: 575}).InZone(SideRight))
}

func TestReflectLeftPaddleStraightHit(t *testing.T) {
	p := NewPaddle(SideLeft)
	b := Ball{X: 21, Y: 200, VX: -4, VY: -1}

	b.Reflect(&p)

	assert.Equal(t, 23.0, b.X)
	assert.InDelta(t, 4.2, b.VX, 1e-9)
	assert.Equal(t, -1.0, b.VY)
}

func TestReflectDeflectsAndClampsVertical(t *testing.T) {
	p := NewPaddle(SideRight)
	p.Y = 200
	b := Ball{X: 580, Y: 239, VX: 3, VY: 2}

	b.Reflect(&p)

	require.Equal(t, 576.0, b.X)
	assert.InDelta(t, -3.15, b.VX, 1e-9)
	// 2 + 39*0.1 = 5.9, limited to |vx|
	assert.InDelta(t, 3.15, b.VY, 1e-9)
	assert.LessOrEqual(t, math.Abs(b.VY), math.Abs(b.VX))
}

func TestReflectSpeedEscalation(t *testing.T) {
	p := NewPaddle(SideLeft)
	b := Ball{X: 20, Y: 180, VX: -3, VY: 0}
	for i := 0; i < 10; i++ {
		before := math.Abs(b.VX)
		if b.VX > 0 {
			b.VX = -b.VX
		}
		b.Reflect(&p)
		assert.InDelta(t, before*1.05, math.Abs(b.VX), 1e-9)
		assert.LessOrEqual(t, math.Abs(b.VY), math.Abs(b.VX))
	}
}
