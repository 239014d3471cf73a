// Package object holds the ball and paddle entities and their per-tick physics.
package object

// Rand is the random source used to serve the ball.
// *math/rand.Rand satisfies it; tests inject deterministic sources.
type Rand interface {
	// Intn returns a non-negative pseudo-random number in [0, n).
	Intn(n int) int
}

// Side identifies which end of the field a paddle defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Rect is an axis-aligned rectangle in logical pixels, used by renderers.
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}
