package object

import (
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/physics"
)

// Paddle is a player's bat. X never changes; Y moves at PaddleSpeed.
type Paddle struct {
	Side Side
	X, Y float64 // Center position
	VY   float64 // One of -PaddleSpeed, 0, +PaddleSpeed
}

// NewPaddle creates a paddle resting at mid-height against its edge of the field.
func NewPaddle(side Side) Paddle {
	x := float64(config.HalfPaddleWidth)
	if side == SideRight {
		x = config.ScreenWidth - 1 - config.HalfPaddleWidth
	}
	return Paddle{
		Side: side,
		X:    x,
		Y:    config.ScreenHeight / 2,
	}
}

// Integrate moves the paddle one tick and keeps it on the field.
func (p *Paddle) Integrate() {
	p.Y += p.VY
	p.Y = physics.Clamp(p.Y, config.HalfPaddleHeight, config.ScreenHeight-config.HalfPaddleHeight)
}

// Covers reports whether a ball at height y is in front of the paddle.
// The span is half-open: the bottom edge row belongs to the gutter.
// Horizontal position is not tested here; callers check the collision zone first.
func (p *Paddle) Covers(y float64) bool {
	return physics.InSpan(y, p.Y-config.HalfPaddleHeight, p.Y+config.HalfPaddleHeight)
}

// PressVelocity returns the paddle velocity after a movement key goes down:
// up gives -PaddleSpeed, down gives +PaddleSpeed.
func PressVelocity(up bool) float64 {
	if up {
		return -config.PaddleSpeed
	}
	return config.PaddleSpeed
}

// ReleaseVelocity returns the paddle velocity after a movement key goes up.
// Velocity is only zeroed if the paddle is still moving in the released key's
// direction, so releasing W after pressing S leaves the paddle moving down.
func ReleaseVelocity(vy float64, up bool) float64 {
	if physics.Sign(vy) == physics.Sign(PressVelocity(up)) {
		return 0
	}
	return vy
}

// Bounds returns the paddle rectangle as drawn.
func (p *Paddle) Bounds() Rect {
	return Rect{
		X:      p.X - config.HalfPaddleWidth,
		Y:      p.Y - config.HalfPaddleHeight,
		Width:  config.PaddleWidth,
		Height: config.PaddleHeight,
	}
}
