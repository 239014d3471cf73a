package object

import (
	"math"

	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/physics"
)

// Ball is the puck bouncing between the paddles.
// Velocity is stored as float64 because paddle hits scale and deflect it,
// but position only ever advances by whole pixels.
type Ball struct {
	X, Y   float64 // Center position
	VX, VY float64 // Velocity in pixels per tick
}

// SpawnBall serves a new ball from the center of the field.
// Horizontal speed is drawn from [ServeMinSpeedX, ServeMaxSpeedX) and points
// right when goRight is set; vertical speed is drawn from
// [ServeMinSpeedY, ServeMaxSpeedY) and always starts upward.
func SpawnBall(rng Rand, goRight bool) Ball {
	horz := config.ServeMinSpeedX + rng.Intn(config.ServeMaxSpeedX-config.ServeMinSpeedX)
	vert := config.ServeMinSpeedY + rng.Intn(config.ServeMaxSpeedY-config.ServeMinSpeedY)
	if !goRight {
		horz = -horz
	}
	return Ball{
		X:  config.ScreenWidth / 2,
		Y:  config.ScreenHeight / 2,
		VX: float64(horz),
		VY: float64(-vert),
	}
}

// Radius returns the ball radius.
func (b *Ball) Radius() float64 {
	return config.BallRadius
}

// Integrate advances the ball one tick.
// Each axis moves by its velocity truncated toward zero, so a ball moving at
// 4.2 px/tick travels exactly 4 px.
func (b *Ball) Integrate() {
	b.X += physics.Truncate(b.VX)
	b.Y += physics.Truncate(b.VY)
}

// BounceWalls reflects the ball off the top and bottom walls.
// The ball is clamped back inside the field so it cannot stick to a wall.
// Returns true if a bounce happened.
func (b *Ball) BounceWalls() bool {
	const top = config.BallRadius
	const bottom = config.ScreenHeight - 1 - config.BallRadius

	switch {
	case b.Y <= top:
		b.Y = top
	case b.Y >= bottom:
		b.Y = bottom
	default:
		return false
	}
	b.VY = -b.VY
	return true
}

// InZone reports whether the ball has reached the collision zone in front of
// the paddle defending side.
func (b *Ball) InZone(side Side) bool {
	if side == SideLeft {
		return b.X <= config.LeftCollisionEdge
	}
	return b.X >= config.RightCollisionEdge
}

// Reflect bounces the ball off paddle p.
// The ball is snapped to the zone edge, horizontal speed is reversed and
// amplified, and vertical speed is deflected by the offset from the paddle
// center and then limited to the new horizontal speed.
func (b *Ball) Reflect(p *Paddle) {
	if p.Side == SideLeft {
		b.X = config.LeftCollisionEdge
	} else {
		b.X = config.RightCollisionEdge
	}
	b.VX = -b.VX * config.PaddleHitSpeedup

	b.VY += (b.Y - p.Y) * config.PaddleDeflection
	limit := math.Abs(b.VX)
	b.VY = physics.Clamp(b.VY, -limit, limit)
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() Rect {
	r := b.Radius()
	return Rect{X: b.X - r, Y: b.Y - r, Width: 2 * r, Height: 2 * r}
}
