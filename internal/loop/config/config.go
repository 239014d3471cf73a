// Package config centralizes all game rule constants.
// None of these are runtime-configurable; deployment settings live in internal/config.
package config

import "time"

// Playfield - logical resolution in pixels.
// Renderers scale this to whatever surface they draw on.
const (
	ScreenWidth  = 600
	ScreenHeight = 400
)

// Ball
const (
	BallRadius = 15

	// Serve speed ranges, half-open [Min, Max), integer pixels per tick.
	ServeMinSpeedX = 3
	ServeMaxSpeedX = 5
	ServeMinSpeedY = 1
	ServeMaxSpeedY = 3
)

// Paddles
const (
	PaddleWidth      = 8
	PaddleHeight     = 80
	HalfPaddleWidth  = PaddleWidth / 2
	HalfPaddleHeight = PaddleHeight / 2
	PaddleSpeed      = 8
)

// Paddle hit response
const (
	PaddleHitSpeedup   = 1.05 // |vx| multiplier on every paddle bounce
	PaddleDeflection   = 0.1  // vy change per pixel of offset from paddle center
	LeftCollisionEdge  = BallRadius + PaddleWidth
	RightCollisionEdge = ScreenWidth - 1 - BallRadius - PaddleWidth
)

// Scoring
const (
	WinningScore = 5
	Player1Label = "Player 1"
	Player2Label = "Player 2"
)

// Frame timing
const (
	TargetTPS       = 60
	TargetFrameTime = time.Second / TargetTPS
)
