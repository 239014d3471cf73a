// Package audio plays the game's sound cues.
// Playback is fire-and-forget: Play never blocks the frame and never reports errors.
package audio

import (
	"io"
	"time"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueBounce Cue = iota // Ball hit a wall or paddle
	CueScore             // A player scored
)

func (c Cue) String() string {
	if c == CueScore {
		return "score"
	}
	return "bounce"
}

// Tone describes the beep synthesized for a cue.
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Volume    float64 // 0.0 - 1.0
}

// ToneFor returns the tone for a cue: a short high beep for bounces and a
// longer low beep for scores.
func ToneFor(c Cue) Tone {
	if c == CueScore {
		return Tone{Frequency: 220, Duration: 200 * time.Millisecond, Volume: 0.3}
	}
	return Tone{Frequency: 660, Duration: 50 * time.Millisecond, Volume: 0.3}
}

// Player plays sound cues.
type Player interface {
	Play(c Cue)
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

// Bell rings the terminal bell on score cues. Bounce cues are dropped.
type Bell struct {
	W io.Writer
}

// Play writes BEL for score cues.
func (b Bell) Play(c Cue) {
	if c == CueScore && b.W != nil {
		_, _ = io.WriteString(b.W, "\a")
	}
}

var (
	_ Player = Silent{}
	_ Player = Bell{}
	_ Player = (*Speaker)(nil)
)
