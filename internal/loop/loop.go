// Package loop provides the match simulation and the fixed-rate frame driver.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomz197/pong/internal/audio"
	"github.com/tomz197/pong/internal/input"
	"github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/object"
)

// ErrIdleTimeout is returned by Run when no input arrived within the idle timeout.
var ErrIdleTimeout = errors.New("idle timeout")

// EventSource produces the input events that arrived since the last poll.
type EventSource interface {
	Poll() []input.Event
}

// Renderer draws the match. It is called once per tick in every state.
type Renderer interface {
	Render(m *MatchState) error
}

// Options configures a Driver.
type Options struct {
	Rand        object.Rand   // Serve randomness; required
	Audio       audio.Player  // Defaults to audio.Silent
	FrameTime   time.Duration // Defaults to config.TargetFrameTime
	IdleTimeout time.Duration // Zero disables the idle check
}

// Driver runs the Input → Update → Draw cycle for one match.
type Driver struct {
	match     *MatchState
	source    EventSource
	renderer  Renderer
	rng       object.Rand
	audio     audio.Player
	frameTime time.Duration
	idle      time.Duration
	cues      []audio.Cue // Reused per tick
}

// NewDriver creates a driver for a fresh match on the title screen.
// source and renderer may be nil when the caller feeds Update and draws
// the match itself, as the window front-end does.
func NewDriver(source EventSource, renderer Renderer, opts Options) *Driver {
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.FrameTime <= 0 {
		opts.FrameTime = config.TargetFrameTime
	}
	return &Driver{
		match:     NewMatchState(),
		source:    source,
		renderer:  renderer,
		rng:       opts.Rand,
		audio:     opts.Audio,
		frameTime: opts.FrameTime,
		idle:      opts.IdleTimeout,
	}
}

// Match returns the match owned by the driver.
func (d *Driver) Match() *MatchState {
	return d.match
}

// Update runs one tick of simulation for the given events.
// Events are applied in order; a quit event stops the tick immediately and
// Update returns false. Otherwise a playing match advances one step and
// any cues raised are played.
func (d *Driver) Update(events []input.Event) bool {
	for _, ev := range events {
		if ev.Kind == input.EventQuit {
			return false
		}
		d.match.HandleEvent(ev, d.rng)
	}

	d.cues = d.match.Step(d.rng, d.cues[:0])
	for _, cue := range d.cues {
		d.audio.Play(cue)
	}
	return true
}

// Run drives the match at a fixed rate until the player quits, the context
// is cancelled, or the idle timeout elapses. Quitting returns nil.
func (d *Driver) Run(ctx context.Context) error {
	lastInput := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := time.Now()

		// ===== INPUT PHASE =====
		events := d.source.Poll()
		if len(events) > 0 {
			lastInput = frameStart
		} else if d.idle > 0 && frameStart.Sub(lastInput) > d.idle {
			return ErrIdleTimeout
		}

		// ===== UPDATE PHASE =====
		if !d.Update(events) {
			return nil
		}

		// ===== DRAW PHASE =====
		if err := d.renderer.Render(d.match); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < d.frameTime {
			time.Sleep(d.frameTime - elapsed)
		}
	}
}
