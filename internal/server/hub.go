// Package server tracks the matches hosted for remote terminal sessions.
//
// Every session owns an independent hot-seat match; the Hub only knows which
// sessions are live so it can cap them and drain them on shutdown.
package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// ErrFull is returned by Register when the session limit is reached.
var ErrFull = errors.New("server full")

// Session is one hosted match.
type Session struct {
	ID      int
	User    string
	Started time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// Context is cancelled when the session is unregistered or the hub shuts down.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Hub manages the set of live sessions.
type Hub struct {
	mu       sync.RWMutex
	sessions map[int]*Session
	nextID   int
	max      int
	closing  bool
	logger   *log.Logger

	pollInterval time.Duration
}

// NewHub creates a hub. maxSessions <= 0 means unlimited.
func NewHub(maxSessions int, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		sessions:     make(map[int]*Session),
		nextID:       1,
		max:          maxSessions,
		logger:       logger,
		pollInterval: 200 * time.Millisecond,
	}
}

// Register adds a session for user. The returned session's context derives
// from parent.
func (h *Hub) Register(parent context.Context, user string) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closing {
		return nil, context.Canceled
	}
	if h.max > 0 && len(h.sessions) >= h.max {
		return nil, ErrFull
	}

	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		ID:      h.nextID,
		User:    user,
		Started: time.Now(),
		ctx:     ctx,
		cancel:  cancel,
	}
	h.nextID++
	h.sessions[s.ID] = s

	h.logger.Info("session registered", "id", s.ID, "user", user, "live", len(h.sessions))
	return s, nil
}

// Unregister removes a session and cancels its context. Unknown ids are ignored.
func (h *Hub) Unregister(id int) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	if ok {
		delete(h.sessions, id)
	}
	live := len(h.sessions)
	h.mu.Unlock()

	if !ok {
		return
	}
	s.cancel()
	h.logger.Info("session ended", "id", id, "user", s.User,
		"duration", time.Since(s.Started).Round(time.Second), "live", live)
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Shutdown stops accepting sessions, cancels every live one and waits for
// them to unregister, up to timeout. It returns the number still live.
func (h *Hub) Shutdown(timeout time.Duration) int {
	h.mu.Lock()
	h.closing = true
	for _, s := range h.sessions {
		s.cancel()
	}
	h.mu.Unlock()

	// Wait for all sessions to unregister, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	for {
		remaining := h.Count()
		if remaining == 0 {
			return 0
		}
		select {
		case <-deadline:
			h.logger.Warn("shutdown timed out", "remaining", remaining)
			return remaining
		case <-ticker.C:
		}
	}
}
