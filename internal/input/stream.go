package input

import (
	"bufio"
	"time"
)

// Terminals report key presses as bytes and never report releases, so a key
// is considered held until it stops auto-repeating. Until the first repeat
// arrives the key is held for initialHold, which covers the terminal's
// auto-repeat delay; after that each repeat extends the hold by repeatHold.
const (
	initialHold = 300 * time.Millisecond
	repeatHold  = 80 * time.Millisecond
)

// arrowBase offsets CSI arrow codes from plain byte codes.
const arrowBase = 0x100

// Raw key codes for cursor keys (ESC [ A .. ESC [ D, or ESC O A in application mode).
const (
	codeArrowUp   = arrowBase + 'A'
	codeArrowDown = arrowBase + 'B'
)

// heldKey tracks a raw key that has been pressed and not yet released.
type heldKey struct {
	code     int
	key      Key
	last     time.Time
	repeated bool
}

func (h heldKey) expired(now time.Time) bool {
	hold := initialHold
	if h.repeated {
		hold = repeatHold
	}
	return now.Sub(h.last) >= hold
}

// Stream delivers terminal input as logical key events.
// A goroutine reads bytes from the terminal into a channel; Poll drains it
// without blocking once per frame.
type Stream struct {
	ch     chan byte
	held   []heldKey
	closed bool
	now    func() time.Time
}

func newStream() *Stream {
	return &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// When r returns an error (EOF, closed session) the stream emits a quit event.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll returns the events that arrived since the previous call, in order.
// It never blocks.
func (s *Stream) Poll() []Event {
	buf, open := s.drain()
	events := s.feed(buf, s.now())
	if !open && !s.closed {
		s.closed = true
		events = append(events, Quit())
	}
	return events
}

// drain collects all pending bytes. open is false once the reader has stopped.
func (s *Stream) drain() (buf []byte, open bool) {
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return buf, false
			}
			buf = append(buf, b)
		default:
			return buf, true
		}
	}
}

// feed parses raw bytes received at now into events and releases keys whose
// hold has run out.
func (s *Stream) feed(buf []byte, now time.Time) []Event {
	var events []Event

	for i := 0; i < len(buf); {
		code, n := decode(buf[i:])
		i += n

		key := MapCode(code)
		if key == KeyQuit {
			events = append(events, Quit())
			continue
		}
		if h := s.find(code); h != nil {
			h.last = now
			h.repeated = true
			continue
		}
		s.held = append(s.held, heldKey{code: code, key: key, last: now})
		events = append(events, KeyDown(key))
	}

	kept := s.held[:0]
	for _, h := range s.held {
		if h.expired(now) {
			events = append(events, KeyUp(h.key))
			continue
		}
		kept = append(kept, h)
	}
	s.held = kept

	return events
}

func (s *Stream) find(code int) *heldKey {
	for i := range s.held {
		if s.held[i].code == code {
			return &s.held[i]
		}
	}
	return nil
}

// decode reads one key from the front of buf and returns its raw code and
// the number of bytes consumed.
func decode(buf []byte) (code, n int) {
	if buf[0] == '\x1b' && len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
		switch buf[2] {
		case 'A', 'B', 'C', 'D':
			return arrowBase + int(buf[2]), 3
		}
	}
	return int(buf[0]), 1
}

// MapCode maps a raw terminal key code to a logical key.
// Player 1 uses W/S, player 2 the arrow keys. Ctrl-C and Q quit.
func MapCode(code int) Key {
	switch code {
	case 'w', 'W':
		return KeyMoveUp1
	case 's', 'S':
		return KeyMoveDown1
	case codeArrowUp:
		return KeyMoveUp2
	case codeArrowDown:
		return KeyMoveDown2
	case 'q', 'Q', '\x03':
		return KeyQuit
	default:
		return KeyAny
	}
}
