package audio

import (
	"fmt"
	"io"

	"github.com/tomz197/pong/internal/config"
)

// Open returns the player for an audio mode from config. bell receives BEL
// for the bell mode. The returned close function releases the device.
// If the speaker cannot be opened the error is returned with a Silent player.
func Open(mode string, bell io.Writer) (Player, func(), error) {
	switch mode {
	case config.AudioSpeaker:
		s := NewSpeaker()
		if err := s.Initialize(); err != nil {
			return Silent{}, func() {}, fmt.Errorf("open speaker: %w", err)
		}
		return s, s.Close, nil
	case config.AudioBell:
		return Bell{W: bell}, func() {}, nil
	case config.AudioOff:
		return Silent{}, func() {}, nil
	default:
		return Silent{}, func() {}, fmt.Errorf("unknown audio mode %q", mode)
	}
}
