package audio

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/pong/internal/config"
)

func TestToneForCues(t *testing.T) {
	bounce := ToneFor(CueBounce)
	score := ToneFor(CueScore)

	assert.Greater(t, bounce.Frequency, score.Frequency, "bounce is higher pitched")
	assert.Less(t, bounce.Duration, score.Duration, "score is longer")
	assert.Equal(t, 50*time.Millisecond, bounce.Duration)
	assert.Equal(t, 0.3, score.Volume)
}

func TestToneGeneratorLengthAndAmplitude(t *testing.T) {
	tone := Tone{Frequency: 660, Duration: 50 * time.Millisecond, Volume: 0.3}
	g := NewToneGenerator(sampleRate, tone)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := g.Stream(buf)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, math.Abs(buf[i][0]), 0.3+1e-9)
			assert.Equal(t, buf[i][0], buf[i][1], "channels are identical")
		}
		total += n
		if !ok || n < len(buf) {
			break
		}
	}
	assert.Equal(t, sampleRate.N(tone.Duration), total)
	assert.NoError(t, g.Err())

	n, ok := g.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestSynthesizedBufferLength(t *testing.T) {
	buf := synthesize(ToneFor(CueScore))
	assert.Equal(t, sampleRate.N(200*time.Millisecond), buf.Len())
}

// Speaker cues must be harmless when no sound device was opened.
func TestSpeakerWithoutInitialize(t *testing.T) {
	s := NewSpeaker()
	assert.NotPanics(t, func() {
		s.Play(CueBounce)
		s.Play(CueScore)
		s.Close()
	})
}

func TestSpeakerInitialize(t *testing.T) {
	s := NewSpeaker()
	if err := s.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer s.Close()

	assert.NoError(t, s.Initialize(), "second Initialize is a no-op")
	assert.NotPanics(t, func() { s.Play(CueBounce) })
}

func TestBellRingsOnScoreOnly(t *testing.T) {
	var out bytes.Buffer
	b := Bell{W: &out}

	b.Play(CueBounce)
	assert.Empty(t, out.String())

	b.Play(CueScore)
	assert.Equal(t, "\a", out.String())

	assert.NotPanics(t, func() { Bell{}.Play(CueScore) })
	assert.NotPanics(t, func() { Silent{}.Play(CueScore) })
}

func TestOpenModes(t *testing.T) {
	var out bytes.Buffer

	p, closeFn, err := Open(config.AudioBell, &out)
	assert.NoError(t, err)
	assert.Equal(t, Bell{W: &out}, p)
	closeFn()

	p, _, err = Open(config.AudioOff, &out)
	assert.NoError(t, err)
	assert.Equal(t, Silent{}, p)

	p, _, err = Open("loud", &out)
	assert.Error(t, err)
	assert.Equal(t, Silent{}, p)
}
