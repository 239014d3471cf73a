package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// ToneGenerator streams a fixed-length stereo sine wave.
type ToneGenerator struct {
	sr     beep.SampleRate
	tone   Tone
	pos    int
	length int
}

// NewToneGenerator creates a generator for the given tone.
func NewToneGenerator(sr beep.SampleRate, tone Tone) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		tone:   tone,
		length: sr.N(tone.Duration),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.length {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.sr)
		v := g.tone.Volume * math.Sin(2*math.Pi*g.tone.Frequency*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// synthesize renders a tone into a replayable buffer.
func synthesize(tone Tone) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(NewToneGenerator(sampleRate, tone))
	return buf
}

// Speaker plays cues on the local sound device.
// Tones are synthesized once up front and mixed into a single speaker stream.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	tones       map[Cue]*beep.Buffer
	initialized bool
}

// NewSpeaker creates a speaker with all cue tones pre-synthesized.
// Call Initialize before cues become audible.
func NewSpeaker() *Speaker {
	return &Speaker{
		mixer: &beep.Mixer{},
		tones: map[Cue]*beep.Buffer{
			CueBounce: synthesize(ToneFor(CueBounce)),
			CueScore:  synthesize(ToneFor(CueScore)),
		},
	}
}

// Initialize opens the sound device. Safe to call more than once.
// An error means no device is available; the speaker then stays silent.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue's tone into the output. It returns immediately.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	buf, ok := s.tones[c]
	if !ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// Close stops all playing cues and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
