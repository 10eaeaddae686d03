package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 880
	toneLen    = 50 * time.Millisecond
)

// Chime plays a short sine tone. The renderer uses it to mark each completed
// orbit revolution when sound is enabled.
type Chime struct {
	ready bool
}

// NewChime initializes the speaker. Errors are returned so the caller can
// continue without sound.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Chime{ready: true}, nil
}

// Play queues one tone; a nil or uninitialized chime is a no-op
func (c *Chime) Play() {
	if c == nil || !c.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, toneHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneLen), sine))
}

// Close releases the speaker. Safe on a nil or uninitialized chime.
func (c *Chime) Close() {
	if c == nil || !c.ready {
		return
	}
	c.ready = false
	speaker.Close()
}
