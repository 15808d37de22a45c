// Package sound provides audio feedback for pointer button presses.
package sound

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	clickFreq  = 880
	clickLen   = 40 * time.Millisecond
)

// Player plays a short click tone. Initialization failure is non-fatal;
// the player stays silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker when enabled. A failed init is
// logged and disables playback.
func NewPlayer(enabled bool, logger *log.Logger) *Player {
	p := &Player{}
	if !enabled {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Printf("Audio initialization failed: %v", err)
		return p
	}
	p.enabled = true
	return p
}

// Click plays a short sine tone
func (p *Player) Click() {
	if !p.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, clickFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(clickLen), sine))
}

// Close releases the speaker
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}
