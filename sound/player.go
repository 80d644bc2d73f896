// Package sound synthesizes and plays the bubble pop effect.
package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player mixes pop sounds onto the system speaker. The zero value is not
// usable; call New. All methods are safe for concurrent use and do nothing
// before Init succeeds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	seed        uint64
	initialized bool
}

// New creates a player at volume in [0, 1].
func New(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Pop plays one pop. Overlapping pops are mixed.
func (p *Player) Pop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.seed++
	s := NewPop(sampleRate, p.volume, p.seed)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
