package sound

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Pop sound shape.
const (
	PopDuration  = 140 * time.Millisecond
	popStartFreq = 950.0
	popEndFreq   = 280.0
	popAttack    = 4 * time.Millisecond
	popDecay     = 30.0 // exponential decay rate, per second
	popNoiseMix  = 0.25
)

// chirp is a sine sweep from startFreq to endFreq with a short linear
// attack, exponential decay and a dash of noise for the "snap".
type chirp struct {
	rate      beep.SampleRate
	total     int
	attack    int
	position  int
	phase     float64
	startFreq float64
	endFreq   float64
	noise     *rand.Rand
}

func newChirp(rate beep.SampleRate, d time.Duration, startFreq, endFreq float64, seed uint64) *chirp {
	return &chirp{
		rate:      rate,
		total:     rate.N(d),
		attack:    rate.N(popAttack),
		startFreq: startFreq,
		endFreq:   endFreq,
		noise:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}
		t := float64(c.position) / float64(c.total)
		freq := c.startFreq * math.Pow(c.endFreq/c.startFreq, t)

		env := math.Exp(-popDecay * c.rate.D(c.position).Seconds())
		if c.position < c.attack {
			env *= float64(c.position) / float64(c.attack)
		}

		tone := math.Sin(2 * math.Pi * c.phase)
		noise := c.noise.Float64()*2 - 1
		val := env * ((1-popNoiseMix)*tone + popNoiseMix*noise*(1-t))

		samples[i][0] = val
		samples[i][1] = val

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// NewPop returns a one-shot pop at the given volume in [0, 1].
func NewPop(rate beep.SampleRate, volume float64, seed uint64) beep.Streamer {
	return withVolume(newChirp(rate, PopDuration, popStartFreq, popEndFreq, seed), volume)
}

// withVolume scales s linearly; a non-positive volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
