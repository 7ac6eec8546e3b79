package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// waveType selects the oscillator wave shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
)

// amplitude keeps cues well below full scale so overlapping ones don't
// clip when the speaker mixes them.
const amplitude = 0.25

// oscillator is a beep.Streamer generating a fixed-length wave with a
// short linear fade-out so cues end without a click.
type oscillator struct {
	freq     float64
	phase    float64
	wave     waveType
	rate     beep.SampleRate
	total    int
	fade     int
	position int
}

// newTone creates a streamer playing freq for the given duration.
func newTone(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	fade := rate.N(10 * time.Millisecond)
	if fade > total {
		fade = total
	}
	return &oscillator{
		freq:  freq,
		wave:  wave,
		rate:  rate,
		total: total,
		fade:  fade,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}
		val *= amplitude

		// Fade out over the final samples.
		if remaining := o.total - o.position; remaining < o.fade {
			val *= float64(remaining) / float64(o.fade)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
