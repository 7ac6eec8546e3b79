package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// The speaker is process-wide; initialize it once no matter how many
// synths are created.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// Synth plays cues on the local speaker via beep. Volume is quiet by
// construction: cues are short and the speaker mixes them, so rapid hits
// overlap instead of cutting each other off.
type Synth struct{}

// NewSynth initializes the speaker and returns a player. Callers should
// fall back to Nop when initialization fails (e.g. no audio device).
func NewSynth() (*Synth, error) {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(20*time.Millisecond))
	})
	if speakerErr != nil {
		return nil, speakerErr
	}
	return &Synth{}, nil
}

// Play starts the cue and returns immediately.
func (s *Synth) Play(t Track) {
	switch t {
	case TrackCoin:
		// Two-note ascending blip, arcade coin style.
		speaker.Play(beep.Seq(
			newTone(988, 60*time.Millisecond, waveSquare, sampleRate),
			newTone(1319, 90*time.Millisecond, waveSquare, sampleRate),
		))
	case TrackError:
		speaker.Play(newTone(120, 150*time.Millisecond, waveSquare, sampleRate))
	}
}

// Compile-time check that Synth implements Player.
var _ Player = (*Synth)(nil)
