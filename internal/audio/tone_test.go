package audio

import (
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	dur := 50 * time.Millisecond
	s := newTone(440, dur, waveSine, sampleRate)

	want := sampleRate.N(dur)
	got := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		got += n
		if !ok {
			break
		}
	}
	if got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

func TestToneSamplesInRange(t *testing.T) {
	for _, wave := range []waveType{waveSine, waveSquare} {
		s := newTone(988, 20*time.Millisecond, wave, sampleRate)
		buf := make([][2]float64, 256)
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				for ch := 0; ch < 2; ch++ {
					if v := buf[i][ch]; v < -1.0 || v > 1.0 {
						t.Fatalf("sample %v out of range for wave %d", v, wave)
					}
				}
			}
			if !ok {
				break
			}
		}
	}
}

func TestToneFadesToSilence(t *testing.T) {
	s := newTone(440, 30*time.Millisecond, waveSquare, sampleRate)
	total := sampleRate.N(30 * time.Millisecond)
	buf := make([][2]float64, total)
	n, _ := s.Stream(buf)
	if n != total {
		t.Fatalf("streamed %d samples, want %d", n, total)
	}
	last := buf[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("final sample %v, want near silence", last)
	}
}
