// Package audio plays the game's sound cues. Cues are fire-and-forget:
// Play returns immediately and never blocks the game tick.
package audio

// Track identifies a sound cue.
type Track int

const (
	// TrackCoin plays when a projectile destroys an asteroid.
	TrackCoin Track = iota
	// TrackError plays when an asteroid hits the base.
	TrackError
)

// Player is implemented by audio backends.
type Player interface {
	Play(t Track)
}

// Nop discards all cues. Used for SSH sessions (no remote audio path)
// and tests.
type Nop struct{}

func (Nop) Play(Track) {}
