// Package score tracks one session's score and remaining lives.
package score

// Board holds the score and life counters the game engine reports into.
type Board struct {
	score int
	lives int
}

// NewBoard creates a board with the given starting lives and zero score.
func NewBoard(lives int) *Board {
	return &Board{lives: lives}
}

// AddToScore adds delta to the score.
func (b *Board) AddToScore(delta int) {
	b.score += delta
}

// Score returns the current score.
func (b *Board) Score() int {
	return b.score
}

// ChangeLives adds delta to the life counter. Lives never go below zero,
// so the game-over check stays an equality test even when several base
// cells are hit in one tick.
func (b *Board) ChangeLives(delta int) {
	b.lives += delta
	if b.lives < 0 {
		b.lives = 0
	}
}

// Lives returns the remaining lives.
func (b *Board) Lives() int {
	return b.lives
}

// Reset restores the board for a new game.
func (b *Board) Reset(lives int) {
	b.score = 0
	b.lives = lives
}
