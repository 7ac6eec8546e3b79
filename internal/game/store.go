package game

import "github.com/tomz197/asteroid-defense/internal/field"

// store is a capacity-bounded ordered collection of packed entity
// positions. remove shifts later entries down one slot so indices
// 0..len-1 stay contiguous; callers that iterate while removing must
// not advance their cursor after a removal, since the next entity has
// slid into the just-removed slot.
type store struct {
	slots []field.Packed
	max   int
}

func newStore(max int) store {
	return store{slots: make([]field.Packed, 0, max), max: max}
}

func (s *store) len() int {
	return len(s.slots)
}

func (s *store) full() bool {
	return len(s.slots) == s.max
}

// at returns the position at index i. Callers guard i < len().
func (s *store) at(i int) field.Packed {
	return s.slots[i]
}

// set replaces the position at index i. Callers guard i < len().
func (s *store) set(i int, p field.Packed) {
	s.slots[i] = p
}

// add appends a position. At capacity it is a silent no-op.
func (s *store) add(p field.Packed) {
	if s.full() {
		return
	}
	s.slots = append(s.slots, p)
}

// remove deletes the entry at index i, preserving the relative order of
// the survivors. Out-of-range indices are silently ignored, so callers
// can chain it directly onto a lookup.
func (s *store) remove(i int) {
	if i < 0 || i >= len(s.slots) {
		return
	}
	copy(s.slots[i:], s.slots[i+1:])
	s.slots = s.slots[:len(s.slots)-1]
}

// indexOf scans for the first entry at the given position.
func (s *store) indexOf(p field.Packed) (int, bool) {
	for i, q := range s.slots {
		if q == p {
			return i, true
		}
	}
	return 0, false
}
