package lotto649

// Guard is the run-scoped duplicate set: an open-addressing hash table keyed
// directly on ticket fingerprints, with linear probing and capacity doubling.
// Occupancy is tracked explicitly, so a genuine fingerprint of 0 is a valid
// member and never mistaken for an empty slot. Contains and Insert are
// amortized O(1). Not safe for concurrent use; a run is single-threaded.
type Guard struct {
	slots    []uint64
	occupied []bool
	size     int
}

// NewGuard creates an empty guard with the default initial capacity
func NewGuard() *Guard {
	return NewGuardWithCapacity(guardInitialCapacity)
}

// NewGuardWithCapacity creates an empty guard with at least the given
// capacity, rounded up to a power of two so probing can mask instead of mod.
func NewGuardWithCapacity(capacity int) *Guard {
	c := 1
	for c < capacity {
		c <<= 1
	}
	return &Guard{
		slots:    make([]uint64, c),
		occupied: make([]bool, c),
	}
}

// Contains reports whether fp has been inserted
func (g *Guard) Contains(fp uint64) bool {
	mask := uint64(len(g.slots) - 1)
	for i := fp & mask; g.occupied[i]; i = (i + 1) & mask {
		if g.slots[i] == fp {
			return true
		}
	}
	return false
}

// Insert records fp, returning false if it was already present
func (g *Guard) Insert(fp uint64) bool {
	if (g.size+1)*guardMaxLoadDen > len(g.slots)*guardMaxLoadNum {
		g.grow()
	}

	mask := uint64(len(g.slots) - 1)
	i := fp & mask
	for g.occupied[i] {
		if g.slots[i] == fp {
			return false
		}
		i = (i + 1) & mask
	}

	g.slots[i] = fp
	g.occupied[i] = true
	g.size++
	return true
}

// Len returns the number of fingerprints recorded
func (g *Guard) Len() int { return g.size }

// grow doubles the table and rehashes every member
func (g *Guard) grow() {
	old := g.slots
	oldOccupied := g.occupied

	g.slots = make([]uint64, len(old)*2)
	g.occupied = make([]bool, len(old)*2)
	mask := uint64(len(g.slots) - 1)

	for idx, used := range oldOccupied {
		if !used {
			continue
		}
		fp := old[idx]
		i := fp & mask
		for g.occupied[i] {
			i = (i + 1) & mask
		}
		g.slots[i] = fp
		g.occupied[i] = true
	}
}
