package lotto649

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}

	assert.Equal(t, Fingerprint(ticket), Fingerprint(ticket))

	clone := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}
	assert.Equal(t, Fingerprint(ticket), Fingerprint(clone), "equal tickets must share a fingerprint")
}

func TestFingerprint_SensitiveToEveryPosition(t *testing.T) {
	base := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}
	baseFp := Fingerprint(base)

	t.Run("bonus change", func(t *testing.T) {
		changed := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 8}
		assert.NotEqual(t, baseFp, Fingerprint(changed))
	})

	t.Run("each main position", func(t *testing.T) {
		for i := range base.Main {
			main := make([]int, len(base.Main))
			copy(main, base.Main)
			main[i]++

			changed := Ticket{Main: main, Bonus: base.Bonus}
			assert.NotEqual(t, baseFp, Fingerprint(changed), "changing position %d did not change the fingerprint", i)
		}
	})
}

func TestFingerprint_BonusIsNotJustAnotherMain(t *testing.T) {
	// Same seven values, different split between main and bonus
	a := Ticket{Main: []int{1, 2, 3, 4, 5, 6}, Bonus: 7}
	b := Ticket{Main: []int{1, 2, 3, 4, 5, 7}, Bonus: 6}
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprint_AdjacentTicketsDoNotCollide(t *testing.T) {
	// Enumerate a dense neighborhood of tickets and require all fingerprints
	// distinct; the multiplicative hash must avalanche on small inputs.
	seen := make(map[uint64]Ticket)
	for a := 1; a <= 30; a++ {
		for b := a + 1; b <= 31; b++ {
			ticket := Ticket{Main: []int{a, b, 40, 41, 42, 43}, Bonus: 44}
			fp := Fingerprint(ticket)
			if prev, dup := seen[fp]; dup {
				require.Failf(t, "fingerprint collision", "%v and %v hash to %#x", prev, ticket, fp)
			}
			seen[fp] = ticket
		}
	}
}
