package lotto649

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		wantErr bool
	}{
		{"default 6/49 with bonus", DefaultRule(), false},
		{"no bonus", Rule{PoolSize: 49, MainPicks: 6, Bonus: false}, false},
		{"picks fill the pool exactly", Rule{PoolSize: 7, MainPicks: 6, Bonus: true}, false},
		{"picks equal pool without bonus", Rule{PoolSize: 6, MainPicks: 6, Bonus: false}, false},
		{"bonus does not fit", Rule{PoolSize: 6, MainPicks: 6, Bonus: true}, true},
		{"picks exceed pool", Rule{PoolSize: 5, MainPicks: 6, Bonus: false}, true},
		{"zero pool", Rule{PoolSize: 0, MainPicks: 1, Bonus: false}, true},
		{"zero picks", Rule{PoolSize: 49, MainPicks: 0, Bonus: false}, true},
		{"pool beyond two-digit formatting", Rule{PoolSize: 100, MainPicks: 6, Bonus: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRule_CombinationCount(t *testing.T) {
	t.Run("6/49 with bonus", func(t *testing.T) {
		// C(49,6) = 13,983,816 combinations, times 43 bonus choices
		assert.Equal(t, uint64(601304088), DefaultRule().CombinationCount())
	})

	t.Run("6/49 without bonus", func(t *testing.T) {
		rule := Rule{PoolSize: 49, MainPicks: 6, Bonus: false}
		assert.Equal(t, uint64(13983816), rule.CombinationCount())
	})

	t.Run("tiny rule", func(t *testing.T) {
		rule := Rule{PoolSize: 3, MainPicks: 2, Bonus: false}
		assert.Equal(t, uint64(3), rule.CombinationCount())
	})

	t.Run("tiny rule with bonus", func(t *testing.T) {
		rule := Rule{PoolSize: 3, MainPicks: 2, Bonus: true}
		assert.Equal(t, uint64(3), rule.CombinationCount())
	})

	t.Run("saturates instead of overflowing", func(t *testing.T) {
		rule := Rule{PoolSize: 99, MainPicks: 49, Bonus: true}
		assert.Equal(t, uint64(math.MaxUint64), rule.CombinationCount())
	})
}

func TestTicket_Validate(t *testing.T) {
	rule := DefaultRule()

	t.Run("valid ticket", func(t *testing.T) {
		ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}
		assert.NoError(t, ticket.Validate(rule))
	})

	t.Run("unsorted main numbers", func(t *testing.T) {
		ticket := Ticket{Main: []int{9, 6, 14, 25, 32, 45}, Bonus: 7}
		assert.Error(t, ticket.Validate(rule))
	})

	t.Run("duplicate main numbers", func(t *testing.T) {
		ticket := Ticket{Main: []int{6, 6, 14, 25, 32, 45}, Bonus: 7}
		assert.Error(t, ticket.Validate(rule))
	})

	t.Run("main number out of range", func(t *testing.T) {
		ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 50}, Bonus: 7}
		assert.Error(t, ticket.Validate(rule))

		ticket = Ticket{Main: []int{0, 9, 14, 25, 32, 45}, Bonus: 7}
		assert.Error(t, ticket.Validate(rule))
	})

	t.Run("bonus duplicates a main number", func(t *testing.T) {
		ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 25}
		assert.Error(t, ticket.Validate(rule))
	})

	t.Run("bonus out of range", func(t *testing.T) {
		ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 0}
		assert.Error(t, ticket.Validate(rule))
	})

	t.Run("wrong pick count", func(t *testing.T) {
		ticket := Ticket{Main: []int{6, 9, 14}, Bonus: 7}
		assert.Error(t, ticket.Validate(rule))
	})

	t.Run("bonus-free rule rejects a bonus", func(t *testing.T) {
		noBonus := Rule{PoolSize: 49, MainPicks: 6, Bonus: false}
		ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}
		assert.Error(t, ticket.Validate(noBonus))

		ticket.Bonus = 0
		assert.NoError(t, ticket.Validate(noBonus))
	})
}

func TestTicket_Format(t *testing.T) {
	t.Run("zero padding and bonus label", func(t *testing.T) {
		ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}
		assert.Equal(t, "06 09 14 25 32 45  Bonus 07", ticket.Format())
	})

	t.Run("no bonus", func(t *testing.T) {
		ticket := Ticket{Main: []int{1, 7, 18, 22, 33, 49}}
		assert.Equal(t, "01 07 18 22 33 49", ticket.Format())
	})

	t.Run("stringer matches format", func(t *testing.T) {
		ticket := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}
		assert.Equal(t, ticket.Format(), ticket.String())
	})
}

func TestTicket_Equal(t *testing.T) {
	a := Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}

	require.True(t, a.Equal(Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 7}))
	assert.False(t, a.Equal(Ticket{Main: []int{6, 9, 14, 25, 32, 45}, Bonus: 8}))
	assert.False(t, a.Equal(Ticket{Main: []int{6, 9, 14, 25, 32, 44}, Bonus: 7}))
	assert.False(t, a.Equal(Ticket{Main: []int{6, 9, 14, 25, 32}, Bonus: 7}))
}
