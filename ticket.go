package lotto649

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Rule describes one lottery game: how many numbers exist in the pool, how
// many main numbers a ticket carries, and whether a bonus number is drawn.
type Rule struct {
	PoolSize  int  `mapstructure:"pool_size"`
	MainPicks int  `mapstructure:"main_picks"`
	Bonus     bool `mapstructure:"bonus"`
}

// DefaultRule returns the classic 6/49 game with a bonus number
func DefaultRule() Rule {
	return Rule{
		PoolSize:  DefaultPoolSize,
		MainPicks: DefaultMainPicks,
		Bonus:     true,
	}
}

// Validate checks that the rule describes a playable game
func (r Rule) Validate() error {
	if r.PoolSize < 1 || r.PoolSize > MaxPoolSize {
		return ErrInvalidRule
	}
	if r.MainPicks < 1 {
		return ErrInvalidRule
	}

	// All drawn numbers come from a single pool without replacement
	drawn := r.MainPicks
	if r.Bonus {
		drawn++
	}
	if drawn > r.PoolSize {
		return ErrInvalidRule
	}

	return nil
}

// picksTotal returns the number of pool entries one draw consumes
func (r Rule) picksTotal() int {
	if r.Bonus {
		return r.MainPicks + 1
	}
	return r.MainPicks
}

// CombinationCount returns the number of distinct tickets the rule can
// produce: C(pool, picks), times (pool - picks) when a bonus is drawn.
// Saturates at MaxUint64 for rules whose space does not fit 64 bits.
func (r Rule) CombinationCount() uint64 {
	n := new(big.Int).Binomial(int64(r.PoolSize), int64(r.MainPicks))
	if r.Bonus {
		n.Mul(n, big.NewInt(int64(r.PoolSize-r.MainPicks)))
	}
	if !n.IsUint64() {
		return math.MaxUint64
	}
	return n.Uint64()
}

// Ticket is one generated combination: sorted distinct main numbers plus an
// optional bonus number distinct from all of them. Bonus is 0 when the rule
// draws no bonus.
type Ticket struct {
	Main  []int `json:"main"`
	Bonus int   `json:"bonus,omitempty"`
}

// Validate checks the ticket invariants against its rule
func (t Ticket) Validate(rule Rule) error {
	if len(t.Main) != rule.MainPicks {
		return ErrInvalidRule
	}

	prev := 0
	for _, n := range t.Main {
		if n < 1 || n > rule.PoolSize {
			return fmt.Errorf("main number %d outside range 1..%d", n, rule.PoolSize)
		}
		// Strictly ascending covers both sortedness and distinctness
		if n <= prev {
			return fmt.Errorf("main numbers not strictly ascending: %v", t.Main)
		}
		prev = n
	}

	if !rule.Bonus {
		if t.Bonus != 0 {
			return fmt.Errorf("unexpected bonus number %d for a bonus-free rule", t.Bonus)
		}
		return nil
	}

	if t.Bonus < 1 || t.Bonus > rule.PoolSize {
		return fmt.Errorf("bonus number %d outside range 1..%d", t.Bonus, rule.PoolSize)
	}
	for _, n := range t.Main {
		if n == t.Bonus {
			return fmt.Errorf("bonus number %d duplicates a main number", t.Bonus)
		}
	}

	return nil
}

// Equal reports whether two tickets carry the same numbers
func (t Ticket) Equal(other Ticket) bool {
	if t.Bonus != other.Bonus || len(t.Main) != len(other.Main) {
		return false
	}
	for i, n := range t.Main {
		if other.Main[i] != n {
			return false
		}
	}
	return true
}

// Format renders the ticket with two-digit zero padding, main numbers
// space-separated, followed by a labelled bonus when present:
//
//	06 09 14 25 32 45  Bonus 07
func (t Ticket) Format() string {
	var b strings.Builder
	for i, n := range t.Main {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02d", n)
	}
	if t.Bonus != 0 {
		fmt.Fprintf(&b, "  Bonus %02d", t.Bonus)
	}
	return b.String()
}

// String implements fmt.Stringer
func (t Ticket) String() string { return t.Format() }
