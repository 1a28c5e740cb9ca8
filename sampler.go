package lotto649

import "sort"

// Sampler draws tickets by shuffling the full number pool with Fisher-Yates
// and taking a prefix. Every combination is equally likely under a uniform
// source, and all drawn numbers are distinct by construction since the pool is
// sampled without replacement. Not safe for concurrent use; a run is
// single-threaded.
type Sampler struct {
	rule   Rule
	source RandomSource
	pool   []int
}

// NewSampler creates a sampler for the given rule and randomness source
func NewSampler(rule Rule, source RandomSource) (*Sampler, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, ErrNilSource
	}

	return &Sampler{
		rule:   rule,
		source: source,
		pool:   make([]int, rule.PoolSize),
	}, nil
}

// Rule returns the game rule this sampler draws for
func (s *Sampler) Rule() Rule { return s.rule }

// Draw produces one candidate ticket: main numbers sorted ascending, bonus
// (when the rule has one) left in its own slot, never sorted into the main
// group.
func (s *Sampler) Draw() Ticket {
	for i := range s.pool {
		s.pool[i] = i + 1
	}

	// Modern Fisher-Yates, last index down to 1. The modulo bias of
	// Next()%(i+1) is below 2^-57 for pools of at most 99 numbers.
	for i := len(s.pool) - 1; i > 0; i-- {
		j := int(s.source.Next() % uint64(i+1))
		s.pool[i], s.pool[j] = s.pool[j], s.pool[i]
	}

	main := make([]int, s.rule.MainPicks)
	copy(main, s.pool[:s.rule.MainPicks])
	sort.Ints(main)

	ticket := Ticket{Main: main}
	if s.rule.Bonus {
		ticket.Bonus = s.pool[s.rule.MainPicks]
	}
	return ticket
}
