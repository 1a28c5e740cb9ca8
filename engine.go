package lotto649

// Engine is a xorshift128+ pseudo-random generator: 128 bits of state, period
// 2^128-1, passes BigCrush. It is deterministic for a fixed seed, which the
// tests rely on; it is not suitable for gambling-stakes or cryptographic use.
type Engine struct {
	s0, s1 uint64
}

// NewEngine creates an engine from a 64-bit seed. The second state word is the
// seed XORed with an odd diffusion constant so the two words start decorrelated
// even for an all-zero seed.
func NewEngine(seed uint64) *Engine {
	e := &Engine{
		s0: seed,
		s1: seed ^ goldenPrime,
	}
	// xorshift must never reach the all-zero state
	if e.s0 == 0 && e.s1 == 0 {
		e.s1 = goldenPrime
	}
	return e
}

// NewSeededEngine creates an engine seeded from the best available local
// entropy source (see Seed).
func NewSeededEngine() *Engine {
	return NewEngine(Seed())
}

// Next advances the state and returns the next 64-bit pseudo-random value
func (e *Engine) Next() uint64 {
	x := e.s0
	y := e.s1
	e.s0 = y
	x ^= x << 23
	e.s1 = x ^ y ^ (x >> 17) ^ (y >> 26)
	return e.s1 + y
}
