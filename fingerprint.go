package lotto649

// Fingerprint computes a compact 64-bit identity for a ticket. It is a pure
// iterative multiplicative hash: every value, bonus included, is XORed into
// the accumulator and diffused by a golden-ratio multiplier, so any change to
// any position changes the output. Good avalanche, no cryptographic strength,
// used only as a set-membership key.
func Fingerprint(t Ticket) uint64 {
	h := uint64(fingerprintSeed)
	for _, n := range t.Main {
		h = (h ^ uint64(n)) * goldenPrime
	}
	if t.Bonus != 0 {
		h = (h ^ uint64(t.Bonus)) * goldenPrime
	}
	return h
}
