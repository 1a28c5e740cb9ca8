// Package lotto649 generates randomized lottery tickets: distinct main
// numbers drawn from a fixed pool, sorted ascending, optionally with a bonus
// number distinct from the main group. Tickets emitted by one Generator are
// guaranteed unique within that run.
//
// The default randomness path is a seeded xorshift128+ generator. Its seed is
// taken from the platform CSPRNG when available and from a time-based
// composite otherwise, so output is reasonably unpredictable across runs but
// carries NO cryptographic guarantee. Do not use this package for
// gambling-stakes draws or anything security sensitive; for a crypto-grade
// source select "secure" in the random config section.
package lotto649
