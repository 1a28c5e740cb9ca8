package lotto649

import "time"

const (
	// DefaultPoolSize is the highest drawable number in the default 6/49 game
	DefaultPoolSize = 49

	// DefaultMainPicks is the number of main numbers on a default ticket
	DefaultMainPicks = 6

	// DefaultTicketCount is the number of tickets generated when no count is given
	DefaultTicketCount = 5

	// DefaultMaxRetries is the default per-ticket redraw budget before the
	// generator reports the combination space as exhausted
	DefaultMaxRetries = 10000

	// MaxPoolSize is the largest supported pool; the two-digit zero-padded
	// output format cannot represent numbers above 99
	MaxPoolSize = 99

	// MaxRetriesCeiling is the maximum configurable per-ticket redraw budget
	MaxRetriesCeiling = 1 << 24

	// DefaultSecureCacheSize is the number of 64-bit values a SecureSource
	// reads from the CSPRNG per refill
	DefaultSecureCacheSize = 1024
)

const (
	// fingerprintSeed is the odd start value for the ticket hash accumulator
	fingerprintSeed = 0x517cc1b727220a95

	// goldenPrime is floor(2^64 / golden ratio), used both as the hash
	// multiplier and as the seed diffusion constant for the engine
	goldenPrime = 0x9e3779b97f4a7c15
)

const (
	// guardInitialCapacity is the starting slot count of the duplicate guard;
	// always a power of two so probing can mask instead of mod
	guardInitialCapacity = 1024

	// guardMaxLoadNum / guardMaxLoadDen is the load factor (3/4) past which
	// the guard doubles its table
	guardMaxLoadNum = 3
	guardMaxLoadDen = 4
)

const (
	// DefaultCircuitBreakerName is the default name for the entropy breaker
	DefaultCircuitBreakerName = "lotto649-entropy"

	// DefaultCircuitBreakerMaxRequests is the default max requests allowed half-open
	DefaultCircuitBreakerMaxRequests = 3

	// DefaultCircuitBreakerInterval is the default counting interval
	DefaultCircuitBreakerInterval = 60 * time.Second

	// DefaultCircuitBreakerTimeout is the default open-state timeout
	DefaultCircuitBreakerTimeout = 30 * time.Second

	// DefaultCircuitBreakerFailureRatio is the default trip threshold
	DefaultCircuitBreakerFailureRatio = 0.6

	// DefaultCircuitBreakerMinRequests is the default minimum sample before tripping
	DefaultCircuitBreakerMinRequests = 3
)

// Random source selectors accepted by the config and the CLI.
const (
	SourceXorshift = "xorshift"
	SourceSecure   = "secure"
)
