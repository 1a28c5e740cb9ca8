package lotto649

import "errors"

// Sentinel errors for the ticket generator
var (
	// ErrInvalidTicketCount indicates a non-positive requested ticket count
	ErrInvalidTicketCount = errors.New("invalid ticket count: must be greater than 0")

	// ErrInvalidRule indicates an unplayable game rule
	ErrInvalidRule = errors.New("invalid rule: picks must fit inside the pool and the pool must fit two-digit formatting")

	// ErrInvalidMaxRetries indicates an out-of-range redraw budget
	ErrInvalidMaxRetries = errors.New("invalid max retries: must be between 1 and the configured ceiling")

	// ErrCombinationsExhausted indicates the run cannot produce another unique ticket
	ErrCombinationsExhausted = errors.New("combinations exhausted: no unique ticket found within the retry budget")

	// ErrCountExceedsSpace indicates the requested count is larger than the
	// number of distinct tickets the rule can ever produce
	ErrCountExceedsSpace = errors.New("requested count exceeds the total number of distinct tickets")

	// ErrDrawInterrupted indicates the run was cancelled via its context
	ErrDrawInterrupted = errors.New("draw operation interrupted")

	// ErrNilSource indicates a generator was constructed without a random source
	ErrNilSource = errors.New("random source cannot be nil")

	// ErrEntropyUnavailable indicates the platform entropy source failed a read
	ErrEntropyUnavailable = errors.New("platform entropy source unavailable")

	// ErrUnknownSource indicates an unrecognized random source selector
	ErrUnknownSource = errors.New("unknown random source: must be \"xorshift\" or \"secure\"")
)
