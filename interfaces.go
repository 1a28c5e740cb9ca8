package lotto649

import "context"

// ProgressCallback is invoked after each accepted ticket during a multi-ticket run
type ProgressCallback func(completed, total int, ticket Ticket)

// RandomSource is the sole source of randomness for the sampler. Implementations
// must be infallible; sources backed by fallible readers are expected to fall
// back internally (see CircuitBreakerSource).
type RandomSource interface {
	// Next advances the source and returns a 64-bit pseudo-random value
	Next() uint64
}

// TicketDrawer defines the interface for ticket generation
type TicketDrawer interface {
	// GenerateOne draws a single ticket, unique within this drawer's run
	GenerateOne(ctx context.Context) (Ticket, error)

	// Generate draws count tickets, all unique within this drawer's run
	Generate(ctx context.Context, count int) ([]Ticket, error)

	// GenerateWithProgress draws count tickets, reporting each accepted ticket
	GenerateWithProgress(ctx context.Context, count int, callback ProgressCallback) ([]Ticket, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}
