package lotto649

import (
	"context"
	"time"
)

// GeneratorConfig holds the knobs of one ticket generator
type GeneratorConfig struct {
	// Rule is the game being played
	Rule Rule

	// MaxRetries bounds the redraws spent on a single ticket slot before the
	// run fails with an exhaustion error instead of spinning forever
	MaxRetries int
}

// DefaultGeneratorConfig returns the 6/49-with-bonus defaults
func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		Rule:       DefaultRule(),
		MaxRetries: DefaultMaxRetries,
	}
}

// Validate checks the generator configuration
func (c *GeneratorConfig) Validate() error {
	if err := c.Rule.Validate(); err != nil {
		return err
	}
	if c.MaxRetries < 1 || c.MaxRetries > MaxRetriesCeiling {
		return ErrInvalidMaxRetries
	}
	return nil
}

// Generator is the run driver: it owns the sampler, the duplicate guard and
// the metrics for one run, and guarantees that no two tickets it emits are
// identical. It is single-threaded by design; the guard and the engine state
// are owned exclusively by the run loop.
type Generator struct {
	sampler *Sampler
	guard   *Guard
	config  *GeneratorConfig
	logger  Logger
	monitor *DrawMonitor
}

// NewGenerator creates a generator for the default 6/49 game
func NewGenerator(source RandomSource) (*Generator, error) {
	return NewGeneratorWithConfigAndLogger(source, DefaultGeneratorConfig(), &DefaultLogger{})
}

// NewGeneratorWithConfig creates a generator with a custom configuration
func NewGeneratorWithConfig(source RandomSource, config *GeneratorConfig) (*Generator, error) {
	return NewGeneratorWithConfigAndLogger(source, config, &DefaultLogger{})
}

// NewGeneratorWithLogger creates a default-rule generator with a custom logger
func NewGeneratorWithLogger(source RandomSource, logger Logger) (*Generator, error) {
	return NewGeneratorWithConfigAndLogger(source, DefaultGeneratorConfig(), logger)
}

// NewGeneratorWithConfigAndLogger creates a generator with custom
// configuration and logger
func NewGeneratorWithConfigAndLogger(
	source RandomSource, config *GeneratorConfig, logger Logger,
) (*Generator, error) {
	if config == nil {
		config = DefaultGeneratorConfig()
	}
	if logger == nil {
		logger = &DefaultLogger{}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	sampler, err := NewSampler(config.Rule, source)
	if err != nil {
		return nil, err
	}

	monitor := NewDrawMonitor()
	if cbs, ok := source.(*CircuitBreakerSource); ok {
		cbs.SetMonitor(monitor)
	}

	return &Generator{
		sampler: sampler,
		guard:   NewGuard(),
		config:  config,
		logger:  logger,
		monitor: monitor,
	}, nil
}

// Rule returns the game rule this generator draws for
func (g *Generator) Rule() Rule { return g.config.Rule }

// Metrics returns a copy of the run's counters
func (g *Generator) Metrics() DrawMetrics { return g.monitor.GetMetrics() }

// UniqueCount returns the number of tickets emitted so far in this run
func (g *Generator) UniqueCount() int { return g.guard.Len() }

// GenerateOne draws one ticket that is unique within this generator's run
func (g *Generator) GenerateOne(ctx context.Context) (Ticket, error) {
	return g.nextUnique(ctx)
}

// Generate draws count tickets, all unique within this generator's run,
// in generation order.
func (g *Generator) Generate(ctx context.Context, count int) ([]Ticket, error) {
	return g.GenerateWithProgress(ctx, count, nil)
}

// GenerateWithProgress draws count tickets and invokes callback after each
// accepted ticket. A nil callback is allowed.
func (g *Generator) GenerateWithProgress(
	ctx context.Context, count int, callback ProgressCallback,
) ([]Ticket, error) {
	if count <= 0 {
		g.logger.Error("Generate rejected invalid count %d", count)
		return nil, NewError(ErrCodeInvalidCount, "ticket count must be positive").
			WithCause(ErrInvalidTicketCount).
			WithOperation("Generate")
	}

	// Fail fast instead of looping forever when the request can never be
	// satisfied, counting tickets this run has already emitted.
	space := g.config.Rule.CombinationCount()
	if uint64(count)+uint64(g.guard.Len()) > space {
		g.logger.Error("Generate rejected count %d: only %d distinct tickets exist", count, space)
		return nil, NewError(ErrCodeExhausted, "requested count exceeds the combination space").
			WithCause(ErrCountExceedsSpace).
			WithOperation("Generate")
	}

	g.logger.Debug("Generate called: count=%d rule=%d/%d bonus=%t",
		count, g.config.Rule.MainPicks, g.config.Rule.PoolSize, g.config.Rule.Bonus)

	tickets := make([]Ticket, 0, count)
	for i := 0; i < count; i++ {
		ticket, err := g.nextUnique(ctx)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, ticket)
		if callback != nil {
			callback(i+1, count, ticket)
		}
	}

	return tickets, nil
}

// nextUnique draws candidates until one passes the guard, bounded by the
// per-ticket retry budget.
func (g *Generator) nextUnique(ctx context.Context) (Ticket, error) {
	for attempt := 0; attempt < g.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			g.logger.Info("draw interrupted after %d accepted tickets", g.guard.Len())
			return Ticket{}, NewError(ErrCodeInterrupted, "draw cancelled").
				WithCause(ErrDrawInterrupted).
				WithDetails(ctx.Err().Error()).
				WithOperation("nextUnique")
		default:
		}

		start := time.Now()
		ticket := g.sampler.Draw()
		fp := Fingerprint(ticket)

		if g.guard.Contains(fp) {
			g.monitor.RecordDraw(false, time.Since(start))
			continue
		}

		g.guard.Insert(fp)
		g.monitor.RecordDraw(true, time.Since(start))
		return ticket, nil
	}

	g.logger.Error("no unique ticket found within %d redraws (%d emitted so far)",
		g.config.MaxRetries, g.guard.Len())
	return Ticket{}, NewError(ErrCodeExhausted, "retry budget exhausted").
		WithCause(ErrCombinationsExhausted).
		WithOperation("nextUnique")
}

// NewGeneratorFromConfig builds a generator, its random source and, when
// configured, the entropy circuit breaker from a loaded Config.
func NewGeneratorFromConfig(cfg *Config, logger Logger) (*Generator, error) {
	if cfg == nil {
		return nil, NewError(ErrCodeConfigInvalid, "config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = &DefaultLogger{}
	}

	engine := NewSeededEngine()

	var source RandomSource
	switch cfg.Random.Source {
	case SourceXorshift:
		source = engine
	case SourceSecure:
		source = NewCircuitBreakerSource(NewSecureSource(), engine, cfg.CircuitBreaker, logger)
	default:
		return nil, ErrUnknownSource
	}

	generatorConfig := &GeneratorConfig{
		Rule:       cfg.Lotto.Rule(),
		MaxRetries: cfg.Lotto.MaxRetries,
	}

	return NewGeneratorWithConfigAndLogger(source, generatorConfig, logger)
}
