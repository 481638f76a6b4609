package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Sink delivers an entry's payload to its destination.
type Sink interface {
	Deliver(ctx context.Context, e *Entry) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, e *Entry) error

func (f SinkFunc) Deliver(ctx context.Context, e *Entry) error { return f(ctx, e) }

// DispatcherConfig tunes the background delivery loop.
type DispatcherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// DefaultDispatcherConfig returns sane defaults for the delivery loop.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    50,
		MaxAttempts:  8,
	}
}

// Dispatcher polls the outbox and delivers due entries to registered sinks.
type Dispatcher struct {
	repo   Repository
	sinks  map[string]Sink
	cfg    DispatcherConfig
	logger zerolog.Logger
}

// NewDispatcher creates a dispatcher with no sinks registered.
func NewDispatcher(repo Repository, cfg DispatcherConfig, logger zerolog.Logger) *Dispatcher {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultDispatcherConfig().PollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultDispatcherConfig().BatchSize
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultDispatcherConfig().MaxAttempts
	}
	return &Dispatcher{
		repo:   repo,
		sinks:  make(map[string]Sink),
		cfg:    cfg,
		logger: logger,
	}
}

// Register binds a sink to a topic. Entries on an unregistered topic stay
// pending until a sink appears.
func (d *Dispatcher) Register(topic string, sink Sink) {
	d.sinks[topic] = sink
}

// Run polls until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.DispatchDue(ctx); err != nil {
				d.logger.Error().Err(err).Msg("outbox: dispatch batch")
			}
		}
	}
}

// DispatchDue delivers one batch of due entries. Exposed for tests and for
// callers that want to flush on demand.
func (d *Dispatcher) DispatchDue(ctx context.Context) error {
	entries, err := d.repo.Due(ctx, d.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("load due entries: %w", err)
	}

	for _, e := range entries {
		d.dispatch(ctx, e)
	}
	return nil
}

func (d *Dispatcher) dispatch(ctx context.Context, e *Entry) {
	sink, ok := d.sinks[e.Topic]
	if !ok {
		// Release the claim without burning an attempt; the entry stays
		// pending until a sink for its topic is registered.
		d.logger.Warn().Str("topic", e.Topic).Str("entry_id", e.ID.String()).
			Msg("outbox: no sink for topic")
		if mErr := d.repo.Reschedule(ctx, e.ID, e.Attempts, time.Now(), e.LastError); mErr != nil {
			d.logger.Error().Err(mErr).Str("entry_id", e.ID.String()).
				Msg("outbox: release claim")
		}
		return
	}

	err := sink.Deliver(ctx, e)
	if err == nil {
		if mErr := d.repo.MarkDelivered(ctx, e.ID); mErr != nil {
			d.logger.Error().Err(mErr).Str("entry_id", e.ID.String()).
				Msg("outbox: mark delivered")
		}
		return
	}

	attempts := e.Attempts + 1
	if attempts >= d.cfg.MaxAttempts {
		d.logger.Error().Err(err).Str("entry_id", e.ID.String()).Str("topic", e.Topic).
			Int("attempts", attempts).Msg("outbox: giving up")
		if mErr := d.repo.MarkFailed(ctx, e.ID, attempts, err.Error()); mErr != nil {
			d.logger.Error().Err(mErr).Str("entry_id", e.ID.String()).
				Msg("outbox: mark failed")
		}
		return
	}

	next := time.Now().Add(retryDelay(attempts))
	d.logger.Warn().Err(err).Str("entry_id", e.ID.String()).Str("topic", e.Topic).
		Int("attempts", attempts).Time("next_attempt", next).Msg("outbox: delivery failed")
	if mErr := d.repo.Reschedule(ctx, e.ID, attempts, next, err.Error()); mErr != nil {
		d.logger.Error().Err(mErr).Str("entry_id", e.ID.String()).
			Msg("outbox: reschedule")
	}
}

// retryDelay returns the wait before the next attempt by stepping a fresh
// exponential policy once per recorded attempt. Attempt counts live on the
// entry, not in process memory, so the policy cannot be kept across calls.
// Randomization is off to keep reschedules deterministic.
func retryDelay(attempts int) time.Duration {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 5 * time.Minute
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	b.Reset()

	delay := b.NextBackOff()
	for i := 1; i < attempts; i++ {
		delay = b.NextBackOff()
	}
	return delay
}
