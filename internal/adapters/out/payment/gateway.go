// Package payment provides the simulated payment provider used in
// development and testing. It mimics a slow external gateway: each charge
// blocks for a fixed latency and then approves with a configurable
// probability.
package payment

import (
	"context"
	"math/rand/v2"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

const (
	// DefaultLatency approximates a real provider's round-trip time.
	DefaultLatency = 1200 * time.Millisecond

	// DefaultApproveRate is the probability that a charge is approved.
	DefaultApproveRate = 0.9
)

// SimulatedGateway implements ports.PaymentGateway with a latency sleep
// and a Bernoulli approval draw. Amounts are accepted but never moved.
type SimulatedGateway struct {
	latency     time.Duration
	approveRate float64
	randFloat   func() float64
}

// Option configures a SimulatedGateway.
type Option func(*SimulatedGateway)

// WithLatency overrides the simulated provider latency.
func WithLatency(latency time.Duration) Option {
	return func(g *SimulatedGateway) { g.latency = latency }
}

// WithApproveRate overrides the approval probability, clamped to [0, 1].
func WithApproveRate(rate float64) Option {
	return func(g *SimulatedGateway) {
		g.approveRate = min(max(rate, 0), 1)
	}
}

// WithRand overrides the randomness source. Tests inject a deterministic
// function to force approvals or declines.
func WithRand(randFloat func() float64) Option {
	return func(g *SimulatedGateway) { g.randFloat = randFloat }
}

// NewSimulatedGateway creates a gateway with the default latency and
// approval rate, modified by the given options.
func NewSimulatedGateway(opts ...Option) *SimulatedGateway {
	g := &SimulatedGateway{
		latency:     DefaultLatency,
		approveRate: DefaultApproveRate,
		randFloat:   rand.Float64,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Process blocks for the provider latency and resolves the charge. When
// ctx expires first, the charge resolves to declined with ctx's error, so
// callers always receive a terminal outcome.
func (g *SimulatedGateway) Process(ctx context.Context, _ kernel.UUID, _ int64) (ports.PaymentOutcome, error) {
	select {
	case <-time.After(g.latency):
	case <-ctx.Done():
		return ports.PaymentDeclined, ctx.Err()
	}

	if g.randFloat() < g.approveRate {
		return ports.PaymentApproved, nil
	}

	return ports.PaymentDeclined, nil
}
