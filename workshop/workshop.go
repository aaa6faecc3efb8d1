/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package workshop

import (
	"context"
	"time"

	"chainguard.dev/concord/workshop/irr"
	"chainguard.dev/concord/workshop/rating"
	"chainguard.dev/concord/workshop/rubric"
	"chainguard.dev/concord/workshop/sequence"
)

// Workshop is one annotation workshop: a rubric, an agreement engine, and
// the per-participant sequence state.
type Workshop struct {
	id     string
	rubric *rubric.Rubric
	engine *irr.Engine
	store  *sequence.Store
}

// Option configures a Workshop.
type Option func(*Workshop)

// WithEngineConfig overrides the agreement engine thresholds.
func WithEngineConfig(cfg irr.Config) Option {
	return func(w *Workshop) {
		w.engine = irr.NewEngine(cfg)
	}
}

// WithStore supplies a shared sequence store, e.g. one store across
// workshops with a common TTL.
func WithStore(store *sequence.Store) Option {
	return func(w *Workshop) {
		w.store = store
	}
}

// New creates a workshop around a rubric. A nil rubric means the legacy
// single-scale form with no per-question validation.
func New(id string, rb *rubric.Rubric, opts ...Option) *Workshop {
	w := &Workshop{
		id:     id,
		rubric: rb,
		engine: irr.NewEngine(irr.DefaultConfig()),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.store == nil {
		w.store = sequence.NewStore(sequence.StoreConfig{TTL: 24 * time.Hour})
	}
	return w
}

// Close releases the sequence store's resources.
func (w *Workshop) Close() {
	w.store.Stop()
}

// ComputeIRR validates the ratings against the rubric and computes the
// agreement result. Validation problems come back as an uncomputed Result,
// never as an error.
func (w *Workshop) ComputeIRR(ctx context.Context, col *rating.Collection) *irr.Result {
	if w.rubric != nil {
		if err := w.rubric.CheckCollection(col); err != nil {
			res := &irr.Result{Error: err.Error()}
			res.Diagnostics = irr.Diagnose(col)
			return res
		}
	}
	return w.engine.Compute(ctx, col)
}

// ComputeDiagnostics runs the metric-independent scan on its own, for
// callers that want findings without a score.
func (w *Workshop) ComputeDiagnostics(_ context.Context, col *rating.Collection) []string {
	return irr.Diagnose(col)
}

// GetOrCreateSequence returns the participant's viewing order for a phase,
// deriving it on first request.
func (w *Workshop) GetOrCreateSequence(ctx context.Context, user, phase string, pool []string) []string {
	return w.store.GetOrCreate(ctx, w.key(user, phase), pool)
}

// OnPoolChanged reconciles the participant's order with an updated pool in
// the same round: served positions hold, new items append.
func (w *Workshop) OnPoolChanged(ctx context.Context, user, phase string, newPool []string) []string {
	return w.store.OnPoolChanged(ctx, w.key(user, phase), newPool)
}

// ReplacePool discards the participant's order for an explicit round
// transition and derives a fresh one over the new pool.
func (w *Workshop) ReplacePool(ctx context.Context, user, phase string, pool []string) []string {
	return w.store.Replace(ctx, w.key(user, phase), pool)
}

func (w *Workshop) key(user, phase string) sequence.Key {
	return sequence.Key{Workshop: w.id, User: user, Phase: phase}
}
