/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import (
	"context"
	"errors"
	"fmt"

	"chainguard.dev/concord/workshop/rating"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Config carries the ready-to-proceed thresholds the engine gates on.
type Config struct {
	// KappaReadyThreshold gates Cohen's kappa results. Held at the alpha
	// threshold rather than the conventional ~0.4 so both chance-corrected
	// metrics gate consistently.
	KappaReadyThreshold float64 `env:"IRR_KAPPA_READY_THRESHOLD,default=0.3"`

	// AlphaReadyThreshold gates Krippendorff alpha results.
	AlphaReadyThreshold float64 `env:"IRR_ALPHA_READY_THRESHOLD,default=0.3"`

	// PairwiseReadyThreshold gates pairwise agreement percentages.
	PairwiseReadyThreshold float64 `env:"IRR_PAIRWISE_READY_THRESHOLD,default=75"`
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		KappaReadyThreshold:    DefaultKappaReadyThreshold,
		AlphaReadyThreshold:    DefaultAlphaReadyThreshold,
		PairwiseReadyThreshold: DefaultPairwiseReadyThreshold,
	}
}

// Engine selects and runs the agreement metric suited to a rating
// collection's structure, assembling the uniform Result envelope the web
// layer consumes.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given thresholds.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// NewEngineFromEnv creates an engine configured from IRR_* environment
// variables.
func NewEngineFromEnv(ctx context.Context) (*Engine, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}
	return NewEngine(cfg), nil
}

// Compute validates the collection, runs the recommended metric, and
// attaches the per-question breakdown and diagnostics.
//
// Compute never returns an error: malformed or insufficient input yields a
// Result with Computed=false and a descriptive Error. The per-question
// breakdown always uses Krippendorff's alpha, even when kappa governs the
// overall decision, so question scores stay comparable across workshops.
func (e *Engine) Compute(ctx context.Context, col *rating.Collection) *Result {
	ctx, span := otel.Tracer("chainguard.dev/concord/workshop/irr").Start(ctx, "irr.Compute",
		oteltrace.WithAttributes(attribute.Int("irr.annotations", col.Len())))
	defer span.End()
	logger := clog.FromContext(ctx)

	if err := validate(col); err != nil {
		res := failed("", err)
		res.Diagnostics = Diagnose(col)
		reason := "input"
		if errors.Is(err, ErrInsufficientData) {
			reason = "insufficient_data"
		}
		recordResult(res, reason)
		logger.With("reason", reason).Info("Agreement not computed", "error", res.Error)
		return res
	}

	structure := Analyze(col)
	var res *Result
	var err error
	switch structure.RecommendedMetric {
	case MetricCohensKappa:
		res, err = cohensKappa(col, e.cfg.KappaReadyThreshold)
	default:
		res, err = krippendorffAlpha(col, e.cfg.AlphaReadyThreshold)
	}
	if err != nil {
		res = failed(structure.RecommendedMetric, err)
		recordResult(res, "insufficient_data")
	} else {
		recordResult(res, "")
	}

	res.PerQuestion = perQuestionAlpha(col, e.cfg.AlphaReadyThreshold)
	res.Diagnostics = Diagnose(col)

	span.SetAttributes(
		attribute.String("irr.metric", res.Metric),
		attribute.Float64("irr.score", res.Score),
		attribute.Bool("irr.ready", res.ReadyToProceed),
	)
	logger.With(
		"metric", res.Metric,
		"raters", structure.RaterCount,
		"items", structure.ItemCount,
	).Info("Agreement computed", "result", res.String())
	return res
}

// validate applies the caller-facing input checks: enough annotations,
// values on a recognized scale, and enough rater overlap to measure
// agreement at all.
func validate(col *rating.Collection) error {
	if col.Len() < 2 {
		return fmt.Errorf("%w: need at least 2 annotations, have %d", ErrInsufficientData, col.Len())
	}

	// Value ranges are checked per scale group: each question detects its
	// own scale, as does the legacy group.
	groups := append([]rating.ID{""}, col.Questions()...)
	for _, q := range groups {
		sub := col.ForQuestion(q)
		if sub.Len() == 0 {
			continue
		}
		scale := sub.Scale()
		for _, r := range sub.All() {
			if !scale.Contains(r.Value) {
				return fmt.Errorf("rating for item %q by %q has value %g outside the %s scale", r.Item, r.Rater, r.Value, scale)
			}
		}
	}

	if raters := col.Raters(); len(raters) < 2 {
		return fmt.Errorf("%w: need at least 2 distinct raters, have %d", ErrInsufficientData, len(raters))
	}

	multiRated := 0
	for _, ratings := range col.ByCell() {
		if len(ratings) >= 2 {
			multiRated++
		}
	}
	if multiRated < 2 {
		return fmt.Errorf("%w: need at least 2 items rated by multiple raters, have %d", ErrInsufficientData, multiRated)
	}
	return nil
}
