/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import (
	"errors"
	"fmt"
	"strings"

	"chainguard.dev/concord/workshop/rating"
)

// Metric names, as reported in Result.Metric and StructureReport recommendations.
const (
	MetricCohensKappa       = "cohens_kappa"
	MetricKrippendorffAlpha = "krippendorff_alpha"
	MetricPairwise          = "pairwise_agreement"
	MetricHumanAgreement    = "human_agreement"
)

// ErrInsufficientData indicates a collection is too small or too sparse for
// the requested metric: too few annotations, raters, or paired items. It is
// wrapped by the metric functions and folded into a failed Result by the
// Engine.
var ErrInsufficientData = errors.New("insufficient data")

// Result is the uniform envelope every metric produces.
//
// Score ranges differ by metric: Kappa and Alpha are in [-1, 1], pairwise
// agreement in [0, 100], human agreement in [0, 1]. Callers must check
// Computed before reading Score; an unmeasurable collection is not the same
// as one measured at zero.
type Result struct {
	// Metric names the estimator that produced this result.
	Metric string

	// Score is the agreement value. Meaningless when Computed is false.
	Score float64

	// Computed reports whether Score was actually measured.
	Computed bool

	// Error describes why the score could not be computed. Empty when
	// Computed is true.
	Error string

	// Interpretation is the human-readable bucket for the score.
	Interpretation string

	// ReadyToProceed reports whether agreement is high enough for the
	// workshop to move on.
	ReadyToProceed bool

	// PerQuestion holds an independent Krippendorff result per rubric
	// question. Nil for legacy single-scale collections.
	PerQuestion map[rating.ID]*Result

	// Diagnostics are the ordered findings from Diagnose.
	Diagnostics []string
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	if !r.Computed {
		return fmt.Sprintf("%s: not computed (%s)", r.Metric, r.Error)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %.3f (%s)", r.Metric, r.Score, r.Interpretation)
	if r.ReadyToProceed {
		sb.WriteString(" - ready to proceed")
	}
	return sb.String()
}

// failed builds the structured-failure shape of a Result.
func failed(metric string, err error) *Result {
	return &Result{Metric: metric, Error: err.Error()}
}

// clamp limits a score to [lo, hi] to absorb floating-point drift.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
