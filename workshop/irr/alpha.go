/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import (
	"fmt"

	"chainguard.dev/concord/workshop/rating"
)

// DefaultAlphaReadyThreshold is the alpha score at or above which a workshop
// may proceed, per Krippendorff's "lowest conceivable limit" of 0.667 relaxed
// to the exploratory 0.3 used for early calibration rounds.
const DefaultAlphaReadyThreshold = 0.3

// valuePair is a key in the coincidence accumulator: an ordered pair of
// values observed within the same cell.
type valuePair struct{ a, b float64 }

// KrippendorffAlpha computes chance-corrected agreement for any rater count,
// tolerating missing data. Distances between values are squared, which is
// correct for the ordinal 1-5 scale and degenerates to nominal distance for
// binary 0/1 data.
//
// Returns ErrInsufficientData when no cell has ratings from 2 or more raters.
func KrippendorffAlpha(col *rating.Collection) (*Result, error) {
	return krippendorffAlpha(col, DefaultAlphaReadyThreshold)
}

func krippendorffAlpha(col *rating.Collection, readyThreshold float64) (*Result, error) {
	if col.Len() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 annotations, have %d", ErrInsufficientData, col.Len())
	}

	// Build the coincidence accumulator: within each cell holding n >= 2
	// ratings, every ordered pair contributes weight 1/(n-1). Cells with a
	// single rating contribute nothing.
	coincidence := make(map[valuePair]float64)
	var totalWeight float64
	byCell := col.ByCell()
	for _, cell := range col.Cells() {
		ratings := byCell[cell]
		n := len(ratings)
		if n < 2 {
			continue
		}
		w := 1.0 / float64(n-1)
		for i := range ratings {
			for j := range ratings {
				if i == j {
					continue
				}
				coincidence[valuePair{a: ratings[i].Value, b: ratings[j].Value}] += w
				totalWeight += w
			}
		}
	}
	if totalWeight == 0 {
		return nil, fmt.Errorf("%w: no item has ratings from 2 or more raters", ErrInsufficientData)
	}

	// Trivial agreement: no off-diagonal coincidence mass.
	trivial := true
	for pair := range coincidence {
		if pair.a != pair.b {
			trivial = false
			break
		}
	}
	if trivial {
		return alphaResult(1.0, readyThreshold), nil
	}

	var observed float64
	for pair, w := range coincidence {
		d := pair.a - pair.b
		observed += w * d * d
	}
	observed /= totalWeight

	// Marginal mass per distinct value: the sum of its row and column
	// coincidence mass.
	marginals := make(map[float64]float64)
	var marginalMass float64
	for pair, w := range coincidence {
		marginals[pair.a] += w
		marginals[pair.b] += w
		marginalMass += 2 * w
	}

	var expected float64
	for v1, m1 := range marginals {
		for v2, m2 := range marginals {
			if v1 == v2 {
				continue
			}
			d := v1 - v2
			expected += (m1 / marginalMass) * (m2 / marginalMass) * d * d
		}
	}

	var alpha float64
	switch {
	case expected == 0 && observed == 0:
		alpha = 1.0
	case expected == 0:
		alpha = 0.0
	default:
		alpha = 1 - observed/expected
	}
	return alphaResult(clamp(alpha, -1, 1), readyThreshold), nil
}

func alphaResult(alpha, readyThreshold float64) *Result {
	return &Result{
		Metric:         MetricKrippendorffAlpha,
		Score:          alpha,
		Computed:       true,
		Interpretation: interpretAlpha(alpha),
		ReadyToProceed: alpha >= readyThreshold,
	}
}

// interpretAlpha buckets an alpha score per Krippendorff's guidance.
func interpretAlpha(alpha float64) string {
	switch {
	case alpha >= 0.800:
		return "Excellent agreement"
	case alpha >= 0.667:
		return "Good agreement"
	case alpha >= 0.300:
		return "Acceptable agreement"
	case alpha >= 0:
		return "Poor agreement"
	default:
		return "Systematic disagreement"
	}
}

// perQuestionAlpha runs the full alpha computation independently for each
// distinct question in the collection. Metric errors become failed Results
// rather than propagating; one sparse question must not hide the others.
// Returns nil for legacy collections with no questions.
func perQuestionAlpha(col *rating.Collection, readyThreshold float64) map[rating.ID]*Result {
	questions := col.Questions()
	if len(questions) == 0 {
		return nil
	}
	out := make(map[rating.ID]*Result, len(questions))
	for _, q := range questions {
		res, err := krippendorffAlpha(col.ForQuestion(q), readyThreshold)
		if err != nil {
			res = failed(MetricKrippendorffAlpha, err)
		}
		out[q] = res
	}
	return out
}

// PerQuestionAlpha is the exported form of the per-question breakdown using
// the default ready threshold.
func PerQuestionAlpha(col *rating.Collection) map[rating.ID]*Result {
	return perQuestionAlpha(col, DefaultAlphaReadyThreshold)
}
