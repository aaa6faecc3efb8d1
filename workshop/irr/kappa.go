/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import (
	"fmt"

	"chainguard.dev/concord/workshop/rating"
)

// DefaultKappaReadyThreshold is the kappa score at or above which a workshop
// may proceed. 0.3 matches the Krippendorff acceptance threshold rather than
// the conventional ~0.4 kappa guidance, so the two metrics gate consistently.
const DefaultKappaReadyThreshold = 0.3

// CohensKappa computes chance-corrected agreement between exactly two raters.
//
// Only cells rated by both raters participate in the pairing; cells seen by a
// single rater are dropped, never imputed. Returns ErrInsufficientData when
// the collection has fewer than 2 annotations, when the rater count is not
// exactly 2, or when fewer than 2 paired cells remain.
func CohensKappa(col *rating.Collection) (*Result, error) {
	return cohensKappa(col, DefaultKappaReadyThreshold)
}

func cohensKappa(col *rating.Collection, readyThreshold float64) (*Result, error) {
	if col.Len() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 annotations, have %d", ErrInsufficientData, col.Len())
	}
	raters := col.Raters()
	if len(raters) != 2 {
		return nil, fmt.Errorf("%w: cohen's kappa requires exactly 2 raters, have %d", ErrInsufficientData, len(raters))
	}
	a, b := raters[0], raters[1]

	// Pair up the two raters' values over shared cells.
	type pair struct{ a, b float64 }
	var pairs []pair
	byCell := col.ByCell()
	for _, cell := range col.Cells() {
		var va, vb float64
		var hasA, hasB bool
		for _, r := range byCell[cell] {
			switch r.Rater {
			case a:
				va, hasA = r.Value, true
			case b:
				vb, hasB = r.Value, true
			}
		}
		if hasA && hasB {
			pairs = append(pairs, pair{a: va, b: vb})
		}
	}
	if len(pairs) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 items rated by both raters, have %d", ErrInsufficientData, len(pairs))
	}

	// Observed agreement: fraction of pairs where both raters chose the
	// same value.
	agree := 0
	marginalA := make(map[float64]int)
	marginalB := make(map[float64]int)
	for _, p := range pairs {
		if p.a == p.b {
			agree++
		}
		marginalA[p.a]++
		marginalB[p.b]++
	}
	observed := float64(agree) / float64(len(pairs))

	// Expected agreement: per category, the probability both raters land
	// there by chance, from each rater's marginal over the paired cells.
	n := float64(len(pairs))
	var expected float64
	for value, countA := range marginalA {
		expected += (float64(countA) / n) * (float64(marginalB[value]) / n)
	}

	var kappa float64
	switch {
	case expected == 1.0 && observed == 1.0:
		kappa = 1.0
	case expected == 1.0:
		kappa = 0.0
	default:
		kappa = (observed - expected) / (1 - expected)
	}
	kappa = clamp(kappa, -1, 1)

	return &Result{
		Metric:         MetricCohensKappa,
		Score:          kappa,
		Computed:       true,
		Interpretation: interpretKappa(kappa),
		ReadyToProceed: kappa >= readyThreshold,
	}, nil
}

// interpretKappa buckets a kappa score per Landis & Koch.
func interpretKappa(kappa float64) string {
	switch {
	case kappa < 0:
		return "Poor agreement"
	case kappa <= 0.20:
		return "Slight agreement"
	case kappa <= 0.40:
		return "Fair agreement"
	case kappa <= 0.60:
		return "Moderate agreement"
	case kappa <= 0.80:
		return "Substantial agreement"
	default:
		return "Almost perfect agreement"
	}
}
