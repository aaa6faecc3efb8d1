/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import (
	"math"

	"chainguard.dev/concord/workshop/rating"
)

// DefaultPairwiseReadyThreshold is the agreement percentage at or above
// which a workshop may proceed.
const DefaultPairwiseReadyThreshold = 75.0

// PairwiseMode selects how strictly two ratings must match to count as
// agreement.
type PairwiseMode string

const (
	// Exact counts a pair as agreeing only when the values are identical.
	Exact PairwiseMode = "exact"
	// Adjacent also counts values one scale point apart.
	Adjacent PairwiseMode = "adjacent"
)

// PairwiseAgreement computes the percentage of agreeing rater pairs, a
// simpler and more interpretable companion to the chance-corrected metrics.
// Every unordered rater pair within a multi-rated cell counts once. A
// collection with no such pairs scores 0.
func PairwiseAgreement(col *rating.Collection, mode PairwiseMode) *Result {
	return pairwiseAgreement(col, mode, DefaultPairwiseReadyThreshold)
}

func pairwiseAgreement(col *rating.Collection, mode PairwiseMode, readyThreshold float64) *Result {
	var agreeing, total int
	byCell := col.ByCell()
	for _, cell := range col.Cells() {
		ratings := byCell[cell]
		for i := 0; i < len(ratings); i++ {
			for j := i + 1; j < len(ratings); j++ {
				total++
				diff := math.Abs(ratings[i].Value - ratings[j].Value)
				if diff == 0 || (mode == Adjacent && diff <= 1) {
					agreeing++
				}
			}
		}
	}

	var score float64
	if total > 0 {
		score = 100 * float64(agreeing) / float64(total)
	}
	return &Result{
		Metric:         MetricPairwise,
		Score:          score,
		Computed:       true,
		Interpretation: interpretPairwise(score),
		ReadyToProceed: score >= readyThreshold,
	}
}

func interpretPairwise(score float64) string {
	switch {
	case score >= 90:
		return "Excellent agreement"
	case score >= 75:
		return "Good agreement"
	case score >= 60:
		return "Moderate agreement"
	case score >= 50:
		return "Fair agreement"
	default:
		return "Poor agreement"
	}
}
