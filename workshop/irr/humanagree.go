/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import (
	"fmt"
	"math"

	"chainguard.dev/concord/workshop/rating"
	"gonum.org/v1/gonum/stat"
)

// DefaultHumanAgreementReadyThreshold is the normalized agreement at or
// above which a workshop may proceed.
const DefaultHumanAgreementReadyThreshold = 0.75

// HumanAgreement computes the GDPval-style agreement score: every rating is
// normalized onto [0, 1] (scale auto-detected per question), each
// multi-rated cell scores the mean closeness 1-|hi-hj| over its unordered
// rater pairs, and the final score is the mean of the per-cell scores.
//
// Returns ErrInsufficientData when fewer than 2 annotations exist or no cell
// has 2 or more ratings; an unmeasurable collection must stay
// distinguishable from one measured at zero.
func HumanAgreement(col *rating.Collection) (*Result, error) {
	return humanAgreement(col, DefaultHumanAgreementReadyThreshold)
}

func humanAgreement(col *rating.Collection, readyThreshold float64) (*Result, error) {
	if col.Len() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 annotations, have %d", ErrInsufficientData, col.Len())
	}

	// Scale detection is per question: one rubric may mix binary and
	// ordinal questions, and each normalizes on its own terms.
	scales := make(map[rating.ID]rating.Scale)
	scales[""] = col.ForQuestion("").Scale()
	for _, q := range col.Questions() {
		scales[q] = col.ForQuestion(q).Scale()
	}

	var cellScores []float64
	byCell := col.ByCell()
	for _, cell := range col.Cells() {
		ratings := byCell[cell]
		if len(ratings) < 2 {
			continue
		}
		scale := scales[cell.Question]
		var pairScores []float64
		for i := 0; i < len(ratings); i++ {
			for j := i + 1; j < len(ratings); j++ {
				hi := rating.Normalize(ratings[i].Value, scale)
				hj := rating.Normalize(ratings[j].Value, scale)
				pairScores = append(pairScores, 1-math.Abs(hi-hj))
			}
		}
		cellScores = append(cellScores, stat.Mean(pairScores, nil))
	}
	if len(cellScores) == 0 {
		return nil, fmt.Errorf("%w: no item has ratings from 2 or more raters", ErrInsufficientData)
	}

	score := stat.Mean(cellScores, nil)
	return &Result{
		Metric:         MetricHumanAgreement,
		Score:          score,
		Computed:       true,
		Interpretation: interpretHumanAgreement(score),
		ReadyToProceed: score >= readyThreshold,
	}, nil
}

func interpretHumanAgreement(score float64) string {
	switch {
	case score >= 0.90:
		return "Excellent agreement"
	case score >= 0.75:
		return "Good agreement"
	case score >= 0.60:
		return "Moderate agreement"
	case score >= 0.50:
		return "Fair agreement"
	default:
		return "Poor agreement"
	}
}
