/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import (
	"fmt"

	"chainguard.dev/concord/workshop/rating"
	"gonum.org/v1/gonum/stat"
)

// Diagnose scans a collection for patterns that depress agreement scores and
// returns ordered, human-readable findings. It is independent of metric
// choice, never fails, and returns nil when nothing looks wrong.
//
// Scale detection is per question, so a mixed rubric diagnoses each
// question's ratings on its own scale. To scope the scan to one question,
// pass col.ForQuestion(q).
func Diagnose(col *rating.Collection) []string {
	if col.Len() == 0 {
		return nil
	}
	scales := make(map[rating.ID]rating.Scale)
	scales[""] = col.ForQuestion("").Scale()
	for _, q := range col.Questions() {
		scales[q] = col.ForQuestion(q).Scale()
	}

	var findings []string
	findings = append(findings, noVarianceRaters(col)...)
	findings = append(findings, extremeDisagreements(col, scales)...)
	findings = append(findings, systematicBias(col, scales)...)
	return findings
}

// noVarianceRaters flags raters whose every rating is the same value:
// rubber-stamping raters inflate or deflate every metric.
func noVarianceRaters(col *rating.Collection) []string {
	values := make(map[rating.ID]map[float64]struct{})
	constant := make(map[rating.ID]float64)
	for _, r := range col.All() {
		if values[r.Rater] == nil {
			values[r.Rater] = make(map[float64]struct{})
		}
		values[r.Rater][r.Value] = struct{}{}
		constant[r.Rater] = r.Value
	}

	var findings []string
	for _, rater := range col.Raters() {
		if len(values[rater]) == 1 {
			findings = append(findings,
				fmt.Sprintf("Rater %q gave the same rating (%g) every time; check engagement or rubric understanding", rater, constant[rater]))
		}
	}
	return findings
}

// extremeDisagreements flags cells whose ratings span opposite ends of the
// cell's own scale: the full 0-to-1 flip for binary, a range of 4 or more
// for ordinal.
func extremeDisagreements(col *rating.Collection, scales map[rating.ID]rating.Scale) []string {
	var findings []string
	byCell := col.ByCell()
	for _, cell := range col.Cells() {
		ratings := byCell[cell]
		if len(ratings) < 2 {
			continue
		}
		extreme := 4.0
		if scales[cell.Question] == rating.Binary {
			extreme = 1.0
		}
		lo, hi := ratings[0].Value, ratings[0].Value
		for _, r := range ratings[1:] {
			if r.Value < lo {
				lo = r.Value
			}
			if r.Value > hi {
				hi = r.Value
			}
		}
		if hi-lo >= extreme {
			label := string(cell.Item)
			if cell.Question != "" {
				label = fmt.Sprintf("%s (question %q)", cell.Item, cell.Question)
			}
			findings = append(findings,
				fmt.Sprintf("Item %s has extreme disagreement (range %g); raters may be interpreting it differently", label, hi-lo))
		}
	}
	return findings
}

// systematicBias flags a consistently harsh or lenient split between raters:
// when per-rater average ratings spread by 2 or more scale points, the group
// needs to talk about standards, not individual items. Only ordinal-scale
// ratings participate; 0/1 answers on binary questions would drag the means.
func systematicBias(col *rating.Collection, scales map[rating.ID]rating.Scale) []string {
	byRater := make(map[rating.ID][]float64)
	for _, r := range col.All() {
		if scales[r.Question] != rating.Ordinal {
			continue
		}
		byRater[r.Rater] = append(byRater[r.Rater], r.Value)
	}

	var means []float64
	for _, rater := range col.Raters() {
		if values := byRater[rater]; len(values) > 0 {
			means = append(means, stat.Mean(values, nil))
		}
	}
	if len(means) < 2 {
		return nil
	}
	lo, hi := means[0], means[0]
	for _, mean := range means[1:] {
		if mean < lo {
			lo = mean
		}
		if mean > hi {
			hi = mean
		}
	}
	if hi-lo >= 2 {
		return []string{fmt.Sprintf("Average ratings differ by %.1f points between the most lenient and harshest rater; consider discussing rating standards", hi-lo)}
	}
	return nil
}
