/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import "chainguard.dev/concord/workshop/rating"

// StructureReport describes the shape of a rating collection: how many
// raters and items it covers, how complete the rater-by-item grid is, and
// which metric fits that shape. It is recomputed on every call and never
// persisted.
type StructureReport struct {
	// RaterCount is the number of distinct raters.
	RaterCount int

	// ItemCount is the number of distinct items.
	ItemCount int

	// TotalRatings is the number of ratings in the collection.
	TotalRatings int

	// Completeness is the filled fraction of the rater-by-cell grid, where
	// a cell is an (item, question) unit; for legacy collections this is
	// TotalRatings / (RaterCount * ItemCount). Zero when either factor is
	// zero.
	Completeness float64

	// MissingData reports whether the rater-by-item grid has holes.
	MissingData bool

	// RecommendedMetric is the metric suited to this structure. Empty for
	// an empty collection, which cannot be computed at all.
	RecommendedMetric string
}

// Analyze inspects a collection and reports its structure.
//
// The recommendation rules: with fewer than 2 annotations Krippendorff's
// alpha is the safe default; exactly 2 raters with a complete grid get
// Cohen's kappa; everything else gets Krippendorff's alpha, which tolerates
// any rater count and missing data.
func Analyze(col *rating.Collection) StructureReport {
	report := StructureReport{
		RaterCount:   len(col.Raters()),
		ItemCount:    len(col.Items()),
		TotalRatings: col.Len(),
	}
	if report.TotalRatings == 0 {
		return report
	}

	if cells := len(col.Cells()); report.RaterCount > 0 && cells > 0 {
		report.Completeness = float64(report.TotalRatings) / float64(report.RaterCount*cells)
	}
	report.MissingData = report.Completeness < 1.0

	switch {
	case report.TotalRatings < 2:
		report.RecommendedMetric = MetricKrippendorffAlpha
	case report.RaterCount == 2 && !report.MissingData:
		report.RecommendedMetric = MetricCohensKappa
	default:
		report.RecommendedMetric = MetricKrippendorffAlpha
	}
	return report
}
