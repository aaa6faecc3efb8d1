/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package irr computes inter-rater reliability for annotation workshops: the
degree to which independent raters (human or AI) assign the same rating to
the same item.

# Metrics

Four interchangeable estimators consume the same rating collections:

  - CohensKappa: chance-corrected agreement for exactly two raters with
    complete pairing. Score in [-1, 1].
  - KrippendorffAlpha: chance-corrected agreement for any rater count,
    tolerating missing data, with squared-distance weighting for ordinal
    scales. Score in [-1, 1].
  - PairwiseAgreement: raw percentage of agreeing rater pairs, exact or
    adjacent. Score in [0, 100].
  - HumanAgreement: mean pairwise closeness of scale-normalized ratings.
    Score in [0, 1], or unmeasurable.

# Selection

Analyze inspects a collection's structure (rater count, item coverage,
completeness) and recommends a metric; the Engine applies that
recommendation, always adds a per-question Krippendorff breakdown so the
facilitator sees comparable numbers regardless of which metric governs the
overall decision, and attaches Diagnose findings.

The Engine never returns an error across the library boundary: malformed or
insufficient input produces a Result with Computed=false and a descriptive
Error field. Arithmetic degeneracies (all ratings identical, zero expected
disagreement) resolve internally to documented short-circuit values.
*/
package irr
