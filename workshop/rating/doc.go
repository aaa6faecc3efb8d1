/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package rating defines the data model shared by the agreement metrics and
diagnostics: individual Rating records, ordered Collections of them, and the
scale handling (ordinal 1-5 vs binary 0/1) the metrics depend on.

# Ratings

A Rating captures one rater's verdict on one item. Workshops that define a
rubric attach a question to each rating (ForQuestion); older workshops carry a
single implicit scale and use the legacy form (New) with no question. The two
forms never mix meanings: a rating with an empty Question is a legacy rating,
and every consumer splits on PerQuestion() before interpreting the value.

# Collections

A Collection preserves insertion order, which is the canonical iteration order
for diagnostics. Adding a rating for an (item, rater, question) cell that is
already present replaces the earlier value; duplicate cells never reach the
metrics.

# Scales

DetectScale reports Binary when every observed value is 0 or 1, and Ordinal
otherwise. Normalize maps a value onto [0, 1] for scale-independent
comparisons: identity for binary, (v-1)/4 for ordinal.
*/
package rating
