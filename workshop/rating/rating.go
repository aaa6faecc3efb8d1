/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rating

// ID identifies an item, rater, or question within a workshop.
type ID = string

// Rating is one rater's verdict on one item. Question is empty for legacy
// single-scale workshops; consumers split on PerQuestion() rather than
// inspecting the field directly.
type Rating struct {
	// Item identifies the content item (trace) being rated.
	Item ID

	// Rater identifies the human or AI rater.
	Rater ID

	// Question identifies the rubric question this rating answers.
	// Empty for the legacy single-scale form.
	Question ID

	// Value is the rating itself: an integer 1-5 on the ordinal scale,
	// or 0/1 on the binary scale.
	Value float64
}

// New creates a legacy single-scale rating with no question.
func New(item, rater ID, value float64) Rating {
	return Rating{Item: item, Rater: rater, Value: value}
}

// ForQuestion creates a rating bound to a rubric question.
func ForQuestion(item, rater, question ID, value float64) Rating {
	return Rating{Item: item, Rater: rater, Question: question, Value: value}
}

// PerQuestion reports whether this rating is bound to a rubric question.
func (r Rating) PerQuestion() bool {
	return r.Question != ""
}

// Cell identifies the (item, question) unit of agreement a rating belongs to.
// In legacy mode the question component is empty, so a cell degenerates to an
// item.
type Cell struct {
	Item     ID
	Question ID
}

// Cell returns the agreement unit this rating belongs to.
func (r Rating) Cell() Cell {
	return Cell{Item: r.Item, Question: r.Question}
}
