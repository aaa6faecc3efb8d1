/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rating

// Collection is an ordered set of ratings for one workshop. Insertion order
// is preserved and is the canonical iteration order for diagnostics; the
// agreement metrics themselves are order-independent.
type Collection struct {
	ratings []Rating
}

// NewCollection creates a collection from the given ratings, applying the
// same upsert semantics as Add.
func NewCollection(ratings ...Rating) *Collection {
	c := &Collection{}
	for _, r := range ratings {
		c.Add(r)
	}
	return c
}

// Add appends a rating. If the same rater already rated the same
// (item, question) cell, the earlier value is replaced in place; duplicates
// are never summed.
func (c *Collection) Add(r Rating) {
	for i, existing := range c.ratings {
		if existing.Item == r.Item && existing.Rater == r.Rater && existing.Question == r.Question {
			c.ratings[i] = r
			return
		}
	}
	c.ratings = append(c.ratings, r)
}

// Len returns the number of ratings in the collection.
func (c *Collection) Len() int {
	return len(c.ratings)
}

// All returns a copy of the ratings in insertion order.
func (c *Collection) All() []Rating {
	out := make([]Rating, len(c.ratings))
	copy(out, c.ratings)
	return out
}

// Raters returns the distinct rater IDs in first-seen order.
func (c *Collection) Raters() []ID {
	return c.distinct(func(r Rating) (ID, bool) { return r.Rater, true })
}

// Items returns the distinct item IDs in first-seen order.
func (c *Collection) Items() []ID {
	return c.distinct(func(r Rating) (ID, bool) { return r.Item, true })
}

// Questions returns the distinct non-empty question IDs in first-seen order.
// Legacy ratings contribute nothing.
func (c *Collection) Questions() []ID {
	return c.distinct(func(r Rating) (ID, bool) { return r.Question, r.Question != "" })
}

// HasQuestions reports whether any rating is bound to a rubric question.
func (c *Collection) HasQuestions() bool {
	for _, r := range c.ratings {
		if r.PerQuestion() {
			return true
		}
	}
	return false
}

// ForQuestion returns a new collection holding only the ratings for the given
// question. An empty question selects the legacy ratings.
func (c *Collection) ForQuestion(question ID) *Collection {
	out := &Collection{}
	for _, r := range c.ratings {
		if r.Question == question {
			out.ratings = append(out.ratings, r)
		}
	}
	return out
}

// Cells returns the distinct (item, question) agreement units in first-seen
// order.
func (c *Collection) Cells() []Cell {
	seen := make(map[Cell]struct{}, len(c.ratings))
	var out []Cell
	for _, r := range c.ratings {
		cell := r.Cell()
		if _, ok := seen[cell]; ok {
			continue
		}
		seen[cell] = struct{}{}
		out = append(out, cell)
	}
	return out
}

// ByCell groups ratings by their (item, question) agreement unit. Within a
// cell, ratings keep insertion order.
func (c *Collection) ByCell() map[Cell][]Rating {
	out := make(map[Cell][]Rating)
	for _, r := range c.ratings {
		cell := r.Cell()
		out[cell] = append(out[cell], r)
	}
	return out
}

// Values returns every rating value in insertion order.
func (c *Collection) Values() []float64 {
	out := make([]float64, 0, len(c.ratings))
	for _, r := range c.ratings {
		out = append(out, r.Value)
	}
	return out
}

// Scale detects the scale of the collection: Binary iff every observed value
// is 0 or 1, Ordinal otherwise (including an empty collection).
func (c *Collection) Scale() Scale {
	return DetectScale(c.Values())
}

func (c *Collection) distinct(key func(Rating) (ID, bool)) []ID {
	seen := make(map[ID]struct{}, len(c.ratings))
	var out []ID
	for _, r := range c.ratings {
		id, ok := key(r)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
