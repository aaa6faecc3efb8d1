/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rubric

import (
	"fmt"
	"io"
	"os"

	"chainguard.dev/concord/workshop/rating"
	"gopkg.in/yaml.v3"
)

// Question is one named evaluation criterion with its rating scale.
type Question struct {
	// ID is the question identifier ratings reference.
	ID string `yaml:"id"`

	// Prompt is the question text shown to raters.
	Prompt string `yaml:"prompt"`

	// Scale is the rating scale: "ordinal" (1-5) or "binary" (0/1).
	Scale rating.Scale `yaml:"scale"`
}

// Rubric is a workshop's set of evaluation questions.
type Rubric struct {
	// Name identifies the rubric.
	Name string `yaml:"name"`

	// ReadyThreshold is the agreement score at or above which the
	// facilitator considers the group calibrated. Zero means use the
	// engine default.
	ReadyThreshold float64 `yaml:"ready_threshold"`

	// Questions are the evaluation criteria, in presentation order.
	Questions []Question `yaml:"questions"`
}

// Parse decodes a rubric from YAML and validates it.
func Parse(r io.Reader) (*Rubric, error) {
	var rb Rubric
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rb); err != nil {
		return nil, fmt.Errorf("decoding rubric: %w", err)
	}
	if err := rb.Validate(); err != nil {
		return nil, err
	}
	return &rb, nil
}

// Load reads and parses a rubric from a file.
func Load(path string) (*Rubric, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rubric: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Validate checks the rubric for structural problems: missing or duplicate
// question IDs, and unknown scales.
func (r *Rubric) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rubric has no name")
	}
	seen := make(map[string]struct{}, len(r.Questions))
	for i, q := range r.Questions {
		if q.ID == "" {
			return fmt.Errorf("question %d has no id", i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
		switch q.Scale {
		case rating.Ordinal, rating.Binary:
		default:
			return fmt.Errorf("question %q has unknown scale %q", q.ID, q.Scale)
		}
	}
	return nil
}

// Question looks up a question by ID.
func (r *Rubric) Question(id string) (Question, bool) {
	for _, q := range r.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// CheckRating validates a single rating against the rubric: the question must
// exist (legacy ratings are only allowed when the rubric defines no
// questions) and the value must be on the question's declared scale.
func (r *Rubric) CheckRating(rt rating.Rating) error {
	if !rt.PerQuestion() {
		if len(r.Questions) > 0 {
			return fmt.Errorf("rating for item %q has no question, but rubric %q defines %d", rt.Item, r.Name, len(r.Questions))
		}
		if !rating.Ordinal.Contains(rt.Value) && !rating.Binary.Contains(rt.Value) {
			return fmt.Errorf("rating for item %q has out-of-range value %g", rt.Item, rt.Value)
		}
		return nil
	}
	q, ok := r.Question(rt.Question)
	if !ok {
		return fmt.Errorf("rating for item %q references unknown question %q", rt.Item, rt.Question)
	}
	if !q.Scale.Contains(rt.Value) {
		return fmt.Errorf("rating for item %q question %q has value %g outside the %s scale", rt.Item, rt.Question, rt.Value, q.Scale)
	}
	return nil
}

// CheckCollection validates every rating in the collection, returning the
// first problem found.
func (r *Rubric) CheckCollection(c *rating.Collection) error {
	for _, rt := range c.All() {
		if err := r.CheckRating(rt); err != nil {
			return err
		}
	}
	return nil
}
