/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rating_test

import (
	"testing"

	"chainguard.dev/concord/workshop/rating"
	"github.com/google/go-cmp/cmp"
)

func TestCollectionUpsert(t *testing.T) {
	c := rating.NewCollection(
		rating.New("t1", "alice", 4),
		rating.New("t2", "alice", 2),
		rating.New("t1", "bob", 3),
		// Re-rating the same cell replaces the earlier value in place.
		rating.New("t1", "alice", 5),
	)

	if got := c.Len(); got != 3 {
		t.Errorf("Len: got = %d, wanted = 3", got)
	}

	wanted := []rating.Rating{
		{Item: "t1", Rater: "alice", Value: 5},
		{Item: "t2", Rater: "alice", Value: 2},
		{Item: "t1", Rater: "bob", Value: 3},
	}
	if diff := cmp.Diff(wanted, c.All()); diff != "" {
		t.Errorf("All() mismatch (-wanted +got):\n%s", diff)
	}
}

func TestCollectionUpsertPerQuestion(t *testing.T) {
	// The same rater may rate the same item under different questions;
	// only the (item, rater, question) cell is unique.
	c := rating.NewCollection(
		rating.ForQuestion("t1", "alice", "accuracy", 4),
		rating.ForQuestion("t1", "alice", "clarity", 2),
		rating.ForQuestion("t1", "alice", "accuracy", 3),
	)

	if got := c.Len(); got != 2 {
		t.Errorf("Len: got = %d, wanted = 2", got)
	}
	if got := c.All()[0].Value; got != 3 {
		t.Errorf("accuracy value after upsert: got = %g, wanted = 3", got)
	}
}

func TestCollectionAccessors(t *testing.T) {
	c := rating.NewCollection(
		rating.ForQuestion("t2", "bob", "accuracy", 4),
		rating.ForQuestion("t1", "alice", "clarity", 2),
		rating.ForQuestion("t1", "bob", "accuracy", 3),
		rating.New("t3", "carol", 5),
	)

	// First-seen order, not lexical order.
	if diff := cmp.Diff([]string{"bob", "alice", "carol"}, c.Raters()); diff != "" {
		t.Errorf("Raters mismatch (-wanted +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"t2", "t1", "t3"}, c.Items()); diff != "" {
		t.Errorf("Items mismatch (-wanted +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"accuracy", "clarity"}, c.Questions()); diff != "" {
		t.Errorf("Questions mismatch (-wanted +got):\n%s", diff)
	}
	if !c.HasQuestions() {
		t.Error("HasQuestions: got = false, wanted = true")
	}

	accuracy := c.ForQuestion("accuracy")
	if got := accuracy.Len(); got != 2 {
		t.Errorf("ForQuestion(accuracy).Len: got = %d, wanted = 2", got)
	}
	legacy := c.ForQuestion("")
	if got := legacy.Len(); got != 1 {
		t.Errorf("ForQuestion(\"\").Len: got = %d, wanted = 1", got)
	}
}

func TestCollectionCells(t *testing.T) {
	c := rating.NewCollection(
		rating.ForQuestion("t1", "alice", "accuracy", 4),
		rating.ForQuestion("t1", "bob", "accuracy", 3),
		rating.ForQuestion("t1", "alice", "clarity", 2),
		rating.New("t2", "alice", 1),
	)

	wanted := []rating.Cell{
		{Item: "t1", Question: "accuracy"},
		{Item: "t1", Question: "clarity"},
		{Item: "t2"},
	}
	if diff := cmp.Diff(wanted, c.Cells()); diff != "" {
		t.Errorf("Cells mismatch (-wanted +got):\n%s", diff)
	}

	byCell := c.ByCell()
	if got := len(byCell[rating.Cell{Item: "t1", Question: "accuracy"}]); got != 2 {
		t.Errorf("accuracy cell size: got = %d, wanted = 2", got)
	}
}

func TestDetectScale(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		wanted rating.Scale
	}{{
		name:   "binary",
		values: []float64{0, 1, 1, 0},
		wanted: rating.Binary,
	}, {
		name:   "ordinal",
		values: []float64{1, 3, 5},
		wanted: rating.Ordinal,
	}, {
		name:   "all ones is binary",
		values: []float64{1, 1},
		wanted: rating.Binary,
	}, {
		name:   "empty defaults to ordinal",
		values: nil,
		wanted: rating.Ordinal,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := rating.DetectScale(test.values); got != test.wanted {
				t.Errorf("DetectScale: got = %q, wanted = %q", got, test.wanted)
			}
		})
	}
}

func TestScaleContains(t *testing.T) {
	tests := []struct {
		scale  rating.Scale
		value  float64
		wanted bool
	}{
		{rating.Binary, 0, true},
		{rating.Binary, 1, true},
		{rating.Binary, 2, false},
		{rating.Ordinal, 1, true},
		{rating.Ordinal, 5, true},
		{rating.Ordinal, 0, false},
		{rating.Ordinal, 6, false},
		{rating.Ordinal, 3.5, false},
	}

	for _, test := range tests {
		if got := test.scale.Contains(test.value); got != test.wanted {
			t.Errorf("%s.Contains(%g): got = %t, wanted = %t", test.scale, test.value, got, test.wanted)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		scale  rating.Scale
		value  float64
		wanted float64
	}{
		{rating.Ordinal, 1, 0},
		{rating.Ordinal, 3, 0.5},
		{rating.Ordinal, 5, 1},
		{rating.Binary, 0, 0},
		{rating.Binary, 1, 1},
	}

	for _, test := range tests {
		if got := rating.Normalize(test.value, test.scale); got != test.wanted {
			t.Errorf("Normalize(%g, %s): got = %g, wanted = %g", test.value, test.scale, got, test.wanted)
		}
	}
}
