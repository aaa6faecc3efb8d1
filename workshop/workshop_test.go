/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package workshop_test

import (
	"context"
	"strings"
	"testing"

	"chainguard.dev/concord/workshop"
	"chainguard.dev/concord/workshop/irr"
	"chainguard.dev/concord/workshop/rating"
	"chainguard.dev/concord/workshop/rubric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRubric(t *testing.T) *rubric.Rubric {
	t.Helper()
	rb, err := rubric.Parse(strings.NewReader(`
name: helpfulness-workshop
questions:
  - id: accuracy
    prompt: Is the response factually accurate?
    scale: ordinal
  - id: safe
    prompt: Is the response safe to show?
    scale: binary
`))
	require.NoError(t, err)
	return rb
}

func TestComputeIRR(t *testing.T) {
	w := workshop.New("w1", testRubric(t))
	defer w.Close()

	col := rating.NewCollection(
		rating.ForQuestion("t1", "alice", "accuracy", 4),
		rating.ForQuestion("t1", "bob", "accuracy", 4),
		rating.ForQuestion("t2", "alice", "accuracy", 2),
		rating.ForQuestion("t2", "bob", "accuracy", 2),
	)

	res := w.ComputeIRR(context.Background(), col)
	require.True(t, res.Computed, "error: %s", res.Error)
	assert.Equal(t, 1.0, res.Score)
	assert.True(t, res.ReadyToProceed)
	require.Contains(t, res.PerQuestion, "accuracy")
}

func TestComputeIRRRubricValidation(t *testing.T) {
	w := workshop.New("w1", testRubric(t))
	defer w.Close()

	// 7 is outside the accuracy question's ordinal scale: the rubric
	// rejects the collection before any metric runs.
	col := rating.NewCollection(
		rating.ForQuestion("t1", "alice", "accuracy", 7),
		rating.ForQuestion("t1", "bob", "accuracy", 4),
		rating.ForQuestion("t2", "alice", "accuracy", 2),
		rating.ForQuestion("t2", "bob", "accuracy", 2),
	)

	res := w.ComputeIRR(context.Background(), col)
	assert.False(t, res.Computed)
	assert.Contains(t, res.Error, "outside the ordinal scale")
	assert.False(t, res.ReadyToProceed)
}

func TestComputeIRRLegacyWorkshop(t *testing.T) {
	w := workshop.New("w1", nil)
	defer w.Close()

	col := rating.NewCollection(
		rating.New("t1", "alice", 4),
		rating.New("t1", "bob", 4),
		rating.New("t2", "alice", 2),
		rating.New("t2", "bob", 2),
	)

	res := w.ComputeIRR(context.Background(), col)
	require.True(t, res.Computed, "error: %s", res.Error)
	assert.Equal(t, irr.MetricCohensKappa, res.Metric)
}

func TestComputeDiagnostics(t *testing.T) {
	w := workshop.New("w1", nil)
	defer w.Close()

	col := rating.NewCollection(
		rating.New("t1", "alice", 3),
		rating.New("t2", "alice", 3),
		rating.New("t1", "bob", 2),
		rating.New("t2", "bob", 4),
	)

	findings := w.ComputeDiagnostics(context.Background(), col)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0], `"alice"`)
}

func TestEngineConfigOption(t *testing.T) {
	w := workshop.New("w1", nil, workshop.WithEngineConfig(irr.Config{
		KappaReadyThreshold:    0.99,
		AlphaReadyThreshold:    0.99,
		PairwiseReadyThreshold: 99,
	}))
	defer w.Close()

	col := rating.NewCollection(
		rating.New("i1", "u1", 3),
		rating.New("i1", "u2", 3),
		rating.New("i2", "u1", 4),
		rating.New("i2", "u2", 4),
		rating.New("i3", "u1", 2),
		rating.New("i3", "u2", 3),
		rating.New("i4", "u1", 5),
		rating.New("i4", "u2", 5),
	)

	res := w.ComputeIRR(context.Background(), col)
	require.True(t, res.Computed, "error: %s", res.Error)
	assert.False(t, res.ReadyToProceed, "score %v should not clear a 0.99 threshold", res.Score)
}

func TestSequenceLifecycle(t *testing.T) {
	w := workshop.New("w1", nil)
	defer w.Close()
	ctx := context.Background()

	pool := []string{"t0", "t1", "t2", "t3"}
	order := w.GetOrCreateSequence(ctx, "alice", "annotation", pool)
	require.Len(t, order, 4)

	// Same request, same order.
	assert.Equal(t, order, w.GetOrCreateSequence(ctx, "alice", "annotation", pool))

	// Mid-round growth holds the served prefix.
	grown := append(append([]string{}, pool...), "t4", "t5")
	updated := w.OnPoolChanged(ctx, "alice", "annotation", grown)
	require.Len(t, updated, 6)
	assert.Equal(t, order, updated[:4])

	// Round transition reshuffles wholesale.
	fresh := w.ReplacePool(ctx, "alice", "annotation", []string{"r0", "r1", "r2"})
	assert.Len(t, fresh, 3)
	assert.Equal(t, fresh, w.GetOrCreateSequence(ctx, "alice", "annotation", []string{"r0", "r1", "r2"}))
}
