/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Global metrics with consistent dimensions
	computationCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irr_computations_total",
			Help: "Total number of agreement computations performed",
		},
		[]string{"metric"},
	)

	computationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irr_computation_failures_total",
			Help: "Total number of agreement computations that could not produce a score",
		},
		[]string{"reason"},
	)

	scoreGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "irr_last_score",
			Help: "Most recent agreement score by metric",
		},
		[]string{"metric"},
	)
)

// recordResult updates the prometheus metrics for one Compute call.
func recordResult(res *Result, failureReason string) {
	if !res.Computed {
		computationFailures.With(prometheus.Labels{"reason": failureReason}).Inc()
		return
	}
	computationCounter.With(prometheus.Labels{"metric": res.Metric}).Inc()
	scoreGauge.With(prometheus.Labels{"metric": res.Metric}).Set(res.Score)
}
