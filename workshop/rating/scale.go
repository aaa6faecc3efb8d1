/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rating

import "math"

// Scale is the rating scale a group of values is drawn from.
type Scale string

const (
	// Ordinal is the 1-5 Likert scale where numeric distance is meaningful.
	Ordinal Scale = "ordinal"
	// Binary is the 0/1 pass-fail scale.
	Binary Scale = "binary"
)

// DetectScale reports Binary iff every observed value is 0 or 1, and Ordinal
// otherwise. An empty slice detects as Ordinal.
func DetectScale(values []float64) Scale {
	if len(values) == 0 {
		return Ordinal
	}
	for _, v := range values {
		if v != 0 && v != 1 {
			return Ordinal
		}
	}
	return Binary
}

// Contains reports whether v is a valid value on the scale.
func (s Scale) Contains(v float64) bool {
	switch s {
	case Binary:
		return v == 0 || v == 1
	default:
		return v == math.Trunc(v) && v >= 1 && v <= 5
	}
}

// Normalize maps a value onto [0, 1]: identity for binary, (v-1)/4 for
// ordinal.
func Normalize(v float64, s Scale) float64 {
	if s == Binary {
		return v
	}
	return (v - 1) / 4
}
