/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sequence

// splitmix64 is the fixed-parameter generator behind the shuffle. Sequences
// are persisted per user, so the permutation for a given seed must never
// change; a self-contained generator keeps it independent of math/rand's
// algorithm and any future migration to math/rand/v2.
type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// shuffle applies a Fisher-Yates pass over items in place.
func (s *splitmix64) shuffle(items []string) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(s.next() % uint64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}
