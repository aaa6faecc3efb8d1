/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package sequence

import (
	"hash/fnv"
	"sort"
	"strings"
)

// For derives the user's viewing order over the item pool: a deterministic
// pseudo-random permutation that depends only on the user and the pool as a
// set. An empty pool yields an empty sequence; there are no error states.
func For(user string, pool []string) []string {
	if len(pool) == 0 {
		return nil
	}
	items := make([]string, len(pool))
	copy(items, pool)
	sort.Strings(items)

	r := splitmix64{state: uint64(seedFor(user, items))}
	r.shuffle(items)
	return items
}

// Extend updates a user's sequence after the pool gained items mid-round:
// the already-served prefix keeps its order verbatim, and the new items are
// appended in their own deterministic permutation. Items that left the pool
// drop out of the kept prefix without disturbing the rest.
func Extend(user string, existing []string, newPool []string) []string {
	inPool := make(map[string]struct{}, len(newPool))
	for _, item := range newPool {
		inPool[item] = struct{}{}
	}
	seen := make(map[string]struct{}, len(existing))

	var kept []string
	for _, item := range existing {
		seen[item] = struct{}{}
		if _, ok := inPool[item]; ok {
			kept = append(kept, item)
		}
	}

	var added []string
	for _, item := range newPool {
		if _, ok := seen[item]; !ok {
			added = append(added, item)
		}
	}
	return append(kept, For(user, added)...)
}

// Replace discards any prior sequence and derives a fresh one. Used only on
// an explicit round transition.
func Replace(user string, pool []string) []string {
	return For(user, pool)
}

// seedFor derives a 31-bit seed from a fixed-parameter FNV-1a hash of the
// user and the sorted pool. Ordering fairness only, nothing
// security-relevant; what matters is that the hash never varies per process.
func seedFor(user string, sortedPool []string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(user))
	_, _ = h.Write([]byte("::"))
	_, _ = h.Write([]byte(strings.Join(sortedPool, ",")))
	return int64(h.Sum32() & 0x7fffffff)
}
