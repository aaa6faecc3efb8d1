/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package sequence assigns each workshop participant a stable, individually
randomized viewing order over a shared pool of items.

# Determinism

For returns the same permutation for the same (user, pool-as-a-set) on every
call, across process restarts, and regardless of the order the pool is
supplied in: the seed derives from a fixed-parameter FNV-1a hash of the user
and the sorted pool, and the shuffle runs on an in-package splitmix64
generator rather than math/rand, so sequences survive Go toolchain upgrades
unchanged.

# Pool changes

Extend appends freshly permuted new items after the already-served prefix, so
positions a participant has seen never move mid-round. Replace discards the
old order entirely and is only called on an explicit round transition, never
inferred from the data.

# Store

Store caches one Sequence per (workshop, user, phase) with a TTL, and
serializes read-then-write per key so concurrent extends cannot interleave
and duplicate or drop items.
*/
package sequence
