/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package workshop binds the agreement engine, the rubric, and the sequence
store into the call surface the annotation web layer consumes: compute
agreement after a phase, surface diagnostics, and hand each participant
their viewing order.

The package owns no transport or storage of its own; every operation is a
pure function over the supplied ratings plus the in-memory sequence cache.
*/
package workshop
