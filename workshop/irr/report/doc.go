/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package report renders agreement results for facilitator dashboards and chat
surfaces: a markdown summary table of the overall and per-question scores,
with below-threshold entries flagged, followed by the diagnostic findings.
*/
package report
