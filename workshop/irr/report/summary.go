/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"chainguard.dev/concord/workshop/irr"
)

// Summary renders a markdown agreement report from a Result. Returns the
// report string and a boolean indicating whether anything needs the
// facilitator's attention: an uncomputed score or any row not ready to
// proceed.
func Summary(res *irr.Result) (string, bool) {
	var out strings.Builder
	needsAttention := false

	out.WriteString("## Agreement Summary\n\n")
	if !res.Computed {
		fmt.Fprintf(&out, "Agreement could not be computed: %s\n", res.Error)
		needsAttention = true
	} else {
		var buf bytes.Buffer
		table := summaryTable([]string{"Question", "Metric", "Score", "Interpretation", "Ready"}, &buf)
		_ = table.Append(summaryRow("(overall)", res))
		if !res.ReadyToProceed {
			needsAttention = true
		}

		// Sort question names for consistent output
		questions := make([]string, 0, len(res.PerQuestion))
		for q := range res.PerQuestion {
			questions = append(questions, q)
		}
		sort.Strings(questions)

		for _, q := range questions {
			sub := res.PerQuestion[q]
			_ = table.Append(summaryRow(q, sub))
			if !sub.Computed || !sub.ReadyToProceed {
				needsAttention = true
			}
		}
		_ = table.Render()
		out.WriteString(buf.String())
	}

	if len(res.Diagnostics) > 0 {
		out.WriteString("\n### Diagnostics\n\n")
		for _, d := range res.Diagnostics {
			fmt.Fprintf(&out, "- %s\n", d)
		}
	}

	return out.String(), needsAttention
}

// summaryRow formats one table row for a result, flagging anything the
// facilitator should look at.
func summaryRow(label string, res *irr.Result) []string {
	if !res.Computed {
		return []string{label, res.Metric, "❌ -", res.Error, "no"}
	}
	score := fmt.Sprintf("%.3f", res.Score)
	ready := "yes"
	if !res.ReadyToProceed {
		score = fmt.Sprintf("❌ %s", score)
		ready = "no"
	}
	return []string{label, res.Metric, score, res.Interpretation, ready}
}
