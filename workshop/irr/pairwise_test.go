/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package irr_test

import (
	"testing"

	"chainguard.dev/concord/workshop/irr"
	"chainguard.dev/concord/workshop/rating"
)

func TestPairwiseAgreement(t *testing.T) {
	offByOne := []rating.Rating{
		rating.New("t1", "u1", 3),
		rating.New("t1", "u2", 4),
		rating.New("t2", "u1", 3),
		rating.New("t2", "u2", 4),
	}

	tests := []struct {
		name           string
		ratings        []rating.Rating
		mode           irr.PairwiseMode
		score          float64
		interpretation string
		ready          bool
	}{{
		name:           "off by one scores zero exact",
		ratings:        offByOne,
		mode:           irr.Exact,
		score:          0.0,
		interpretation: "Poor agreement",
		ready:          false,
	}, {
		name:           "off by one scores full adjacent",
		ratings:        offByOne,
		mode:           irr.Adjacent,
		score:          100.0,
		interpretation: "Excellent agreement",
		ready:          true,
	}, {
		name: "three raters count three pairs per item",
		ratings: []rating.Rating{
			rating.New("t1", "u1", 4),
			rating.New("t1", "u2", 4),
			rating.New("t1", "u3", 2),
			rating.New("t2", "u1", 3),
			rating.New("t2", "u2", 3),
			rating.New("t2", "u3", 3),
		},
		mode: irr.Exact,
		// 1 of 3 pairs agree on t1, all 3 on t2.
		score:          400.0 / 6.0,
		interpretation: "Moderate agreement",
		ready:          false,
	}, {
		name: "no pairs scores zero",
		ratings: []rating.Rating{
			rating.New("t1", "u1", 4),
			rating.New("t2", "u2", 2),
		},
		mode:           irr.Exact,
		score:          0.0,
		interpretation: "Poor agreement",
		ready:          false,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := irr.PairwiseAgreement(rating.NewCollection(test.ratings...), test.mode)
			if res.Score != test.score {
				t.Errorf("Score: got = %v, wanted = %v", res.Score, test.score)
			}
			if res.Interpretation != test.interpretation {
				t.Errorf("Interpretation: got = %q, wanted = %q", res.Interpretation, test.interpretation)
			}
			if res.ReadyToProceed != test.ready {
				t.Errorf("ReadyToProceed: got = %t, wanted = %t", res.ReadyToProceed, test.ready)
			}
			if res.Score < 0 || res.Score > 100 {
				t.Errorf("Score out of range: got = %v, wanted in [0, 100]", res.Score)
			}
		})
	}
}
