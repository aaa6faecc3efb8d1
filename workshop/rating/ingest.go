/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package rating

import (
	"fmt"

	"github.com/spf13/cast"
)

// Record field names accepted by FromRecords.
const (
	FieldItem     = "item_id"
	FieldRater    = "rater_id"
	FieldQuestion = "question_id"
	FieldValue    = "value"
)

// FromRecords builds a Collection from loosely-typed storage rows, coercing
// field values to their expected types. item_id, rater_id, and value are
// required; question_id is optional and empty means the legacy single-scale
// form. Rows are applied in order with the Collection's upsert semantics.
func FromRecords(records []map[string]any) (*Collection, error) {
	c := &Collection{}
	for i, rec := range records {
		item, err := requiredString(rec, FieldItem)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rater, err := requiredString(rec, FieldRater)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		raw, ok := rec[FieldValue]
		if !ok {
			return nil, fmt.Errorf("record %d: missing %q", i, FieldValue)
		}
		value, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: coercing %q: %w", i, FieldValue, err)
		}

		var question string
		if raw, ok := rec[FieldQuestion]; ok && raw != nil {
			question, err = cast.ToStringE(raw)
			if err != nil {
				return nil, fmt.Errorf("record %d: coercing %q: %w", i, FieldQuestion, err)
			}
		}

		c.Add(Rating{Item: item, Rater: rater, Question: question, Value: value})
	}
	return c, nil
}

func requiredString(rec map[string]any, field string) (string, error) {
	raw, ok := rec[field]
	if !ok || raw == nil {
		return "", fmt.Errorf("missing %q", field)
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", fmt.Errorf("coercing %q: %w", field, err)
	}
	if s == "" {
		return "", fmt.Errorf("empty %q", field)
	}
	return s, nil
}
