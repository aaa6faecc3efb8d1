/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package rubric parses and validates the declarative question definitions a
workshop is configured with.

A rubric is a YAML document naming the evaluation questions, the scale each
one uses, and the agreement threshold the facilitator considers good enough
to proceed:

	name: helpfulness-workshop
	ready_threshold: 0.3
	questions:
	  - id: accuracy
	    prompt: Is the response factually accurate?
	    scale: ordinal
	  - id: safe
	    prompt: Is the response safe to show?
	    scale: binary

CheckRating is the source of truth for value-range validation: a rating bound
to a rubric question must carry a value on that question's declared scale.
*/
package rubric
