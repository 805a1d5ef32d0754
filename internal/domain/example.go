// Package domain defines the records that flow through the answering pipeline:
// labeled few-shot examples, test queries, per-stage inputs and the final
// answer records written to disk.
//
// All types are plain values. Examples are loaded once and never mutated;
// queries and drafts live only for the duration of a single solve.
package domain

import "strings"

// UnknownDomain is the tag assigned to test records that carry no domain.
const UnknownDomain = "unknown"

// Example is a solved question from the development set.
// Extra JSON fields in the source file are ignored.
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Domain string `json:"domain"`
}

// Query is a single test item to be answered.
type Query struct {
	Input  string `json:"input"`
	Domain string `json:"domain" validate:"required"`
}

// Validate checks that the query carries a domain tag.
// An empty Input is allowed and produces an empty answer.
func (q *Query) Validate() error { return validate.Struct(q) }

// IsMath reports whether the query's domain is a math domain.
// The check is case-insensitive and matches any tag containing "math".
func (q Query) IsMath() bool {
	return strings.Contains(strings.ToLower(q.Domain), "math")
}

// Output is the persisted record for one answered query.
type Output struct {
	Output string `json:"output"`
}
