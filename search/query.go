// Package search evaluates boolean term queries against an
// index.Reader and ranks matches with the reference engine's
// BM25-flavoured, unlogged IDF — grounded on the corpus's BM25 sparse
// embedding model (embedding.BM25), generalized from its smoothed
// Okapi IDF to the reference engine's specific, unlogged variant.
package search

import "strings"

// Operator selects how a Query's terms are combined.
type Operator int

const (
	// OR keeps every document matching at least one query term.
	OR Operator = iota
	// AND keeps only documents matching every query term.
	AND
)

// ParseOperator is case-insensitive; anything other than "AND" is
// treated as OR, per the reference engine's contract.
func ParseOperator(s string) Operator {
	if strings.EqualFold(s, "AND") {
		return AND
	}
	return OR
}

// Query is a boolean term query: a list of raw (unanalyzed) term
// strings combined with an operator. Duplicate terms are not
// deduplicated — they contribute their score additively.
type Query struct {
	Terms    []string
	Operator Operator
}

// New constructs a Query.
func New(terms []string, operator Operator) Query {
	return Query{Terms: terms, Operator: operator}
}
