// Package service provides business logic for the application.
package service

import (
	"errors"
	"strconv"

	"github.com/PradeepKumarReddy-098/pioneer/internal/model"
)

// ErrNoEntriesForCategory is returned when a category-only filter
// matches nothing. The combined category+limit branch never returns it.
var ErrNoEntriesForCategory = errors.New("no entries found for this category")

// FilterQuery carries the two optional query parameters of the data
// endpoint. Presence and value are tracked separately: an empty string
// supplied by the client is still "present".
type FilterQuery struct {
	Category    string
	HasCategory bool
	Limit       string
	HasLimit    bool
}

// ApplyFilter selects and slices entries per the filter contract.
//
// The branches form a priority switch: they are evaluated in order and
// the first match wins. Note the asymmetry, preserved deliberately from
// the service contract: the combined branch slices by a coerced limit
// without validating it, while the limit-only branch requires a positive
// integer and otherwise falls through to the default branch.
//
// The input slice is never mutated; every branch returns a fresh slice.
func ApplyFilter(entries []model.Entry, q FilterQuery) ([]model.Entry, error) {
	switch {
	case q.HasCategory && q.HasLimit:
		// Branch 1: filter, then take a coerced-bound prefix.
		// Succeeds even when the result is empty.
		matched := filterByCategory(entries, q.Category)
		return prefix(matched, coerceBound(q.Limit)), nil

	case q.HasCategory:
		// Branch 2: exact category match; empty is a not-found condition.
		matched := filterByCategory(entries, q.Category)
		if len(matched) == 0 {
			return nil, ErrNoEntriesForCategory
		}
		return matched, nil

	case q.HasLimit && positiveInt(q.Limit) > 0:
		// Branch 3: validated positive limit caps the unfiltered collection.
		return prefix(entries, positiveInt(q.Limit)), nil

	default:
		// Branch 4: no effective parameters; return everything.
		return prefix(entries, len(entries)), nil
	}
}

// filterByCategory returns the entries whose category equals the given
// value exactly (case-sensitive, no normalization), preserving relative
// order.
func filterByCategory(entries []model.Entry, category string) []model.Entry {
	matched := make([]model.Entry, 0)
	for _, e := range entries {
		if e.Category == category {
			matched = append(matched, e)
		}
	}
	return matched
}

// prefix returns a copy of the first n entries, clamping n to [0, len].
func prefix(entries []model.Entry, n int) []model.Entry {
	if n < 0 {
		n = 0
	}
	if n > len(entries) {
		n = len(entries)
	}
	out := make([]model.Entry, n)
	copy(out, entries[:n])
	return out
}

// coerceBound converts a raw limit value into a slice bound for the
// unvalidated combined branch. Non-numeric and negative values coerce
// to zero, truncating the result to empty.
func coerceBound(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// positiveInt parses a raw limit value, returning 0 unless it is a
// well-formed integer. Callers treat anything <= 0 as invalid.
func positiveInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
