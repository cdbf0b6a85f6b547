// Package listing filters, sorts and paginates catalog collections.
//
// The functions are pure and generic; View keeps one visitor's selections for
// a listing page and resets the page whenever a filter or the sort changes.
package listing

import (
	"errors"
	"slices"
	"strings"
)

// All is the select value that disables a filter dimension
const All = "All"

// ErrInvalidPageSize is returned by Paginate for a page size below 1
var ErrInvalidPageSize = errors.New("page size must be positive")

// Predicate reports whether an item passes one filter dimension
type Predicate[T any] func(T) bool

// Filter keeps the items that satisfy every predicate, in their original order.
// Nil predicates are skipped.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Active reports whether a select value narrows the listing
func Active(value string) bool {
	return value != "" && value != All
}

// Equals builds an exact-match predicate on one field.
// It returns nil (always satisfied) when value is empty or All.
func Equals[T any](value string, field func(T) string) Predicate[T] {
	if !Active(value) {
		return nil
	}
	return func(item T) bool {
		return field(item) == value
	}
}

// MatchText reports whether query is a case-insensitive substring of any field.
// The query is used as typed; only the empty query matches everything.
func MatchText(query string, fields ...string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Search builds a text predicate over the fields returned by fields.
// It returns nil when the query is empty.
func Search[T any](query string, fields func(T) []string) Predicate[T] {
	if query == "" {
		return nil
	}
	return func(item T) bool {
		return MatchText(query, fields(item)...)
	}
}

// SortStable returns a sorted copy of items; equal elements keep their order
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	out := slices.Clone(items)
	if less == nil {
		return out
	}
	slices.SortStableFunc(out, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
	return out
}

// FlaggedFirst orders flagged items before the rest
func FlaggedFirst[T any](flag func(T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		return flag(a) && !flag(b)
	}
}

// Options returns All followed by each distinct non-empty field value in
// first-seen order
func Options[T any](items []T, field func(T) string) []string {
	out := []string{All}
	for _, item := range items {
		v := field(item)
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
