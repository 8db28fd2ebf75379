// Package views holds the pure derived-view functions: everything a screen
// needs that is computed from a store snapshot rather than stored. Each call
// recomputes fully; the collections are small enough that caching would be
// noise.
package views

import (
	"strings"

	"github.com/Gobusters/ectolinq"
)

// FilterAll is the sentinel filter value meaning "no filtering".
const FilterAll = "all"

// FilterByText returns the items whose searchable fields contain term,
// case-insensitively, preserving input order. An empty term returns the
// input unchanged.
func FilterByText[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	return ectolinq.Filter(items, func(item T) bool {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	})
}

// FilterByField returns the items whose key equals value exactly. The
// FilterAll sentinel (or empty value) returns the input unchanged.
func FilterByField[T any](items []T, value string, key func(T) string) []T {
	if value == "" || value == FilterAll {
		return items
	}
	return ectolinq.Filter(items, func(item T) bool {
		return key(item) == value
	})
}
