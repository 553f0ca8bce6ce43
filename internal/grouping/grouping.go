// Package grouping contains the pure projections that turn flat fetched
// record lists into the grouped and hierarchical shapes the console renders.
// Nothing here performs I/O; output depends only on input order and the
// supplied functions, so repeated calls over the same input are identical.
package grouping

import (
	"sort"
	"strings"
)

// Grouped buckets items under string keys while preserving a deterministic
// key order for display.
type Grouped[T any] struct {
	Keys   []string
	Groups map[string][]T
}

// GroupBy buckets items by keyFn. Group order follows the first appearance
// of each key in the input.
func GroupBy[T any](items []T, keyFn func(T) string) Grouped[T] {
	g := Grouped[T]{Groups: make(map[string][]T)}
	for _, item := range items {
		key := keyFn(item)
		if _, seen := g.Groups[key]; !seen {
			g.Keys = append(g.Keys, key)
		}
		g.Groups[key] = append(g.Groups[key], item)
	}
	return g
}

// GroupByPriority buckets items by keyFn using a fixed display order. Keys
// absent from order collapse into otherKey, which appears exactly once and
// always sorts last, even when order lists it. Empty groups are omitted.
func GroupByPriority[T any](items []T, keyFn func(T) string, order []string, otherKey string) Grouped[T] {
	known := make(map[string]bool, len(order))
	for _, key := range order {
		known[key] = true
	}

	groups := make(map[string][]T)
	for _, item := range items {
		key := keyFn(item)
		if !known[key] {
			key = otherKey
		}
		groups[key] = append(groups[key], item)
	}

	g := Grouped[T]{Groups: make(map[string][]T)}
	for _, key := range order {
		if key == otherKey {
			continue
		}
		if members, ok := groups[key]; ok {
			g.Keys = append(g.Keys, key)
			g.Groups[key] = members
		}
	}
	if members, ok := groups[otherKey]; ok {
		g.Keys = append(g.Keys, otherKey)
		g.Groups[otherKey] = members
	}
	return g
}

// SortWithin stably sorts every group with the supplied comparator. Callers
// are expected to break ties on a secondary field so ordering stays
// reproducible across renders.
func (g Grouped[T]) SortWithin(less func(a, b T) bool) {
	for _, key := range g.Keys {
		members := g.Groups[key]
		sort.SliceStable(members, func(i, j int) bool {
			return less(members[i], members[j])
		})
	}
}

// ModuleOf extracts the module prefix of a permission name, for example
// hr_employee_view belongs to hr. Names without a known prefix fall back to
// fallback.
func ModuleOf(name string, known []string, fallback string) string {
	prefix, _, found := strings.Cut(name, "_")
	if !found {
		return fallback
	}
	for _, module := range known {
		if prefix == module {
			return module
		}
	}
	return fallback
}
