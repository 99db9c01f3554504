// Package tagset implements the tag-set semantics used by job records and
// discovery search: normalization (trim, casefold, dedup) and the AND/OR
// match predicates.
package tagset

import (
	"sort"
	"strings"
)

// Normalize trims, lowercases, drops empties, and deduplicates tags. The
// result is sorted so stored tag sets are order-insensitive. Normalizing an
// already-normalized slice returns an equal slice.
func Normalize(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Set is a tag membership set built from normalized tags.
type Set map[string]struct{}

func New(tags []string) Set {
	s := make(Set, len(tags))
	for _, tag := range Normalize(tags) {
		s[tag] = struct{}{}
	}
	return s
}

func (s Set) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// ContainsAll reports whether s is a superset of want (AND mode).
// An empty want is trivially satisfied.
func (s Set) ContainsAll(want []string) bool {
	for _, tag := range want {
		if !s.Contains(tag) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether s and want intersect (OR mode).
// An empty want matches nothing.
func (s Set) ContainsAny(want []string) bool {
	for _, tag := range want {
		if s.Contains(tag) {
			return true
		}
	}
	return false
}
