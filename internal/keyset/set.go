// Package keyset flattens nested translation documents into sets of dotted
// key paths and provides the set algebra used to compare locales.
package keyset

import "sort"

// Set is a set of dotted key paths.
type Set map[string]struct{}

// New returns a set holding keys.
func New(keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s Set) Add(key string) { s[key] = struct{}{} }

func (s Set) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Set) Len() int { return len(s) }

// Sorted returns the keys in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Difference returns the keys of s that are not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for k := range s {
		if !other.Contains(k) {
			out.Add(k)
		}
	}
	return out
}

// SymmetricDifference returns the keys present in exactly one of s and other.
func (s Set) SymmetricDifference(other Set) Set {
	out := s.Difference(other)
	for k := range other {
		if !s.Contains(k) {
			out.Add(k)
		}
	}
	return out
}

// Equal reports whether both sets hold the same keys.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// Filter returns the keys for which keep returns true.
func (s Set) Filter(keep func(string) bool) Set {
	out := make(Set, len(s))
	for k := range s {
		if keep(k) {
			out.Add(k)
		}
	}
	return out
}
