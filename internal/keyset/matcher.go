package keyset

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Matcher matches key paths against glob patterns. A single "*" does not
// cross the separator; "**" does.
type Matcher struct {
	patterns []string
	globs    []glob.Glob
}

// NewMatcher compiles patterns. An empty pattern list matches nothing.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: patterns}
	for _, p := range patterns {
		g, err := glob.Compile(p, '.')
		if err != nil {
			return nil, fmt.Errorf("keyset: compile pattern %q: %w", p, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether key matches any pattern.
func (m *Matcher) Match(key string) bool {
	if m == nil {
		return false
	}
	for _, g := range m.globs {
		if g.Match(key) {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no patterns.
func (m *Matcher) Empty() bool { return m == nil || len(m.globs) == 0 }

// Patterns returns the source patterns.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return m.patterns
}

// Exclude returns s without the keys that match.
func (m *Matcher) Exclude(s Set) Set {
	if m.Empty() {
		return s
	}
	return s.Filter(func(k string) bool { return !m.Match(k) })
}
