package keyset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymmetricDifference(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		a, b  Set
		want  []string
		equal bool
	}{
		{name: "identical", a: New("a", "b"), b: New("a", "b"), want: []string{}, equal: true},
		{name: "missing in b", a: New("a", "b"), b: New("a"), want: []string{"b"}},
		{name: "extra in b", a: New("a", "b"), b: New("a", "b", "c"), want: []string{"c"}},
		{name: "both sides", a: New("x", "x.y"), b: New("x", "x.z"), want: []string{"x.y", "x.z"}},
		{name: "both empty", a: New(), b: New(), want: []string{}, equal: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.SymmetricDifference(tt.b).Sorted())
			assert.Equal(t, tt.want, tt.b.SymmetricDifference(tt.a).Sorted())
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestSymmetricDifference_Reflexive(t *testing.T) {
	t.Parallel()
	s := New("a", "a.b", "a.c", "d")
	assert.Zero(t, s.SymmetricDifference(s).Len())
}

func TestDifference(t *testing.T) {
	t.Parallel()
	ref := New("a", "b", "c")
	assert.Equal(t, []string{"b", "c"}, ref.Difference(New("a")).Sorted())
	assert.Equal(t, []string{}, New("a").Difference(ref).Sorted())
}

func TestSetBasics(t *testing.T) {
	t.Parallel()
	s := New("b", "a", "a")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("c"))
	s.Add("c")
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())
}
