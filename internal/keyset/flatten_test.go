package keyset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	return m
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "nested and top level",
			doc:  `{"a": {"b": 1, "c": 2}, "d": 3}`,
			want: []string{"a", "a.b", "a.c", "d"},
		},
		{
			name: "empty document",
			doc:  `{}`,
			want: []string{},
		},
		{
			name: "deep nesting",
			doc:  `{"x": {"y": {"z": "leaf"}}}`,
			want: []string{"x", "x.y", "x.y.z"},
		},
		{
			name: "arrays and null are leaves",
			doc:  `{"list": [{"hidden": 1}], "none": null, "flag": true}`,
			want: []string{"flag", "list", "none"},
		},
		{
			name: "empty nested object",
			doc:  `{"group": {}}`,
			want: []string{"group"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Flatten(decode(t, tt.doc))
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestFlatten_LeafValuesIgnored(t *testing.T) {
	t.Parallel()
	en := Flatten(decode(t, `{"greeting": {"hello": "Hello"}}`))
	fi := Flatten(decode(t, `{"greeting": {"hello": "Hei"}}`))
	assert.True(t, en.Equal(fi))
}

func TestFlatten_DottedKeyCollapses(t *testing.T) {
	t.Parallel()
	doc := decode(t, `{"a.b": "literal", "a": {"b": "nested"}}`)

	got := Flatten(doc)
	assert.Equal(t, []string{"a", "a.b"}, got.Sorted())
	assert.Equal(t, []string{"a.b"}, Collisions(doc))
}

func TestCollisions_None(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Collisions(decode(t, `{"a": {"b": 1}, "c": 2}`)))
}
