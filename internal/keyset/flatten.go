package keyset

import "sort"

// Separator joins ancestor keys into a dotted path.
const Separator = "."

// Flatten returns every key path in doc, intermediate objects included:
// {"a": {"b": 1}} yields "a" and "a.b". Only nested objects are descended
// into; arrays, scalars and null are leaves. Keys are joined verbatim, so a
// key containing a literal dot can produce the same path as a nested key.
func Flatten(doc map[string]any) Set {
	out := make(Set)
	walk(doc, "", func(path string) { out.Add(path) })
	return out
}

// Collisions returns the paths that Flatten would emit more than once for
// doc, sorted. A non-empty result means some key contains the
// separator and two distinct positions share one dotted path.
func Collisions(doc map[string]any) []string {
	seen := make(map[string]int)
	var dups []string
	walk(doc, "", func(path string) {
		seen[path]++
		if seen[path] == 2 {
			dups = append(dups, path)
		}
	})
	sort.Strings(dups)
	return dups
}

func walk(node map[string]any, prefix string, emit func(string)) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + Separator + key
		}
		emit(path)
		if child, ok := value.(map[string]any); ok {
			walk(child, path, emit)
		}
	}
}
