package compare

import "github.com/finops-claw-gang/keycheck/internal/domain"

// Compare compares every document against the one whose locale is
// reference and produces a ComparisonResult. All mismatching locales are
// reported, in the order of docs. If reference is not among docs a
// *domain.ReferenceNotFoundError is returned.
func Compare(reference string, docs []Flattened) (*domain.ComparisonResult, error) {
	base, ok := find(reference, docs)
	if !ok {
		loaded := make([]string, len(docs))
		for i, d := range docs {
			loaded[i] = d.Locale
		}
		return nil, &domain.ReferenceNotFoundError{Reference: reference, Loaded: loaded}
	}

	result := &domain.ComparisonResult{
		Reference:  base.Resource,
		Checked:    []string{},
		Mismatches: []domain.LocaleDiff{},
	}
	for _, d := range docs {
		if d.Locale == reference {
			continue
		}
		result.Checked = append(result.Checked, d.Locale)
		if diff, mismatch := Diff(base, d); mismatch {
			result.Mismatches = append(result.Mismatches, diff)
		}
	}
	return result, nil
}

// Diff returns how doc differs from base and whether it differs at all.
func Diff(base, doc Flattened) (domain.LocaleDiff, bool) {
	sym := base.Keys.SymmetricDifference(doc.Keys)
	if sym.Len() == 0 {
		return domain.LocaleDiff{}, false
	}
	return domain.LocaleDiff{
		Locale:     doc.Locale,
		Path:       doc.Path,
		Difference: sym.Sorted(),
		Missing:    base.Keys.Difference(doc.Keys).Sorted(),
		Extra:      doc.Keys.Difference(base.Keys).Sorted(),
	}, true
}

func find(locale string, docs []Flattened) (Flattened, bool) {
	for _, d := range docs {
		if d.Locale == locale {
			return d, true
		}
	}
	return Flattened{}, false
}
