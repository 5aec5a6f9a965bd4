package domain

import "fmt"

// ValidateLocales checks that locales is a non-empty list of distinct,
// non-empty identifiers.
func ValidateLocales(locales []string) error {
	if len(locales) == 0 {
		return fmt.Errorf("at least one locale is required")
	}
	seen := make(map[string]struct{}, len(locales))
	for _, l := range locales {
		if l == "" {
			return fmt.Errorf("locale identifiers must not be empty")
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("duplicate locale %q", l)
		}
		seen[l] = struct{}{}
	}
	return nil
}
