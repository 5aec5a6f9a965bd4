// Package locator maps locale identifiers to their translation documents
// in the fixed <root>/<localesDir>/<locale>/<fileName> layout.
package locator

import (
	"os"
	"path/filepath"

	"github.com/finops-claw-gang/keycheck/internal/domain"
)

// Layout describes where locale documents live.
type Layout struct {
	Root       string
	LocalesDir string
	FileName   string
}

// Path returns the expected document path for locale.
func (l Layout) Path(locale string) string {
	return filepath.Join(l.Root, l.LocalesDir, locale, l.FileName)
}

// Locate returns one resource per locale, in input order. If any expected
// file is absent (or is a directory) a single *domain.MissingResourceError
// naming every missing path is returned instead.
func Locate(layout Layout, locales []string) ([]domain.Resource, error) {
	resources := make([]domain.Resource, 0, len(locales))
	var missing []domain.Resource
	for _, locale := range locales {
		r := domain.Resource{Locale: locale, Path: layout.Path(locale)}
		if !isFile(r.Path) {
			missing = append(missing, r)
			continue
		}
		resources = append(resources, r)
	}
	if len(missing) > 0 {
		return nil, &domain.MissingResourceError{Missing: missing}
	}
	return resources, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
