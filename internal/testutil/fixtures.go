// Package testutil provides locale fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// LocalesDir and FileName match the layout used by WriteLocales.
const (
	LocalesDir = "locales"
	FileName   = "translation.json"
)

// WriteLocales writes one translation document per locale under
// root/locales/<locale>/translation.json.
func WriteLocales(t testing.TB, root string, docs map[string]string) {
	t.Helper()
	for locale, content := range docs {
		WriteFile(t, filepath.Join(root, LocalesDir, locale, FileName), []byte(content))
	}
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// GoldenDir returns the absolute path to the testdata/golden project tree,
// which holds consistent en/fi/sv documents under client/public/locales.
func GoldenDir() string {
	// testutil/ is at internal/testutil/, golden is at testdata/golden/
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "golden")
}
