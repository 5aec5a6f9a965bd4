package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-claw-gang/keycheck/internal/domain"
	"github.com/finops-claw-gang/keycheck/internal/testutil"
)

func layoutFor(root string) Layout {
	return Layout{Root: root, LocalesDir: "locales", FileName: "translation.json"}
}

func TestLayoutPath(t *testing.T) {
	t.Parallel()
	l := Layout{Root: "client/public", LocalesDir: "locales", FileName: "translation.json"}
	assert.Equal(t, filepath.Join("client", "public", "locales", "fi", "translation.json"), l.Path("fi"))
}

func TestLocate_AllPresent(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	testutil.WriteLocales(t, root, map[string]string{
		"sv": `{}`,
		"en": `{}`,
		"fi": `{}`,
	})

	got, err := Locate(layoutFor(root), []string{"en", "fi", "sv"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, locale := range []string{"en", "fi", "sv"} {
		assert.Equal(t, locale, got[i].Locale)
		assert.Equal(t, filepath.Join(root, "locales", locale, "translation.json"), got[i].Path)
	}
}

func TestLocate_BatchesMissing(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	testutil.WriteLocales(t, root, map[string]string{"fi": `{}`})

	_, err := Locate(layoutFor(root), []string{"en", "fi", "sv"})
	var mre *domain.MissingResourceError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, []string{
		filepath.Join(root, "locales", "en", "translation.json"),
		filepath.Join(root, "locales", "sv", "translation.json"),
	}, mre.Paths())
}

func TestLocate_DirectoryIsMissing(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "locales", "en", "translation.json"), 0o755))

	_, err := Locate(layoutFor(root), []string{"en"})
	var mre *domain.MissingResourceError
	require.ErrorAs(t, err, &mre)
	assert.Len(t, mre.Missing, 1)
	assert.Equal(t, "en", mre.Missing[0].Locale)
}
