package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/hrsite/pkg/menu"
)

func TestEmbeddedTrees(t *testing.T) {
	nav, err := Navigation("")
	require.NoError(t, err)
	assert.Equal(t, Company, nav.Title)

	countries, err := Countries("")
	require.NoError(t, err)
	assert.Len(t, countries.Leaves(), 4)
}

func TestNavigationServicesHavePages(t *testing.T) {
	nav, err := Navigation("")
	require.NoError(t, err)

	nav.Walk(func(k menu.Key, n *menu.Node) bool {
		if slug, ok := strings.CutPrefix(n.Path, "/services/"); ok {
			_, found := ServiceBySlug(slug)
			assert.True(t, found, "no service copy for %s", k)
		}
		return true
	})
}

func TestNavigationFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Test\nitems:\n  - id: home\n    label: Home\n    path: /\n"), 0o600))

	nav, err := Navigation(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", nav.Title)
	assert.Equal(t, 1, nav.Len())

	_, err = Navigation(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCountryName(t *testing.T) {
	countries, err := Countries("")
	require.NoError(t, err)

	assert.Equal(t, "India", CountryName(countries, "in"))
	assert.Equal(t, "United Kingdom", CountryName(countries, "gb"))
	assert.Equal(t, "ZZ", CountryName(countries, "zz"))
	assert.Equal(t, "IN", CountryName(nil, "in"))
}

func TestCountryNameResolvesByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.yaml")
	data := `title: Countries
items:
  - id: region
    label: Region
    children:
      - id: uae
        label: United Arab Emirates
        path: /country/ae
      - id: ksa
        label: Saudi Arabia
        path: /country/sa
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	countries, err := Countries(path)
	require.NoError(t, err)

	assert.Equal(t, "United Arab Emirates", CountryName(countries, "ae"))
	assert.Equal(t, "Saudi Arabia", CountryName(countries, "sa"))
	assert.Equal(t, "UAE", CountryName(countries, "uae"), "leaf ids are not codes")
}

func TestPagesComplete(t *testing.T) {
	for _, name := range []string{"about", "pricing", "careers", "contact"} {
		p, ok := Pages[name]
		require.True(t, ok, name)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Body)
	}
}
