// Package content holds the static navigation trees and marketing copy of the site.
package content

import (
	"embed"
	"fmt"
	"strings"

	"github.com/mchmarny/hrsite/pkg/menu"
)

//go:embed nav.yaml countries.yaml
var files embed.FS

// Company is the brand shown in page chrome.
const Company = "Peoplewise"

// Navigation returns the main menu, read from path when set and from the
// embedded default otherwise.
func Navigation(path string) (*menu.Menu, error) {
	return load("nav.yaml", path)
}

// Countries returns the country selector menu, read from path when set and
// from the embedded default otherwise.
func Countries(path string) (*menu.Menu, error) {
	return load("countries.yaml", path)
}

func load(embedded, path string) (*menu.Menu, error) {
	if path != "" {
		return menu.LoadFile(path)
	}
	data, err := files.ReadFile(embedded)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", embedded, err)
	}
	m, err := menu.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", embedded, err)
	}
	return m, nil
}

// CountryPrefix is the path under which country selector leaves link.
const CountryPrefix = "/country/"

// CountryPath returns the selector path of a country code.
func CountryPath(code string) string {
	return CountryPrefix + code
}

// CountryName returns the display name of the selector leaf linking to the
// country code, or the upper-cased code when no leaf does.
func CountryName(countries *menu.Menu, code string) string {
	if countries != nil && code != "" {
		if k, ok := countries.FindPath(CountryPath(code)); ok {
			if e, ok := countries.Lookup(k); ok {
				return e.Node.Label
			}
		}
	}
	return strings.ToUpper(code)
}
