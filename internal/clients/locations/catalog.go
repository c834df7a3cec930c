package locations

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Theme is a named group of locations that play well together
type Theme struct {
	Name      string   `yaml:"name"`
	Locations []string `yaml:"locations"`
}

// Catalog is the parsed catalog file
type Catalog struct {
	Themes []Theme `yaml:"themes"`
}

// DefaultCatalog parses the catalog compiled into the binary
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// ParseCatalog reads a YAML catalog. Names are trimmed and deduplicated per
// theme, and themes with fewer than DrawSize names are rejected.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, spyerr.WrapWithCode(err, spyerr.CodeInvalidArgument, "failed to parse location catalog")
	}
	if len(catalog.Themes) == 0 {
		return nil, spyerr.InvalidArgument("location catalog has no themes")
	}

	for i := range catalog.Themes {
		theme := &catalog.Themes[i]
		theme.Name = strings.TrimSpace(theme.Name)
		if theme.Name == "" {
			return nil, spyerr.InvalidArgumentf("theme %d has no name", i)
		}
		theme.Locations = distinct(theme.Locations)
		if len(theme.Locations) < DrawSize {
			return nil, spyerr.InvalidArgumentf("theme '%s' has %d distinct locations, need %d",
				theme.Name, len(theme.Locations), DrawSize)
		}
	}
	return &catalog, nil
}

// Theme returns the theme with the given name, case-insensitively
func (c *Catalog) Theme(name string) (*Theme, bool) {
	for i := range c.Themes {
		if strings.EqualFold(c.Themes[i].Name, name) {
			return &c.Themes[i], true
		}
	}
	return nil, false
}

// distinct trims names and drops blanks and repeats, keeping first-seen order
func distinct(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
