package locations

import (
	"context"
	"os"

	"github.com/KirkDiggler/spot-the-spy/internal/dice"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

// StaticConfig holds configuration for the static catalog client
type StaticConfig struct {
	Catalog *Catalog
	Theme   string // Empty picks a theme at random per draw
	Roller  dice.Roller
}

type staticClient struct {
	catalog *Catalog
	theme   string
	roller  dice.Roller
}

// NewStatic creates a client that draws from an in-process catalog
func NewStatic(cfg *StaticConfig) (Client, error) {
	if cfg == nil || cfg.Catalog == nil {
		return nil, spyerr.InvalidArgument("catalog is required")
	}
	if cfg.Theme != "" {
		if _, ok := cfg.Catalog.Theme(cfg.Theme); !ok {
			return nil, spyerr.InvalidArgumentf("unknown theme '%s'", cfg.Theme)
		}
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &staticClient{
		catalog: cfg.Catalog,
		theme:   cfg.Theme,
		roller:  roller,
	}, nil
}

// LoadCatalogFile reads a catalog from disk, or the built-in one when path is
// empty.
func LoadCatalogFile(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to read catalog file '%s'", path)
	}
	return ParseCatalog(data)
}

func (c *staticClient) Draw(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, spyerr.Unavailable(err, "location draw canceled")
	}

	var theme Theme
	if c.theme != "" {
		found, _ := c.catalog.Theme(c.theme)
		theme = *found
	} else {
		theme = dice.Pick(c.roller, c.catalog.Themes)
	}
	if len(theme.Locations) < DrawSize {
		return nil, spyerr.Unavailable(nil, "theme has too few locations").
			WithMeta("theme", theme.Name).
			WithMeta("locations", len(theme.Locations))
	}

	return dice.Sample(c.roller, theme.Locations, DrawSize), nil
}
