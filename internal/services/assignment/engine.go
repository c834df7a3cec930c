package assignment

//go:generate mockgen -destination=mock/mock_engine.go -package=mockassignment -source=engine.go

import (
	"github.com/KirkDiggler/spot-the-spy/internal/dice"
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

const (
	// LocationsPerGame is the size of the spy location list
	LocationsPerGame = 10

	// MoleLocationCount is how many locations a Mole is shown
	MoleLocationCount = 3
)

// RoleCounts is how many of each role a roster receives
type RoleCounts struct {
	Spies         int
	Moles         int
	Investigators int
}

type bracket struct {
	min, max     int
	spies, moles int
}

// brackets is the single source of role counts
var brackets = []bracket{
	{min: 4, max: 5, spies: 1, moles: 0},
	{min: 6, max: 7, spies: 1, moles: 1},
	{min: 8, max: 10, spies: 2, moles: 1},
}

// CountsFor returns the role counts for a roster of n players
func CountsFor(n int) (RoleCounts, error) {
	for _, b := range brackets {
		if n >= b.min && n <= b.max {
			return RoleCounts{
				Spies:         b.spies,
				Moles:         b.moles,
				Investigators: n - b.spies - b.moles,
			}, nil
		}
	}
	return RoleCounts{}, spyerr.InvalidArgumentf("no role table entry for %d players", n).
		WithMeta("players", n)
}

// Engine computes role and location assignments. It never touches the store.
type Engine interface {
	// Assign shuffles roster into roles and distributes catalogDraw
	Assign(roster []string, catalogDraw []string) (*entities.Assignment, error)
}

// EngineConfig holds configuration for the engine
type EngineConfig struct {
	Roller dice.Roller // Optional, defaults to a random roller
}

type engine struct {
	roller dice.Roller
}

// NewEngine creates a new assignment engine
func NewEngine(cfg *EngineConfig) Engine {
	e := &engine{roller: dice.NewRandomRoller()}
	if cfg != nil && cfg.Roller != nil {
		e.roller = cfg.Roller
	}
	return e
}

// Assign implements Engine.Assign
func (e *engine) Assign(roster []string, catalogDraw []string) (*entities.Assignment, error) {
	counts, err := CountsFor(len(roster))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(roster))
	for _, userID := range roster {
		if _, dup := seen[userID]; dup {
			return nil, spyerr.InvalidArgumentf("user '%s' appears twice in roster", userID)
		}
		seen[userID] = struct{}{}
	}

	if len(catalogDraw) == 0 {
		return nil, spyerr.InsufficientCatalogSize(0, 1)
	}
	if counts.Moles > 0 && len(catalogDraw) < MoleLocationCount {
		return nil, spyerr.InsufficientCatalogSize(len(catalogDraw), MoleLocationCount)
	}

	order := dice.ShuffledCopy(e.roller, roster)

	roles := make(map[string]entities.Role, len(order))
	for i, userID := range order {
		switch {
		case i < counts.Spies:
			roles[userID] = entities.RoleSpy
		case i < counts.Spies+counts.Moles:
			roles[userID] = entities.RoleMole
		default:
			roles[userID] = entities.RoleInvestigator
		}
	}

	locations := &entities.LocationSet{
		SpyLocations: append([]string(nil), catalogDraw...),
	}
	if counts.Moles > 0 {
		locations.MoleLocations = dice.Sample(e.roller, locations.SpyLocations, MoleLocationCount)
	}
	locations.SelectedLocation = dice.Pick(e.roller, locations.SpyLocations)

	return &entities.Assignment{
		Roles:        roles,
		Locations:    locations,
		FirstAskerID: dice.Pick(e.roller, order[counts.Spies:]),
	}, nil
}
