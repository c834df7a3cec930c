package game

import (
	"context"
	"strings"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/services/assignment"
)

// RevealRole returns the caller's secret for a running game. Nothing is
// written, so repeated presses of the button return the same answer.
func (s *service) RevealRole(ctx context.Context, gameID, userID string) (*RoleDisclosure, error) {
	if strings.TrimSpace(gameID) == "" || strings.TrimSpace(userID) == "" {
		return nil, spyerr.InvalidArgument("game ID and user ID are required")
	}

	game, err := s.repository.Get(ctx, gameID)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to get game '%s'", gameID).WithMeta("game_id", gameID)
	}
	if game.State != entities.SessionStateRunning {
		return nil, spyerr.NoRoleAssigned(gameID, userID).WithMeta("state", game.State.String())
	}

	roster, err := s.repository.ListParticipants(ctx, gameID)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to list players of game '%s'", gameID).WithMeta("game_id", gameID)
	}
	player := roster.Find(userID)
	if player == nil || player.Role == entities.RoleUnassigned {
		return nil, spyerr.NoRoleAssigned(gameID, userID)
	}

	locationSet, err := s.repository.GetLocations(ctx, gameID)
	if err != nil {
		return nil, spyerr.Wrapf(err, "failed to get locations of game '%s'", gameID).WithMeta("game_id", gameID)
	}

	disclosure := &RoleDisclosure{
		GameID: gameID,
		UserID: userID,
		Role:   player.Role,
	}

	switch player.Role {
	case entities.RoleSpy:
		disclosure.Locations = append([]string(nil), locationSet.SpyLocations...)
		for _, spy := range roster.WithRole(entities.RoleSpy) {
			if spy != userID {
				disclosure.FellowSpies = append(disclosure.FellowSpies, spy)
			}
		}
	case entities.RoleMole:
		// Whether this roster size has a Mole at all comes from the role table
		counts, err := assignment.CountsFor(len(roster))
		if err != nil || counts.Moles == 0 || len(locationSet.MoleLocations) != assignment.MoleLocationCount {
			return nil, spyerr.Internalf("game '%s' has an inconsistent mole assignment", gameID).
				WithMeta("game_id", gameID).
				WithMeta("players", len(roster))
		}
		disclosure.Locations = append([]string(nil), locationSet.MoleLocations...)
	case entities.RoleInvestigator:
		disclosure.Locations = []string{locationSet.SelectedLocation}
	default:
		return nil, spyerr.NoRoleAssigned(gameID, userID)
	}

	return disclosure, nil
}
