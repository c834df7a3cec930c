package games

import (
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

func validateCreate(game *entities.GameSession, host *entities.Participant) error {
	if game == nil {
		return spyerr.InvalidArgument("game cannot be nil")
	}
	if game.ID == "" {
		return spyerr.InvalidArgument("game ID cannot be empty")
	}
	if game.State != entities.SessionStateOpen {
		return spyerr.InvalidArgumentf("new game must be open, got %s", game.State)
	}
	if host == nil || host.UserID != game.HostID {
		return spyerr.InvalidArgument("host participant must match the game host")
	}
	return nil
}

// checkJoin applies the join preconditions in the order users see them
func checkJoin(game *entities.GameSession, roster entities.Roster, userID string) error {
	if game.State != entities.SessionStateOpen {
		return spyerr.SessionNotOpen(game.ID, game.State)
	}
	if roster.Contains(userID) {
		return spyerr.AlreadyJoined(game.ID, userID)
	}
	if len(roster) >= game.MaxPlayers {
		return spyerr.LobbyFull(game.ID, game.MaxPlayers)
	}
	return nil
}

// checkLeave keeps the host seated for the life of the game
func checkLeave(game *entities.GameSession, roster entities.Roster, userID string) error {
	if game.State != entities.SessionStateOpen {
		return spyerr.SessionNotOpen(game.ID, game.State)
	}
	if userID == game.HostID {
		return spyerr.HostCannotLeave(game.ID)
	}
	if !roster.Contains(userID) {
		return spyerr.NotJoined(game.ID, userID)
	}
	return nil
}

// checkAssignment verifies the assignment covers exactly the seated users
func checkAssignment(gameID string, userIDs []string, assignment *entities.Assignment) error {
	if assignment == nil || assignment.Locations == nil {
		return spyerr.InvalidArgument("assignment cannot be nil")
	}
	if len(userIDs) != len(assignment.Roles) {
		return spyerr.Conflict("roster changed since the assignment was computed").WithMeta("game_id", gameID)
	}
	for _, id := range userIDs {
		role, ok := assignment.Roles[id]
		if !ok {
			return spyerr.Conflict("roster changed since the assignment was computed").WithMeta("game_id", gameID)
		}
		if role == entities.RoleUnassigned || !role.IsValid() {
			return spyerr.InvalidArgumentf("user '%s' has no assigned role", id)
		}
	}
	return nil
}

func noActiveGame(hostID string) error {
	return spyerr.Newf(spyerr.CodeSessionNotFound, "user '%s' has no active game", hostID).WithMeta("host_id", hostID)
}

func noLocations(gameID string) error {
	return spyerr.Newf(spyerr.CodeNoRoleAssigned, "game '%s' has no locations", gameID).WithMeta("game_id", gameID)
}
