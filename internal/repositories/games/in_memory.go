package games

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

// inMemoryRepository implements Repository with maps behind one mutex. Holding
// the write lock for the whole check-and-mutate step is what makes the
// conditional operations atomic.
type inMemoryRepository struct {
	mu           sync.RWMutex
	games        map[string]*entities.GameSession
	participants map[string]entities.Roster
	locations    map[string]*entities.LocationSet
	hosts        map[string]string // hostID -> live gameID
}

// NewInMemoryRepository creates a new in-memory game repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		games:        make(map[string]*entities.GameSession),
		participants: make(map[string]entities.Roster),
		locations:    make(map[string]*entities.LocationSet),
		hosts:        make(map[string]string),
	}
}

func (r *inMemoryRepository) Create(_ context.Context, game *entities.GameSession, host *entities.Participant) error {
	if err := validateCreate(game, host); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existingID, ok := r.hosts[game.HostID]; ok {
		if existing, live := r.games[existingID]; live && existing.IsLive() {
			return spyerr.HostAlreadyHosting(game.HostID).WithMeta("game_id", existingID)
		}
	}
	if _, exists := r.games[game.ID]; exists {
		return spyerr.Conflict("game id already in use").WithMeta("game_id", game.ID)
	}

	seat := *host
	seat.GameID = game.ID
	seat.Role = entities.RoleUnassigned

	r.games[game.ID] = game.Clone()
	r.participants[game.ID] = entities.Roster{&seat}
	r.hosts[game.HostID] = game.ID

	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (*entities.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[id]
	if !ok {
		return nil, spyerr.SessionNotFound(id)
	}
	return game.Clone(), nil
}

func (r *inMemoryRepository) GetActiveByHost(_ context.Context, hostID string) (*entities.GameSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.hosts[hostID]
	if !ok {
		return nil, noActiveGame(hostID)
	}
	game, ok := r.games[id]
	if !ok || !game.IsLive() {
		return nil, noActiveGame(hostID)
	}
	return game.Clone(), nil
}

func (r *inMemoryRepository) ListParticipants(_ context.Context, id string) (entities.Roster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.games[id]; !ok {
		return nil, spyerr.SessionNotFound(id)
	}
	return r.participants[id].Clone(), nil
}

func (r *inMemoryRepository) AddParticipant(_ context.Context, id string, participant *entities.Participant) (entities.Roster, error) {
	if participant == nil || participant.UserID == "" {
		return nil, spyerr.InvalidArgument("participant user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[id]
	if !ok {
		return nil, spyerr.SessionNotFound(id)
	}
	roster := r.participants[id]
	if err := checkJoin(game, roster, participant.UserID); err != nil {
		return nil, err
	}

	seat := *participant
	seat.GameID = id
	seat.Role = entities.RoleUnassigned
	roster = append(roster, &seat)
	sort.SliceStable(roster, func(i, j int) bool {
		return roster[i].JoinedAt.Before(roster[j].JoinedAt)
	})
	r.participants[id] = roster

	return roster.Clone(), nil
}

func (r *inMemoryRepository) RemoveParticipant(_ context.Context, id, userID string) (entities.Roster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[id]
	if !ok {
		return nil, spyerr.SessionNotFound(id)
	}
	roster := r.participants[id]
	if err := checkLeave(game, roster, userID); err != nil {
		return nil, err
	}

	kept := make(entities.Roster, 0, len(roster)-1)
	for _, p := range roster {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	r.participants[id] = kept

	return kept.Clone(), nil
}

func (r *inMemoryRepository) SetMessages(_ context.Context, id string, host, control entities.MessageHandle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[id]
	if !ok {
		return spyerr.SessionNotFound(id)
	}
	game.HostMessage = host
	game.ControlMessage = control
	return nil
}

func (r *inMemoryRepository) CompareAndSwapState(_ context.Context, id string, from, to entities.SessionState) error {
	if to == entities.SessionStateClosed {
		return spyerr.InvalidArgument("use Close to close a game")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[id]
	if !ok {
		return spyerr.SessionNotFound(id)
	}
	if game.State != from {
		return spyerr.SessionNotOpen(id, game.State)
	}
	game.State = to
	return nil
}

func (r *inMemoryRepository) CommitAssignment(_ context.Context, id string, assignment *entities.Assignment, startedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[id]
	if !ok {
		return spyerr.SessionNotFound(id)
	}
	if game.State != entities.SessionStateOpen {
		return spyerr.SessionNotOpen(id, game.State)
	}
	roster := r.participants[id]
	if err := checkAssignment(id, roster.UserIDs(), assignment); err != nil {
		return err
	}

	// Build the new rows first so nothing is half applied
	assigned := roster.Clone()
	for _, p := range assigned {
		p.Role = assignment.Roles[p.UserID]
	}

	started := startedAt
	game.State = entities.SessionStateRunning
	game.SelectedLocation = assignment.Locations.SelectedLocation
	game.FirstAskerID = assignment.FirstAskerID
	game.StartedAt = &started
	r.participants[id] = assigned
	r.locations[id] = assignment.Locations.Clone()

	return nil
}

func (r *inMemoryRepository) GetLocations(_ context.Context, id string) (*entities.LocationSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.games[id]; !ok {
		return nil, spyerr.SessionNotFound(id)
	}
	locations, ok := r.locations[id]
	if !ok {
		return nil, noLocations(id)
	}
	return locations.Clone(), nil
}

func (r *inMemoryRepository) Close(_ context.Context, id string, from entities.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.games[id]
	if !ok {
		return spyerr.SessionNotFound(id)
	}
	if game.State != from {
		return spyerr.SessionNotOpen(id, game.State)
	}

	delete(r.games, id)
	delete(r.participants, id)
	delete(r.locations, id)
	if r.hosts[game.HostID] == id {
		delete(r.hosts, game.HostID)
	}
	return nil
}

func (r *inMemoryRepository) Ping(_ context.Context) error {
	return nil
}
