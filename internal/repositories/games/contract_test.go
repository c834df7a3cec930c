package games_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/games"
)

// RepositorySuite is run against every Repository implementation
type RepositorySuite struct {
	suite.Suite
	newRepo func() games.Repository

	ctx  context.Context
	repo games.Repository
	now  time.Time
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RepositorySuite) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *RepositorySuite) createGame(id, host string, maxPlayers int) *entities.GameSession {
	game := &entities.GameSession{
		ID:         id,
		HostID:     host,
		MaxPlayers: maxPlayers,
		State:      entities.SessionStateOpen,
		CreatedAt:  s.tick(),
	}
	s.Require().NoError(s.repo.Create(s.ctx, game, &entities.Participant{UserID: host, JoinedAt: s.now}))
	return game
}

func (s *RepositorySuite) join(id string, users ...string) entities.Roster {
	var roster entities.Roster
	for _, u := range users {
		var err error
		roster, err = s.repo.AddParticipant(s.ctx, id, &entities.Participant{UserID: u, JoinedAt: s.tick()})
		s.Require().NoError(err)
	}
	return roster
}

func assignmentFor(roster entities.Roster) *entities.Assignment {
	roles := make(map[string]entities.Role, len(roster))
	for i, p := range roster {
		if i == 0 {
			roles[p.UserID] = entities.RoleSpy
		} else {
			roles[p.UserID] = entities.RoleInvestigator
		}
	}
	return &entities.Assignment{
		Roles: roles,
		Locations: &entities.LocationSet{
			SpyLocations:     []string{"Bank", "Beach", "Casino", "Embassy", "Hospital", "Hotel", "Library", "Museum", "Park", "Zoo"},
			MoleLocations:    []string{"Beach", "Hotel", "Zoo"},
			SelectedLocation: "Casino",
		},
		FirstAskerID: roster[1].UserID,
	}
}

func (s *RepositorySuite) TestCreateSeatsHost() {
	s.createGame("g1", "host", 6)

	game, err := s.repo.Get(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal("host", game.HostID)
	s.Equal(6, game.MaxPlayers)
	s.Equal(entities.SessionStateOpen, game.State)

	roster, err := s.repo.ListParticipants(s.ctx, "g1")
	s.Require().NoError(err)
	s.Require().Len(roster, 1)
	s.Equal("host", roster[0].UserID)
	s.Equal(entities.RoleUnassigned, roster[0].Role)

	active, err := s.repo.GetActiveByHost(s.ctx, "host")
	s.Require().NoError(err)
	s.Equal("g1", active.ID)
}

func (s *RepositorySuite) TestCreateRejectsSecondLiveGame() {
	s.createGame("g1", "host", 5)

	err := s.repo.Create(s.ctx, &entities.GameSession{
		ID: "g2", HostID: "host", MaxPlayers: 5, State: entities.SessionStateOpen, CreatedAt: s.tick(),
	}, &entities.Participant{UserID: "host", JoinedAt: s.now})
	s.True(spyerr.Is(err, spyerr.CodeHostAlreadyHosting), "got %v", err)

	_, err = s.repo.Get(s.ctx, "g2")
	s.True(spyerr.IsSessionNotFound(err))
}

func (s *RepositorySuite) TestCreateAllowedAfterClose() {
	s.createGame("g1", "host", 5)
	s.Require().NoError(s.repo.CompareAndSwapState(s.ctx, "g1", entities.SessionStateOpen, entities.SessionStatePendingCancel))
	s.Require().NoError(s.repo.Close(s.ctx, "g1", entities.SessionStatePendingCancel))

	s.createGame("g2", "host", 5)
	active, err := s.repo.GetActiveByHost(s.ctx, "host")
	s.Require().NoError(err)
	s.Equal("g2", active.ID)
}

func (s *RepositorySuite) TestConcurrentCreateSameHost() {
	const attempts = 16
	var (
		wg      sync.WaitGroup
		success atomic.Int32
		hosting atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.repo.Create(s.ctx, &entities.GameSession{
				ID: fmt.Sprintf("g%d", i), HostID: "host", MaxPlayers: 5,
				State: entities.SessionStateOpen, CreatedAt: s.now,
			}, &entities.Participant{UserID: "host", JoinedAt: s.now})
			switch {
			case err == nil:
				success.Add(1)
			case spyerr.Is(err, spyerr.CodeHostAlreadyHosting):
				hosting.Add(1)
			}
		}(i)
	}
	wg.Wait()

	s.Equal(int32(1), success.Load())
	s.Equal(int32(attempts-1), hosting.Load())
}

func (s *RepositorySuite) TestJoinPreconditions() {
	s.createGame("g1", "host", 4)

	roster := s.join("g1", "u2", "u3")
	s.Equal([]string{"host", "u2", "u3"}, roster.UserIDs())

	s.Run("already joined", func() {
		_, err := s.repo.AddParticipant(s.ctx, "g1", &entities.Participant{UserID: "u2", JoinedAt: s.tick()})
		s.True(spyerr.Is(err, spyerr.CodeAlreadyJoined), "got %v", err)
	})

	s.Run("fills up", func() {
		roster := s.join("g1", "u4")
		s.Len(roster, 4)

		_, err := s.repo.AddParticipant(s.ctx, "g1", &entities.Participant{UserID: "u5", JoinedAt: s.tick()})
		s.True(spyerr.Is(err, spyerr.CodeLobbyFull), "got %v", err)
	})

	s.Run("not open", func() {
		s.Require().NoError(s.repo.CompareAndSwapState(s.ctx, "g1", entities.SessionStateOpen, entities.SessionStatePendingCancel))
		_, err := s.repo.AddParticipant(s.ctx, "g1", &entities.Participant{UserID: "u9", JoinedAt: s.tick()})
		s.True(spyerr.Is(err, spyerr.CodeSessionNotOpen), "got %v", err)
	})

	s.Run("missing game", func() {
		_, err := s.repo.AddParticipant(s.ctx, "nope", &entities.Participant{UserID: "u9", JoinedAt: s.tick()})
		s.True(spyerr.IsSessionNotFound(err), "got %v", err)
	})

	roster, err := s.repo.ListParticipants(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal([]string{"host", "u2", "u3", "u4"}, roster.UserIDs())
}

func (s *RepositorySuite) TestConcurrentJoinNeverExceedsCapacity() {
	s.createGame("g1", "host", 5)

	const joiners = 24
	var (
		wg      sync.WaitGroup
		success atomic.Int32
		full    atomic.Int32
	)
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.repo.AddParticipant(s.ctx, "g1", &entities.Participant{
				UserID:   fmt.Sprintf("u%d", i),
				JoinedAt: s.now.Add(time.Duration(i) * time.Millisecond),
			})
			switch {
			case err == nil:
				success.Add(1)
			case spyerr.Is(err, spyerr.CodeLobbyFull):
				full.Add(1)
			}
		}(i)
	}
	wg.Wait()

	roster, err := s.repo.ListParticipants(s.ctx, "g1")
	s.Require().NoError(err)
	s.Len(roster, 5)
	s.Equal(int32(4), success.Load())
	s.Equal(int32(joiners-4), full.Load())
}

func (s *RepositorySuite) TestLeave() {
	s.createGame("g1", "host", 5)
	s.join("g1", "u2", "u3")

	roster, err := s.repo.RemoveParticipant(s.ctx, "g1", "u2")
	s.Require().NoError(err)
	s.Equal([]string{"host", "u3"}, roster.UserIDs())

	_, err = s.repo.RemoveParticipant(s.ctx, "g1", "u2")
	s.True(spyerr.Is(err, spyerr.CodeNotJoined), "got %v", err)

	_, err = s.repo.RemoveParticipant(s.ctx, "g1", "host")
	s.True(spyerr.Is(err, spyerr.CodeHostCannotLeave), "got %v", err)
	roster, err = s.repo.ListParticipants(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal([]string{"host", "u3"}, roster.UserIDs())

	s.Require().NoError(s.repo.CompareAndSwapState(s.ctx, "g1", entities.SessionStateOpen, entities.SessionStatePendingCancel))
	_, err = s.repo.RemoveParticipant(s.ctx, "g1", "u3")
	s.True(spyerr.Is(err, spyerr.CodeSessionNotOpen), "got %v", err)
}

func (s *RepositorySuite) TestSetMessages() {
	s.createGame("g1", "host", 5)

	host := entities.MessageHandle{ChannelID: "c1", MessageID: "m1"}
	control := entities.MessageHandle{ChannelID: "c1", MessageID: "m2"}
	s.Require().NoError(s.repo.SetMessages(s.ctx, "g1", host, control))

	game, err := s.repo.Get(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(host, game.HostMessage)
	s.Equal(control, game.ControlMessage)

	s.True(spyerr.IsSessionNotFound(s.repo.SetMessages(s.ctx, "nope", host, control)))
}

func (s *RepositorySuite) TestCompareAndSwapState() {
	s.createGame("g1", "host", 5)

	s.Require().NoError(s.repo.CompareAndSwapState(s.ctx, "g1", entities.SessionStateOpen, entities.SessionStatePendingEnd))

	err := s.repo.CompareAndSwapState(s.ctx, "g1", entities.SessionStateOpen, entities.SessionStatePendingCancel)
	s.True(spyerr.Is(err, spyerr.CodeSessionNotOpen), "got %v", err)

	s.Require().NoError(s.repo.CompareAndSwapState(s.ctx, "g1", entities.SessionStatePendingEnd, entities.SessionStateOpen))
	game, err := s.repo.Get(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(entities.SessionStateOpen, game.State)

	err = s.repo.CompareAndSwapState(s.ctx, "g1", entities.SessionStateOpen, entities.SessionStateClosed)
	s.True(spyerr.Is(err, spyerr.CodeInvalidArgument))
}

func (s *RepositorySuite) TestCommitAssignment() {
	s.createGame("g1", "host", 5)
	roster := s.join("g1", "u2", "u3", "u4")
	assignment := assignmentFor(roster)
	startedAt := s.tick()

	s.Require().NoError(s.repo.CommitAssignment(s.ctx, "g1", assignment, startedAt))

	game, err := s.repo.Get(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(entities.SessionStateRunning, game.State)
	s.Equal("Casino", game.SelectedLocation)
	s.Equal("u2", game.FirstAskerID)
	s.Require().NotNil(game.StartedAt)
	s.True(startedAt.Equal(*game.StartedAt))

	stored, err := s.repo.ListParticipants(s.ctx, "g1")
	s.Require().NoError(err)
	for _, p := range stored {
		s.Equal(assignment.Roles[p.UserID], p.Role, p.UserID)
	}

	locations, err := s.repo.GetLocations(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(assignment.Locations.SpyLocations, locations.SpyLocations)
	s.Equal(assignment.Locations.MoleLocations, locations.MoleLocations)
	s.Equal("Casino", locations.SelectedLocation)

	err = s.repo.CommitAssignment(s.ctx, "g1", assignment, s.tick())
	s.True(spyerr.Is(err, spyerr.CodeSessionNotOpen), "got %v", err)
}

func (s *RepositorySuite) TestCommitAssignmentRosterChanged() {
	s.createGame("g1", "host", 6)
	roster := s.join("g1", "u2", "u3", "u4")
	assignment := assignmentFor(roster)

	// someone joins after the assignment was computed
	s.join("g1", "u5")

	err := s.repo.CommitAssignment(s.ctx, "g1", assignment, s.tick())
	s.True(spyerr.IsConflict(err), "got %v", err)

	game, err := s.repo.Get(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(entities.SessionStateOpen, game.State)

	stored, err := s.repo.ListParticipants(s.ctx, "g1")
	s.Require().NoError(err)
	for _, p := range stored {
		s.Equal(entities.RoleUnassigned, p.Role)
	}

	_, err = s.repo.GetLocations(s.ctx, "g1")
	s.True(spyerr.Is(err, spyerr.CodeNoRoleAssigned), "got %v", err)
}

func (s *RepositorySuite) TestConcurrentCommitRunsOnce() {
	s.createGame("g1", "host", 5)
	roster := s.join("g1", "u2", "u3", "u4")

	const starters = 8
	var (
		wg      sync.WaitGroup
		success atomic.Int32
		notOpen atomic.Int32
	)
	for i := 0; i < starters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.repo.CommitAssignment(s.ctx, "g1", assignmentFor(roster), s.now)
			switch {
			case err == nil:
				success.Add(1)
			case spyerr.Is(err, spyerr.CodeSessionNotOpen):
				notOpen.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), success.Load())
	s.Equal(int32(starters-1), notOpen.Load())
}

func (s *RepositorySuite) TestClose() {
	s.createGame("g1", "host", 5)
	roster := s.join("g1", "u2", "u3", "u4")
	s.Require().NoError(s.repo.CommitAssignment(s.ctx, "g1", assignmentFor(roster), s.tick()))

	err := s.repo.Close(s.ctx, "g1", entities.SessionStatePendingEnd)
	s.True(spyerr.Is(err, spyerr.CodeSessionNotOpen), "got %v", err)

	s.Require().NoError(s.repo.CompareAndSwapState(s.ctx, "g1", entities.SessionStateRunning, entities.SessionStatePendingEnd))
	s.Require().NoError(s.repo.Close(s.ctx, "g1", entities.SessionStatePendingEnd))

	_, err = s.repo.Get(s.ctx, "g1")
	s.True(spyerr.IsSessionNotFound(err))
	_, err = s.repo.ListParticipants(s.ctx, "g1")
	s.True(spyerr.IsSessionNotFound(err))
	_, err = s.repo.GetLocations(s.ctx, "g1")
	s.True(spyerr.IsSessionNotFound(err))
	_, err = s.repo.GetActiveByHost(s.ctx, "host")
	s.True(spyerr.IsSessionNotFound(err))

	err = s.repo.Close(s.ctx, "g1", entities.SessionStatePendingEnd)
	s.True(spyerr.IsSessionNotFound(err), "second close must not succeed, got %v", err)
}

func (s *RepositorySuite) TestPing() {
	s.NoError(s.repo.Ping(s.ctx))
}
