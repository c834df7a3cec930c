package confirmations_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/repositories/confirmations"
)

// RepositorySuite runs the same behavior checks against every adapter
type RepositorySuite struct {
	suite.Suite
	newRepo func() confirmations.Repository
	ctx     context.Context
	repo    confirmations.Repository
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func pending(id, gameID string, kind entities.ConfirmationKind) *entities.PendingConfirmation {
	return &entities.PendingConfirmation{
		ID:          id,
		GameID:      gameID,
		Kind:        kind,
		RequesterID: "host",
		PriorState:  entities.SessionStateRunning,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *RepositorySuite) TestCreateAndGet() {
	s.Require().NoError(s.repo.Create(s.ctx, pending("c1", "g1", entities.ConfirmationEnd)))

	got, err := s.repo.Get(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal("g1", got.GameID)
	s.Equal(entities.ConfirmationEnd, got.Kind)
	s.Equal(entities.SessionStateRunning, got.PriorState)

	// Get does not resolve
	_, err = s.repo.Get(s.ctx, "c1")
	s.NoError(err)
}

func (s *RepositorySuite) TestCreateValidation() {
	bad := pending("c1", "g1", entities.ConfirmationCancel)
	bad.PriorState = entities.SessionStatePendingEnd
	s.True(spyerr.Is(s.repo.Create(s.ctx, bad), spyerr.CodeInvalidArgument))

	bad = pending("", "g1", entities.ConfirmationCancel)
	s.True(spyerr.Is(s.repo.Create(s.ctx, bad), spyerr.CodeInvalidArgument))

	bad = pending("c1", "g1", "pause")
	s.True(spyerr.Is(s.repo.Create(s.ctx, bad), spyerr.CodeInvalidArgument))
}

func (s *RepositorySuite) TestTakeResolvesOnce() {
	s.Require().NoError(s.repo.Create(s.ctx, pending("c1", "g1", entities.ConfirmationCancel)))

	got, err := s.repo.Take(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal("c1", got.ID)

	_, err = s.repo.Take(s.ctx, "c1")
	s.True(spyerr.Is(err, spyerr.CodeNoPendingConfirmation), "got %v", err)

	_, err = s.repo.TakeByGame(s.ctx, "g1")
	s.True(spyerr.Is(err, spyerr.CodeNoPendingConfirmation), "got %v", err)
}

func (s *RepositorySuite) TestTakeByGameSupersedes() {
	s.Require().NoError(s.repo.Create(s.ctx, pending("c1", "g1", entities.ConfirmationCancel)))

	old, err := s.repo.TakeByGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal("c1", old.ID)
	s.Require().NoError(s.repo.Create(s.ctx, pending("c2", "g1", entities.ConfirmationEnd)))

	_, err = s.repo.Take(s.ctx, "c1")
	s.True(spyerr.Is(err, spyerr.CodeNoPendingConfirmation), "got %v", err)

	current, err := s.repo.TakeByGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal("c2", current.ID)
}

func (s *RepositorySuite) TestTakingStaleConfirmationKeepsNewerIndex() {
	s.Require().NoError(s.repo.Create(s.ctx, pending("c1", "g1", entities.ConfirmationCancel)))
	s.Require().NoError(s.repo.Create(s.ctx, pending("c2", "g1", entities.ConfirmationEnd)))

	_, err := s.repo.Take(s.ctx, "c1")
	s.Require().NoError(err)

	current, err := s.repo.TakeByGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal("c2", current.ID)
}

func (s *RepositorySuite) TestGamesAreIndependent() {
	s.Require().NoError(s.repo.Create(s.ctx, pending("c1", "g1", entities.ConfirmationCancel)))
	s.Require().NoError(s.repo.Create(s.ctx, pending("c2", "g2", entities.ConfirmationCancel)))

	got, err := s.repo.TakeByGame(s.ctx, "g2")
	s.Require().NoError(err)
	s.Equal("c2", got.ID)

	got, err = s.repo.Get(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal("g1", got.GameID)
}

func (s *RepositorySuite) TestConcurrentTakeResolvesOnce() {
	s.Require().NoError(s.repo.Create(s.ctx, pending("c1", "g1", entities.ConfirmationCancel)))

	const resolvers = 16
	var (
		wg      sync.WaitGroup
		success atomic.Int32
		missing atomic.Int32
	)
	for i := 0; i < resolvers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = s.repo.Take(s.ctx, "c1")
			} else {
				_, err = s.repo.TakeByGame(s.ctx, "g1")
			}
			switch {
			case err == nil:
				success.Add(1)
			case spyerr.Is(err, spyerr.CodeNoPendingConfirmation):
				missing.Add(1)
			default:
				s.Fail(fmt.Sprintf("unexpected error: %v", err))
			}
		}(i)
	}
	wg.Wait()

	s.Equal(int32(1), success.Load())
	s.Equal(int32(resolvers-1), missing.Load())
}
