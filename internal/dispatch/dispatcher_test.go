package dispatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spot-the-spy/internal/dispatch"
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/metrics"
	mockmetrics "github.com/KirkDiggler/spot-the-spy/internal/metrics/mock"
	"github.com/KirkDiggler/spot-the-spy/internal/services/game"
	mockgame "github.com/KirkDiggler/spot-the-spy/internal/services/game/mock"
	"github.com/KirkDiggler/spot-the-spy/internal/services/lobby"
	mocklobby "github.com/KirkDiggler/spot-the-spy/internal/services/lobby/mock"
)

type DispatcherTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ctx          context.Context
	mockLobby    *mocklobby.MockService
	mockGame     *mockgame.MockService
	mockRecorder *mockmetrics.MockRecorder
	dispatcher   dispatch.Dispatcher
}

func (s *DispatcherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.mockLobby = mocklobby.NewMockService(s.ctrl)
	s.mockGame = mockgame.NewMockService(s.ctrl)
	s.mockRecorder = mockmetrics.NewMockRecorder(s.ctrl)

	s.dispatcher = dispatch.New(&dispatch.Config{
		Lobby:   s.mockLobby,
		Game:    s.mockGame,
		Metrics: s.mockRecorder,
	})
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DispatcherTestSuite) expectHandled(kind dispatch.Kind, outcome string) {
	s.mockRecorder.EXPECT().CommandHandled(string(kind), outcome, gomock.Any())
}

func (s *DispatcherTestSuite) TestCreateSession() {
	created := &lobby.CreateSessionResult{Game: &entities.GameSession{ID: "g1", HostID: "host"}}
	s.mockLobby.EXPECT().
		CreateSession(s.ctx, &lobby.CreateSessionInput{HostID: "host", MaxPlayers: 6}).
		Return(created, nil)
	s.expectHandled(dispatch.KindCreateSession, metrics.OutcomeOK)

	outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{
		Kind: dispatch.KindCreateSession, UserID: "host", MaxPlayers: 6,
	})
	s.False(outcome.Rejected())
	s.Same(created, outcome.Created)
	s.Empty(outcome.Rejection)
}

func (s *DispatcherTestSuite) TestRoutesGameCommands() {
	s.Run("join", func() {
		s.mockLobby.EXPECT().Join(s.ctx, "g1", "u2").Return(&lobby.RosterResult{}, nil)
		s.expectHandled(dispatch.KindJoin, metrics.OutcomeOK)

		outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{Kind: dispatch.KindJoin, UserID: "u2", GameID: "g1"})
		s.NotNil(outcome.Roster)
	})

	s.Run("start", func() {
		s.mockGame.EXPECT().StartGame(s.ctx, "g1", "host").Return(&game.StartResult{}, nil)
		s.expectHandled(dispatch.KindStartGame, metrics.OutcomeOK)

		outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{Kind: dispatch.KindStartGame, UserID: "host", GameID: "g1"})
		s.NotNil(outcome.Started)
	})

	s.Run("agree", func() {
		s.mockGame.EXPECT().ConfirmAgree(s.ctx, "c1", "host").Return(&game.CloseResult{GameID: "g1"}, nil)
		s.expectHandled(dispatch.KindConfirmAgree, metrics.OutcomeOK)

		outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{Kind: dispatch.KindConfirmAgree, UserID: "host", ConfirmationID: "c1"})
		s.Equal("g1", outcome.Closed.GameID)
	})

	s.Run("reveal", func() {
		s.mockGame.EXPECT().RevealRole(s.ctx, "g1", "u3").Return(&game.RoleDisclosure{Role: entities.RoleSpy}, nil)
		s.expectHandled(dispatch.KindRevealRole, metrics.OutcomeOK)

		outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{Kind: dispatch.KindRevealRole, UserID: "u3", GameID: "g1"})
		s.Equal(entities.RoleSpy, outcome.Disclosure.Role)
	})
}

func (s *DispatcherTestSuite) TestRejectionCarriesCopy() {
	s.mockGame.EXPECT().
		RequestCancel(s.ctx, "g1", "u2").
		Return(nil, spyerr.NotHost("g1", "u2", "host"))
	s.expectHandled(dispatch.KindRequestCancel, metrics.OutcomeRejected)

	outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{Kind: dispatch.KindRequestCancel, UserID: "u2", GameID: "g1"})
	s.True(outcome.Rejected())
	s.Nil(outcome.Prompt)
	s.Equal("You are not the host of this game. Please refer to <@host>", outcome.Rejection)
}

func (s *DispatcherTestSuite) TestSystemFailureCountsAsError() {
	s.mockGame.EXPECT().
		StartGame(s.ctx, "g1", "host").
		Return(nil, spyerr.Unavailable(nil, "catalog down"))
	s.expectHandled(dispatch.KindStartGame, metrics.OutcomeError)

	outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{Kind: dispatch.KindStartGame, UserID: "host", GameID: "g1"})
	s.True(spyerr.IsUnavailable(outcome.Err))
	s.Contains(outcome.Rejection, "try again")
}

func (s *DispatcherTestSuite) TestCancelHosted() {
	s.Run("resolves the active game", func() {
		s.mockLobby.EXPECT().ActiveSession(s.ctx, "host").Return(&entities.GameSession{ID: "g7", HostID: "host"}, nil)
		s.mockGame.EXPECT().RequestCancel(s.ctx, "g7", "host").Return(&game.ConfirmationPrompt{ID: "c1", GameID: "g7"}, nil)
		s.expectHandled(dispatch.KindCancelHosted, metrics.OutcomeOK)

		outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{Kind: dispatch.KindCancelHosted, UserID: "host"})
		s.Equal("g7", outcome.Prompt.GameID)
	})

	s.Run("nothing hosted", func() {
		s.mockLobby.EXPECT().ActiveSession(s.ctx, "u2").Return(nil, spyerr.SessionNotFound(""))
		s.expectHandled(dispatch.KindCancelHosted, metrics.OutcomeRejected)

		outcome := s.dispatcher.Dispatch(s.ctx, &dispatch.Command{Kind: dispatch.KindCancelHosted, UserID: "u2"})
		s.Equal("You are not hosting a game to cancel!", outcome.Rejection)
	})
}

func (s *DispatcherTestSuite) TestInvalidCommandNeverReachesServices() {
	s.mockRecorder.EXPECT().CommandHandled("invalid", metrics.OutcomeRejected, gomock.Any()).Times(3)

	for _, cmd := range []*dispatch.Command{
		nil,
		{Kind: dispatch.KindJoin, UserID: "u2"},
		{Kind: "dance", UserID: "u2", GameID: "g1"},
	} {
		outcome := s.dispatcher.Dispatch(s.ctx, cmd)
		s.True(spyerr.Is(outcome.Err, spyerr.CodeInvalidArgument), "got %v", outcome.Err)
		s.NotEmpty(outcome.Rejection)
	}
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}
