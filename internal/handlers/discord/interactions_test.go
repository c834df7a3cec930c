package discord

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
	"github.com/KirkDiggler/spot-the-spy/internal/dispatch"
	mockdispatch "github.com/KirkDiggler/spot-the-spy/internal/dispatch/mock"
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
	"github.com/KirkDiggler/spot-the-spy/internal/services/game"
	"github.com/KirkDiggler/spot-the-spy/internal/services/lobby"
	mocklobby "github.com/KirkDiggler/spot-the-spy/internal/services/lobby/mock"
)

type InteractionsTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockDispatcher *mockdispatch.MockDispatcher
	mockLobby      *mocklobby.MockService
	pipeline       *core.Pipeline
}

func (s *InteractionsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDispatcher = mockdispatch.NewMockDispatcher(s.ctrl)
	s.mockLobby = mocklobby.NewMockService(s.ctrl)

	handler := NewHandler(&HandlerConfig{
		Dispatcher: s.mockDispatcher,
		Lobby:      s.mockLobby,
	})
	s.pipeline = core.NewPipeline()
	s.pipeline.Register(handler.Router().Build())
}

func (s *InteractionsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InteractionsTestSuite) expectDispatch(cmd *dispatch.Command, outcome *dispatch.Outcome) {
	outcome.Kind = cmd.Kind
	s.mockDispatcher.EXPECT().Dispatch(gomock.Any(), cmd).Return(outcome)
}

func (s *InteractionsTestSuite) run(tc *core.TestInteractionContext) {
	s.Require().NoError(s.pipeline.Run(tc.InteractionContext))
}

func (s *InteractionsTestSuite) TestStartPostsLobbyAndControls() {
	tc := core.NewTestInteractionContext().
		WithUserID("host").
		AsCommand(CommandStart).
		WithOption(OptionPlayers, float64(6))

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindCreateSession, UserID: "host", MaxPlayers: 6}, &dispatch.Outcome{
		Created: &lobby.CreateSessionResult{
			Game:  &entities.GameSession{ID: "g1", HostID: "host", MaxPlayers: 6},
			Lobby: &notifications.LobbyView{GameID: "g1", HostID: "host", MaxPlayers: 6, Players: []string{"host"}},
		},
	})
	s.mockLobby.EXPECT().AttachMessages(gomock.Any(), "g1",
		entities.MessageHandle{ChannelID: "test-channel-123", MessageID: "original-message-123"},
		entities.MessageHandle{ChannelID: "test-channel-123", MessageID: "followup-message-123"},
	).Return(nil)

	s.run(tc)

	s.Require().Len(tc.Mock.Responses, 1)
	lobbyMessage := tc.Mock.Responses[0]
	s.False(lobbyMessage.Ephemeral)
	s.Contains(lobbyMessage.Content, "<@host> started a game with a maximum of 6 players!")

	s.Require().Len(tc.Mock.FollowUps, 1)
	s.Contains(tc.Mock.FollowUps[0].Content, "can start the game whenever they want")
}

func (s *InteractionsTestSuite) TestStartRejected() {
	tc := core.NewTestInteractionContext().
		WithUserID("host").
		AsCommand(CommandStart).
		WithOption(OptionPlayers, float64(6))

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindCreateSession, UserID: "host", MaxPlayers: 6}, &dispatch.Outcome{
		Err:       spyerr.HostAlreadyHosting("host"),
		Rejection: "You already have an active game running!",
	})

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.Require().NotNil(response)
	s.True(response.Ephemeral)
	s.Equal("You already have an active game running!", response.Content)
	s.Empty(tc.Mock.FollowUps)
}

func (s *InteractionsTestSuite) TestStartAttachFailure() {
	tc := core.NewTestInteractionContext().
		WithUserID("host").
		AsCommand(CommandStart).
		WithOption(OptionPlayers, float64(4))

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindCreateSession, UserID: "host", MaxPlayers: 4}, &dispatch.Outcome{
		Created: &lobby.CreateSessionResult{
			Game:  &entities.GameSession{ID: "g1", HostID: "host", MaxPlayers: 4},
			Lobby: &notifications.LobbyView{GameID: "g1", HostID: "host", MaxPlayers: 4, Players: []string{"host"}},
		},
	})
	s.mockLobby.EXPECT().
		AttachMessages(gomock.Any(), "g1", gomock.Any(), gomock.Any()).
		Return(spyerr.Unavailable(errors.New("redis down"), "failed to set messages"))

	s.run(tc)

	s.Require().Len(tc.Mock.FollowUps, 2)
	s.True(tc.Mock.FollowUps[1].Ephemeral)
	s.Equal(attachFailedMessage, tc.Mock.FollowUps[1].Content)
}

func (s *InteractionsTestSuite) TestStartControlFollowUpFails() {
	tc := core.NewTestInteractionContext().
		WithUserID("host").
		AsCommand(CommandStart).
		WithOption(OptionPlayers, float64(4))
	tc.Mock.FollowUpError = errors.New("HTTP 500")

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindCreateSession, UserID: "host", MaxPlayers: 4}, &dispatch.Outcome{
		Created: &lobby.CreateSessionResult{
			Game:  &entities.GameSession{ID: "g1", HostID: "host", MaxPlayers: 4},
			Lobby: &notifications.LobbyView{GameID: "g1", HostID: "host", MaxPlayers: 4, Players: []string{"host"}},
		},
	})
	s.mockLobby.EXPECT().AttachMessages(gomock.Any(), "g1",
		entities.MessageHandle{ChannelID: "test-channel-123", MessageID: "original-message-123"},
		entities.MessageHandle{},
	).Return(nil)

	// The error copy cannot be delivered either, so Run reports it
	s.Error(s.pipeline.Run(tc.InteractionContext))
}

func (s *InteractionsTestSuite) TestCancelCommandPrompts() {
	tc := core.NewTestInteractionContext().WithUserID("host").AsCommand(CommandCancel)

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindCancelHosted, UserID: "host"}, &dispatch.Outcome{
		Prompt: &game.ConfirmationPrompt{ID: "c1", GameID: "g1", Kind: entities.ConfirmationCancel},
	})

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.Require().NotNil(response)
	s.True(response.Ephemeral)
	s.False(response.Update)
	s.Require().Len(response.Components, 1)
}

func (s *InteractionsTestSuite) TestJoinAcknowledges() {
	tc := core.NewTestInteractionContext().WithUserID("u2").AsComponent("spy:join:g1")

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindJoin, UserID: "u2", GameID: "g1"}, &dispatch.Outcome{
		Roster: &lobby.RosterResult{},
	})

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.Require().NotNil(response)
	s.True(response.Acknowledge)
}

func (s *InteractionsTestSuite) TestJoinRejected() {
	tc := core.NewTestInteractionContext().WithUserID("u2").AsComponent("spy:join:g1")

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindJoin, UserID: "u2", GameID: "g1"}, &dispatch.Outcome{
		Err:       spyerr.LobbyFull("g1", 4),
		Rejection: "This game is already full. You cannot join at this time!",
	})

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.True(response.Ephemeral)
	s.False(response.Acknowledge)
	s.Equal("This game is already full. You cannot join at this time!", response.Content)
}

func (s *InteractionsTestSuite) TestStartButton() {
	tc := core.NewTestInteractionContext().WithUserID("host").AsComponent("spy:start:g1")

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindStartGame, UserID: "host", GameID: "g1"}, &dispatch.Outcome{
		Started: &game.StartResult{},
	})

	s.run(tc)
	s.True(tc.Mock.LastResponse().Acknowledge)
}

func (s *InteractionsTestSuite) TestEndButtonPrompts() {
	tc := core.NewTestInteractionContext().WithUserID("host").AsComponent("spy:end:g1")

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindRequestEnd, UserID: "host", GameID: "g1"}, &dispatch.Outcome{
		Prompt: &game.ConfirmationPrompt{ID: "c2", GameID: "g1", Kind: entities.ConfirmationEnd},
	})

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.True(response.Ephemeral)
	s.Contains(response.Content, "end this game")
}

func (s *InteractionsTestSuite) TestAgreeUpdatesPrompt() {
	tc := core.NewTestInteractionContext().WithUserID("host").AsComponent("spy:agree:c1")

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindConfirmAgree, UserID: "host", ConfirmationID: "c1"}, &dispatch.Outcome{
		Closed: &game.CloseResult{GameID: "g1", HostID: "host", Kind: entities.ConfirmationCancel},
	})

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.True(response.Update)
	s.Equal("The game created by <@host> has been canceled!", response.Content)
}

func (s *InteractionsTestSuite) TestRefuseUpdatesPrompt() {
	tc := core.NewTestInteractionContext().WithUserID("host").AsComponent("spy:refuse:c1")

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindConfirmRefuse, UserID: "host", ConfirmationID: "c1"}, &dispatch.Outcome{
		Refused: &game.RefuseResult{GameID: "g1", Kind: entities.ConfirmationCancel, RestoredState: entities.SessionStateOpen},
	})

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.True(response.Update)
	s.Equal("Okay, the lobby stays open.", response.Content)
}

func (s *InteractionsTestSuite) TestRevealRole() {
	tc := core.NewTestInteractionContext().WithUserID("u3").AsComponent("spy:reveal:g1")

	s.expectDispatch(&dispatch.Command{Kind: dispatch.KindRevealRole, UserID: "u3", GameID: "g1"}, &dispatch.Outcome{
		Disclosure: &game.RoleDisclosure{GameID: "g1", UserID: "u3", Role: entities.RoleInvestigator, Locations: []string{"Bank"}},
	})

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.True(response.Ephemeral)
	s.Require().Len(response.Embeds, 1)
	s.Equal("You are an Investigator", response.Embeds[0].Title)
}

func (s *InteractionsTestSuite) TestForeignButtonIsIgnored() {
	tc := core.NewTestInteractionContext().WithUserID("u2").AsComponent("dnd:join:g1")

	s.run(tc)

	response := tc.Mock.LastResponse()
	s.Require().NotNil(response)
	s.Equal("I don't know how to handle that command.", response.Content)
}

func TestInteractionsTestSuite(t *testing.T) {
	suite.Run(t, new(InteractionsTestSuite))
}
