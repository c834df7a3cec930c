package views

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
	"github.com/KirkDiggler/spot-the-spy/internal/services/game"
)

func buttons(t *testing.T, response *core.Response) []discordgo.Button {
	t.Helper()
	var out []discordgo.Button
	for _, row := range response.Components {
		actions, ok := row.(discordgo.ActionsRow)
		require.True(t, ok)
		for _, component := range actions.Components {
			button, ok := component.(discordgo.Button)
			require.True(t, ok)
			out = append(out, button)
		}
	}
	return out
}

func TestLobby(t *testing.T) {
	response := Lobby(&notifications.LobbyView{
		GameID:     "g1",
		HostID:     "host",
		MaxPlayers: 5,
		Players:    []string{"host", "u2"},
	})

	assert.Equal(t, "<@host> started a game with a maximum of 5 players!\n \n"+
		"Please join a voice channel to start playing the game!\n \n"+
		"Joined Players (2/5):\n- <@host>\n- <@u2>", response.Content)
	assert.False(t, response.Ephemeral)

	got := buttons(t, response)
	require.Len(t, got, 2)
	assert.Equal(t, "spy:join:g1", got[0].CustomID)
	assert.Equal(t, "spy:leave:g1", got[1].CustomID)
}

func TestLobbyFullHidesJoin(t *testing.T) {
	response := Lobby(&notifications.LobbyView{
		GameID:     "g1",
		HostID:     "host",
		MaxPlayers: 4,
		Players:    []string{"host", "u2", "u3", "u4"},
	})

	got := buttons(t, response)
	require.Len(t, got, 1)
	assert.Equal(t, "spy:leave:g1", got[0].CustomID)
}

func TestControl(t *testing.T) {
	response := Control("g1", "host")

	assert.Equal(t, "<@host> can start the game whenever they want by clicking the button below!", response.Content)
	got := buttons(t, response)
	require.Len(t, got, 2)
	assert.Equal(t, "spy:start:g1", got[0].CustomID)
	assert.Equal(t, "spy:cancel:g1", got[1].CustomID)
}

func TestRunning(t *testing.T) {
	response := Running(&notifications.RunningView{
		GameID:       "g1",
		HostID:       "host",
		Players:      []string{"host", "u2", "u3", "u4"},
		FirstAskerID: "u3",
	})

	assert.Contains(t, response.Content, "The game hosted by <@host> is currently running ...")
	assert.Contains(t, response.Content, "<@u3> asks the first question!")

	got := buttons(t, response)
	require.Len(t, got, 2)
	assert.Equal(t, "Show my Role", got[0].Label)
	assert.Equal(t, "spy:reveal:g1", got[0].CustomID)
	assert.Equal(t, "spy:end:g1", got[1].CustomID)
}

func TestClosed(t *testing.T) {
	canceled := Closed(&notifications.ClosedView{GameID: "g1", HostID: "host", Reason: entities.ConfirmationCancel})
	assert.Equal(t, "<@host> canceled this game. Use the command /start to start a new one", canceled.Content)
	assert.Empty(t, canceled.Components)

	ended := Closed(&notifications.ClosedView{GameID: "g1", HostID: "host", Reason: entities.ConfirmationEnd})
	assert.Equal(t, "<@host> ended this game. Use the command /start to start a new one", ended.Content)
}

func TestConfirmationFlow(t *testing.T) {
	prompt := ConfirmationPrompt(&game.ConfirmationPrompt{ID: "c1", GameID: "g1", Kind: entities.ConfirmationCancel})
	assert.True(t, prompt.Ephemeral)
	got := buttons(t, prompt)
	require.Len(t, got, 2)
	assert.Equal(t, "spy:agree:c1", got[0].CustomID)
	assert.Equal(t, "spy:refuse:c1", got[1].CustomID)

	agreed := CloseConfirmed(&game.CloseResult{GameID: "g1", HostID: "host", Kind: entities.ConfirmationCancel})
	assert.True(t, agreed.Update)
	assert.Equal(t, "The game created by <@host> has been canceled!", agreed.Content)

	refused := Refused(&game.RefuseResult{GameID: "g1", Kind: entities.ConfirmationEnd, RestoredState: entities.SessionStateRunning})
	assert.True(t, refused.Update)
	assert.Equal(t, "Okay, the game goes on.", refused.Content)
}

func TestRoleDisclosure(t *testing.T) {
	spy := RoleDisclosure(&game.RoleDisclosure{
		Role:        entities.RoleSpy,
		Locations:   []string{"Bank", "Beach"},
		FellowSpies: []string{"u4"},
	})
	require.Len(t, spy.Embeds, 1)
	assert.True(t, spy.Ephemeral)
	assert.Equal(t, "You are the Spy", spy.Embeds[0].Title)
	require.Len(t, spy.Embeds[0].Fields, 2)
	assert.Equal(t, "- Bank\n- Beach", spy.Embeds[0].Fields[0].Value)
	assert.Equal(t, "<@u4>", spy.Embeds[0].Fields[1].Value)

	mole := RoleDisclosure(&game.RoleDisclosure{Role: entities.RoleMole, Locations: []string{"Bank", "Beach", "Casino"}})
	assert.Equal(t, "You are the Mole", mole.Embeds[0].Title)
	assert.Len(t, mole.Embeds[0].Fields, 1)

	investigator := RoleDisclosure(&game.RoleDisclosure{Role: entities.RoleInvestigator, Locations: []string{"Casino"}})
	assert.Equal(t, "You are an Investigator", investigator.Embeds[0].Title)
	assert.Equal(t, "Casino", investigator.Embeds[0].Fields[0].Value)
}
