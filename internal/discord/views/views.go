// Package views renders game state into Discord messages. Every message the
// bot posts or edits is built here so handlers and the notifier agree on copy
// and button ids.
package views

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/builders"
	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
	"github.com/KirkDiggler/spot-the-spy/internal/services/game"
)

// Domain is the custom ID domain of every button the bot renders
const Domain = "spy"

// Component actions
const (
	ActionJoin   = "join"
	ActionLeave  = "leave"
	ActionStart  = "start"
	ActionCancel = "cancel"
	ActionEnd    = "end"
	ActionReveal = "reveal"
	ActionAgree  = "agree"
	ActionRefuse = "refuse"
)

var customIDs = core.NewCustomIDBuilder(Domain)

// CustomIDs returns the builder for the bot's button ids
func CustomIDs() *core.CustomIDBuilder {
	return customIDs
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

func mentionList(userIDs []string) string {
	return "- " + strings.Join(mentions(userIDs), "\n- ")
}

// Lobby is the public message players join and leave from
func Lobby(view *notifications.LobbyView) *core.Response {
	var content strings.Builder
	fmt.Fprintf(&content, "%s started a game with a maximum of %d players!\n \n", mention(view.HostID), view.MaxPlayers)
	content.WriteString("Please join a voice channel to start playing the game!\n \n")
	fmt.Fprintf(&content, "Joined Players (%d/%d):\n%s", len(view.Players), view.MaxPlayers, mentionList(view.Players))

	components := builders.NewComponentBuilder(customIDs)
	if view.IsFull() {
		components.SecondaryButton("Leave", ActionLeave, view.GameID)
	} else {
		components.
			PrimaryButton("Join", ActionJoin, view.GameID).
			SecondaryButton("Leave", ActionLeave, view.GameID)
	}

	return core.NewResponse(content.String()).
		WithComponents(components.Build()...).
		MentionUsers(view.HostID)
}

// Control is the host's follow-up with the start and cancel buttons
func Control(gameID, hostID string) *core.Response {
	components := builders.NewComponentBuilder(customIDs).
		SuccessButton("Start game", ActionStart, gameID).
		DangerButton("Cancel", ActionCancel, gameID).
		Build()

	content := fmt.Sprintf("%s can start the game whenever they want by clicking the button below!", mention(hostID))
	return core.NewResponse(content).
		WithComponents(components...).
		MentionUsers(hostID)
}

// Running replaces the lobby once roles are dealt
func Running(view *notifications.RunningView) *core.Response {
	var content strings.Builder
	fmt.Fprintf(&content, "The game hosted by %s is currently running ...\n \n", mention(view.HostID))
	fmt.Fprintf(&content, "Players:\n%s", mentionList(view.Players))
	if view.FirstAskerID != "" {
		fmt.Fprintf(&content, "\n \n%s asks the first question!", mention(view.FirstAskerID))
	}

	components := builders.NewComponentBuilder(customIDs).
		PrimaryButton("Show my Role", ActionReveal, view.GameID).
		DangerButton("End game", ActionEnd, view.GameID).
		Build()

	return core.NewResponse(content.String()).
		WithComponents(components...).
		MentionUsers(view.Players...)
}

// Closed is the final text of the game message
func Closed(view *notifications.ClosedView) *core.Response {
	verb := "canceled"
	if view.Reason == entities.ConfirmationEnd {
		verb = "ended"
	}
	content := fmt.Sprintf("%s %s this game. Use the command /start to start a new one", mention(view.HostID), verb)
	return core.NewResponse(content).MentionUsers()
}

// ConfirmationPrompt asks the host privately to confirm a cancel or end
func ConfirmationPrompt(prompt *game.ConfirmationPrompt) *core.Response {
	question := "Are you sure you want to cancel this game? Nobody will be able to join or play it anymore."
	if prompt.Kind == entities.ConfirmationEnd {
		question = "Are you sure you want to end this game? Everyone's roles will be forgotten."
	}

	components := builders.NewComponentBuilder(customIDs).
		ConfirmationButtons(ActionAgree, ActionRefuse, prompt.ID).
		Build()

	return core.NewEphemeralResponse(question).WithComponents(components...)
}

// CloseConfirmed replaces the prompt once the game is gone
func CloseConfirmed(result *game.CloseResult) *core.Response {
	verb := "canceled"
	if result.Kind == entities.ConfirmationEnd {
		verb = "ended"
	}
	content := fmt.Sprintf("The game created by %s has been %s!", mention(result.HostID), verb)
	return core.NewEphemeralResponse(content).AsUpdate().MentionUsers()
}

// Refused replaces the prompt when the host changed their mind
func Refused(result *game.RefuseResult) *core.Response {
	content := "Okay, the game goes on."
	if result.RestoredState == entities.SessionStateOpen {
		content = "Okay, the lobby stays open."
	}
	return core.NewEphemeralResponse(content).AsUpdate()
}

// Rejection shows a refused command to the user who sent it
func Rejection(message string) *core.Response {
	return core.NewEphemeralResponse(message).MentionUsers()
}

// RoleDisclosure is the private answer to "Show my Role"
func RoleDisclosure(disclosure *game.RoleDisclosure) *core.Response {
	var card *builders.Card
	switch disclosure.Role {
	case entities.RoleSpy:
		card = builders.NewCard("You are the Spy", builders.ColorSpy).
			Text("Figure out where everyone is without giving yourself away.").
			List("Possible locations", disclosure.Locations).
			Line("Your fellow spy", mentions(disclosure.FellowSpies)...)
	case entities.RoleMole:
		card = builders.NewCard("You are the Mole", builders.ColorMole).
			Text("The location is one of these three. Help the spies without getting caught.").
			List("Possible locations", disclosure.Locations)
	default:
		card = builders.NewCard("You are an Investigator", builders.ColorInvestigator).
			Text("Find the spy before they find out where you are.").
			Line("Location", disclosure.Locations...)
	}

	return core.NewEphemeralResponse("").WithEmbeds(card.Note("Keep this to yourself!").Embed())
}

func mentions(userIDs []string) []string {
	out := make([]string, len(userIDs))
	for i, id := range userIDs {
		out[i] = mention(id)
	}
	return out
}
