// Package discord delivers game notifications by editing the bot's messages
package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/spot-the-spy/internal/discord/core"
	"github.com/KirkDiggler/spot-the-spy/internal/discord/views"
	"github.com/KirkDiggler/spot-the-spy/internal/entities"
	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
	"github.com/KirkDiggler/spot-the-spy/internal/notifications"
)

// MessageAPI is the part of *discordgo.Session the notifier needs
type MessageAPI interface {
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// Notifier implements notifications.Notifier against Discord
type Notifier struct {
	api MessageAPI
}

var _ notifications.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier that edits messages through api
func NewNotifier(api MessageAPI) *Notifier {
	if api == nil {
		panic("discord message API is required")
	}
	return &Notifier{api: api}
}

func (n *Notifier) LobbyChanged(ctx context.Context, handle entities.MessageHandle, view *notifications.LobbyView) error {
	return n.edit(ctx, handle, views.Lobby(view))
}

func (n *Notifier) GameStarted(ctx context.Context, handle entities.MessageHandle, view *notifications.RunningView) error {
	return n.edit(ctx, handle, views.Running(view))
}

func (n *Notifier) SessionClosed(ctx context.Context, handle entities.MessageHandle, view *notifications.ClosedView) error {
	return n.edit(ctx, handle, views.Closed(view))
}

func (n *Notifier) RemoveMessage(ctx context.Context, handle entities.MessageHandle) error {
	if handle.IsZero() {
		return spyerr.InvalidArgument("message handle is required")
	}

	err := n.api.ChannelMessageDelete(handle.ChannelID, handle.MessageID, discordgo.WithContext(ctx))
	if err != nil {
		return spyerr.Unavailable(err, "failed to delete message")
	}
	return nil
}

// edit replaces the whole message. Components are always sent so a closed
// game loses its buttons.
func (n *Notifier) edit(ctx context.Context, handle entities.MessageHandle, response *core.Response) error {
	if handle.IsZero() {
		return spyerr.InvalidArgument("message handle is required")
	}

	content := response.Content
	components := response.Components
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	edit := discordgo.NewMessageEdit(handle.ChannelID, handle.MessageID)
	edit.Content = &content
	edit.Components = &components
	edit.AllowedMentions = response.AllowedMentions

	if _, err := n.api.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx)); err != nil {
		return spyerr.Unavailable(err, "failed to edit message")
	}
	return nil
}
