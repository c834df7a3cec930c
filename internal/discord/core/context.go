package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// InteractionContext is one inbound interaction with the fields handlers read
type InteractionContext struct {
	Interaction *discordgo.InteractionCreate

	// UserID is the member or DM user who triggered the interaction
	UserID    string
	GuildID   string
	ChannelID string

	Context context.Context

	// options holds slash command options by name
	options   map[string]any
	responder Responder
}

// NewInteractionContext wraps i. The typed Data accessors of discordgo panic on
// a type mismatch, so options are only read for slash commands.
func NewInteractionContext(ctx context.Context, i *discordgo.InteractionCreate, responder Responder) *InteractionContext {
	ic := &InteractionContext{
		Interaction: i,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		Context:     ctx,
		options:     make(map[string]any),
		responder:   responder,
	}

	if i.Member != nil && i.Member.User != nil {
		ic.UserID = i.Member.User.ID
	} else if i.User != nil {
		ic.UserID = i.User.ID
	}

	if ic.IsCommand() {
		for _, opt := range i.ApplicationCommandData().Options {
			ic.options[opt.Name] = opt.Value
		}
	}
	return ic
}

// Responder returns the responder bound to this interaction
func (ic *InteractionContext) Responder() Responder {
	return ic.responder
}

// IntOption returns an integer option, or 0 when it is missing. Discord
// sends integers as JSON numbers, which decode to float64.
func (ic *InteractionContext) IntOption(name string) int {
	switch v := ic.options[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// CommandName is the slash command name, empty for other interactions
func (ic *InteractionContext) CommandName() string {
	if !ic.IsCommand() {
		return ""
	}
	return ic.Interaction.ApplicationCommandData().Name
}

// RawCustomID is the clicked component's id, empty for other interactions
func (ic *InteractionContext) RawCustomID() string {
	if !ic.IsComponent() {
		return ""
	}
	return ic.Interaction.MessageComponentData().CustomID
}

// CustomID parses the clicked component's id
func (ic *InteractionContext) CustomID() (*CustomID, error) {
	return ParseCustomID(ic.RawCustomID())
}
