package core

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

var (
	errAlreadyResponded = errors.New("interaction already responded to")
	errNotResponded     = errors.New("interaction has not been responded to")
)

// InteractionAPI is the part of *discordgo.Session a responder talks to
type InteractionAPI interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponse(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Responder provides an abstraction over Discord's interaction response API
type Responder interface {
	// Respond sends the initial response
	Respond(response *Response) error

	// Edit updates the initial response
	Edit(response *Response) error

	// FollowUp sends an additional message after the initial response
	FollowUp(response *Response) (*discordgo.Message, error)

	// Original fetches the message the initial response created
	Original() (*discordgo.Message, error)

	// HasResponded returns whether the initial response was sent
	HasResponded() bool
}

// DiscordResponder implements Responder using Discord's API
type DiscordResponder struct {
	api         InteractionAPI
	interaction *discordgo.Interaction
	responded   bool
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(api InteractionAPI, interaction *discordgo.Interaction) *DiscordResponder {
	return &DiscordResponder{
		api:         api,
		interaction: interaction,
	}
}

// Respond sends the initial response
func (r *DiscordResponder) Respond(response *Response) error {
	if r.responded {
		return errAlreadyResponded
	}

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: buildResponseData(response),
	}
	switch {
	case response.Acknowledge:
		resp = &discordgo.InteractionResponse{Type: discordgo.InteractionResponseDeferredMessageUpdate}
	case response.Update:
		resp.Type = discordgo.InteractionResponseUpdateMessage
	}

	if err := r.api.InteractionRespond(r.interaction, resp); err != nil {
		return err
	}
	r.responded = true
	return nil
}

// Edit updates the initial response
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.responded {
		return errNotResponded
	}

	webhook := &discordgo.WebhookEdit{
		Content:         &response.Content,
		Embeds:          &response.Embeds,
		Components:      &response.Components,
		AllowedMentions: response.AllowedMentions,
	}

	_, err := r.api.InteractionResponseEdit(r.interaction, webhook)
	return err
}

// FollowUp sends an additional message after the initial response
func (r *DiscordResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	if !r.responded {
		return nil, errNotResponded
	}

	options := &discordgo.WebhookParams{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
	}
	if response.Ephemeral {
		options.Flags = discordgo.MessageFlagsEphemeral
	}

	return r.api.FollowupMessageCreate(r.interaction, true, options)
}

// Original fetches the message the initial response created
func (r *DiscordResponder) Original() (*discordgo.Message, error) {
	if !r.responded {
		return nil, errNotResponded
	}
	return r.api.InteractionResponse(r.interaction)
}

// HasResponded returns whether this responder has already sent a response
func (r *DiscordResponder) HasResponded() bool {
	return r.responded
}

// buildResponseData converts our Response to Discord's InteractionResponseData
func buildResponseData(response *Response) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		AllowedMentions: response.AllowedMentions,
	}

	if response.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return data
}
