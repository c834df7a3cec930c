package core

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInteractionAPI records the calls a DiscordResponder makes
type fakeInteractionAPI struct {
	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
	followUps []*discordgo.WebhookParams
	original  *discordgo.Message
}

func (f *fakeInteractionAPI) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeInteractionAPI) InteractionResponse(_ *discordgo.Interaction, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return f.original, nil
}

func (f *fakeInteractionAPI) InteractionResponseEdit(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.edits = append(f.edits, edit)
	return &discordgo.Message{}, nil
}

func (f *fakeInteractionAPI) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.followUps = append(f.followUps, data)
	return &discordgo.Message{ID: "followup"}, nil
}

func TestDiscordResponder_ResponseTypes(t *testing.T) {
	tests := []struct {
		name     string
		response *Response
		want     discordgo.InteractionResponseType
	}{
		{name: "message", response: NewResponse("hi"), want: discordgo.InteractionResponseChannelMessageWithSource},
		{name: "update", response: NewResponse("hi").AsUpdate(), want: discordgo.InteractionResponseUpdateMessage},
		{name: "acknowledge", response: NewAcknowledgement(), want: discordgo.InteractionResponseDeferredMessageUpdate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeInteractionAPI{}
			responder := NewDiscordResponder(api, &discordgo.Interaction{})

			require.NoError(t, responder.Respond(tt.response))
			require.Len(t, api.responses, 1)
			assert.Equal(t, tt.want, api.responses[0].Type)
			assert.True(t, responder.HasResponded())
		})
	}
}

func TestDiscordResponder_Ephemeral(t *testing.T) {
	api := &fakeInteractionAPI{}
	responder := NewDiscordResponder(api, &discordgo.Interaction{})

	require.NoError(t, responder.Respond(NewEphemeralResponse("secret")))
	assert.Equal(t, discordgo.MessageFlagsEphemeral, api.responses[0].Data.Flags)

	_, err := responder.FollowUp(NewEphemeralResponse("also secret"))
	require.NoError(t, err)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, api.followUps[0].Flags)
}

func TestDiscordResponder_Ordering(t *testing.T) {
	api := &fakeInteractionAPI{original: &discordgo.Message{ID: "m1", ChannelID: "c1"}}
	responder := NewDiscordResponder(api, &discordgo.Interaction{})

	assert.Error(t, responder.Edit(NewResponse("early")))
	_, err := responder.Original()
	assert.Error(t, err)
	_, err = responder.FollowUp(NewResponse("early"))
	assert.Error(t, err)

	require.NoError(t, responder.Respond(NewResponse("lobby")))
	assert.Error(t, responder.Respond(NewResponse("twice")))

	original, err := responder.Original()
	require.NoError(t, err)
	assert.Equal(t, "m1", original.ID)

	require.NoError(t, responder.Edit(NewResponse("edited")))
	require.Len(t, api.edits, 1)
	assert.Equal(t, "edited", *api.edits[0].Content)
}
