package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// TestInteractionContext builds InteractionContexts for handler tests
type TestInteractionContext struct {
	*InteractionContext
	Mock *MockResponder
}

// NewTestInteractionContext creates a test interaction context with a
// recording responder
func NewTestInteractionContext() *TestInteractionContext {
	responder := NewMockResponder()
	return &TestInteractionContext{
		InteractionContext: &InteractionContext{
			Context:     context.Background(),
			UserID:      "test-user-123",
			GuildID:     "test-guild-123",
			ChannelID:   "test-channel-123",
			Interaction: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}},
			options:     make(map[string]any),
			responder:   responder,
		},
		Mock:               responder,
	}
}

// WithOption adds a command option
func (t *TestInteractionContext) WithOption(key string, value any) *TestInteractionContext {
	t.options[key] = value
	return t
}

// WithUserID sets the user ID
func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

// AsCommand simulates a slash command interaction
func (t *TestInteractionContext) AsCommand(name string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: t.ChannelID,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}
	return t
}

// AsComponent simulates a component interaction
func (t *TestInteractionContext) AsComponent(customID string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			ChannelID: t.ChannelID,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
			},
		},
	}
	return t
}

// MockResponder is a test implementation of Responder
type MockResponder struct {
	Responses []*Response
	Edits     []*Response
	FollowUps []*Response

	// OriginalMessage is returned by Original
	OriginalMessage *discordgo.Message

	RespondError  error
	EditError     error
	FollowUpError error
	OriginalError error

	Responded bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{
		OriginalMessage: &discordgo.Message{ID: "original-message-123", ChannelID: "test-channel-123"},
	}
}

func (m *MockResponder) Respond(response *Response) error {
	m.Responses = append(m.Responses, response)
	if m.RespondError != nil {
		return m.RespondError
	}
	m.Responded = true
	return nil
}

func (m *MockResponder) Edit(response *Response) error {
	m.Edits = append(m.Edits, response)
	return m.EditError
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.FollowUps = append(m.FollowUps, response)
	if m.FollowUpError != nil {
		return nil, m.FollowUpError
	}
	return &discordgo.Message{ID: "followup-message-123", ChannelID: "test-channel-123"}, nil
}

func (m *MockResponder) Original() (*discordgo.Message, error) {
	if m.OriginalError != nil {
		return nil, m.OriginalError
	}
	return m.OriginalMessage, nil
}

func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

// LastResponse returns the last response sent
func (m *MockResponder) LastResponse() *Response {
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	return nil
}
