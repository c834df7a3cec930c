package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler answers the interactions it claims
type Handler interface {
	CanHandle(ctx *InteractionContext) bool
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc adapts a function to Handler. It claims every interaction, so
// it is meant for router routes and middleware, not for the pipeline.
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

func (f HandlerFunc) CanHandle(*InteractionContext) bool {
	return true
}

func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// HandlerResult is what a handler wants sent. A nil Response means the
// handler already answered through the responder.
type HandlerResult struct {
	Response        *Response
	StopPropagation bool
}

// Response is one reply to an interaction
type Response struct {
	Content    string
	Embeds     []*discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	// Ephemeral replies are only shown to the user who clicked
	Ephemeral bool

	// Update replaces the message the clicked component is attached to
	Update bool

	// Acknowledge answers a click without changing anything; every other
	// field is ignored
	Acknowledge bool

	AllowedMentions *discordgo.MessageAllowedMentions
}

// NewResponse creates a public reply
func NewResponse(content string) *Response {
	return &Response{Content: content}
}

// NewEphemeralResponse creates a reply only the requesting user sees
func NewEphemeralResponse(content string) *Response {
	return &Response{Content: content, Ephemeral: true}
}

// NewAcknowledgement creates a response that only acknowledges a click
func NewAcknowledgement() *Response {
	return &Response{Acknowledge: true}
}

func (r *Response) WithComponents(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

func (r *Response) WithEmbeds(embeds ...*discordgo.MessageEmbed) *Response {
	r.Embeds = embeds
	return r
}

// AsUpdate makes the response replace the clicked message
func (r *Response) AsUpdate() *Response {
	r.Update = true
	return r
}

// MentionUsers limits pings to the given users. No ids means no pings.
func (r *Response) MentionUsers(userIDs ...string) *Response {
	r.AllowedMentions = &discordgo.MessageAllowedMentions{
		Parse: []discordgo.AllowedMentionType{},
		Users: userIDs,
	}
	return r
}
