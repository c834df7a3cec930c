package core

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Error handler for uncaught errors
	errorHandler ErrorHandler

	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		errorHandler: defaultErrorHandler,
	}
}

// Register adds handlers to the pipeline. Middleware added with Use before
// the call wraps them.
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, wrapped)
	}
}

// Use adds middleware to the pipeline
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// Execute runs the pipeline for an interaction received from the gateway
func (p *Pipeline) Execute(ctx context.Context, api InteractionAPI, i *discordgo.InteractionCreate) error {
	responder := NewDiscordResponder(api, i.Interaction)
	return p.Run(NewInteractionContext(ctx, i, responder))
}

// Run hands the interaction to the first handler that accepts it and sends
// whatever response that handler produced
func (p *Pipeline) Run(ic *InteractionContext) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	responder := ic.Responder()

	for _, handler := range handlers {
		if !handler.CanHandle(ic) {
			continue
		}

		result, err := handler.Handle(ic)
		if err != nil {
			result = errorHandler(ic, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result.Response); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}
		return nil
	}

	log.Debug().
		Str("command", ic.CommandName()).
		Str("custom_id", ic.RawCustomID()).
		Msg("no handler for interaction")

	if responder.HasResponded() {
		return nil
	}
	return sendResponse(responder, NewEphemeralResponse("I don't know how to handle that command."))
}

// sendResponse answers the interaction, or adds to the answer when a handler
// already responded on its own
func sendResponse(responder Responder, response *Response) error {
	if !responder.HasResponded() {
		return responder.Respond(response)
	}
	if response.Ephemeral {
		_, err := responder.FollowUp(response)
		return err
	}
	return responder.Edit(response)
}

// defaultErrorHandler replies with the error's user copy. Input mistakes are
// logged at debug, everything else at error.
func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) && handlerErr.Err == nil {
		log.Debug().Str("user_id", ctx.UserID).Str("reason", handlerErr.UserMessage).Msg("rejected interaction input")
		return &HandlerResult{Response: NewEphemeralResponse(handlerErr.UserMessage)}
	}

	log.Error().Err(err).Str("user_id", ctx.UserID).Msg("interaction handler failed")

	message := internalMessage
	if handlerErr != nil && handlerErr.UserMessage != "" {
		message = handlerErr.UserMessage
	}
	return &HandlerResult{Response: NewEphemeralResponse(message)}
}
