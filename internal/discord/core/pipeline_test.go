package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockHandler for testing
type MockHandler struct {
	canHandle bool
	result    *HandlerResult
	err       error
	called    bool
}

func (m *MockHandler) CanHandle(ctx *InteractionContext) bool {
	return m.canHandle
}

func (m *MockHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	m.called = true
	return m.result, m.err
}

func TestPipeline_Run_FirstHandlerWins(t *testing.T) {
	pipeline := NewPipeline()

	skipped := &MockHandler{canHandle: false}
	first := &MockHandler{canHandle: true, result: &HandlerResult{Response: NewResponse("first")}}
	second := &MockHandler{canHandle: true, result: &HandlerResult{Response: NewResponse("second")}}
	pipeline.Register(skipped, first, second)

	ctx := NewTestInteractionContext().AsCommand("start")
	require.NoError(t, pipeline.Run(ctx.InteractionContext))

	assert.False(t, skipped.called)
	assert.True(t, first.called)
	assert.False(t, second.called)
	require.Len(t, ctx.Mock.Responses, 1)
	assert.Equal(t, "first", ctx.Mock.Responses[0].Content)
}

func TestPipeline_Run_ErrorBecomesEphemeralReply(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(&MockHandler{canHandle: true, err: Invalid("Pick between 4 and 10 players.")})

	ctx := NewTestInteractionContext().AsCommand("start")
	require.NoError(t, pipeline.Run(ctx.InteractionContext))

	response := ctx.Mock.LastResponse()
	require.NotNil(t, response)
	assert.True(t, response.Ephemeral)
	assert.Equal(t, "Pick between 4 and 10 players.", response.Content)
}

func TestPipeline_Run_HidesInternalErrors(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(&MockHandler{canHandle: true, err: errors.New("redis: connection refused")})

	ctx := NewTestInteractionContext().AsCommand("start")
	require.NoError(t, pipeline.Run(ctx.InteractionContext))

	assert.Equal(t, internalMessage, ctx.Mock.LastResponse().Content)
}

func TestPipeline_Run_AfterHandlerResponded(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		if err := ctx.Responder().Respond(NewResponse("lobby")); err != nil {
			return nil, err
		}
		return nil, errors.New("could not record messages")
	}))

	ctx := NewTestInteractionContext().AsCommand("start")
	require.NoError(t, pipeline.Run(ctx.InteractionContext))

	require.Len(t, ctx.Mock.Responses, 1)
	require.Len(t, ctx.Mock.FollowUps, 1)
	assert.True(t, ctx.Mock.FollowUps[0].Ephemeral)
}

func TestPipeline_Run_Unhandled(t *testing.T) {
	pipeline := NewPipeline()
	pipeline.Register(&MockHandler{canHandle: false})

	ctx := NewTestInteractionContext().AsComponent("other:thing")
	require.NoError(t, pipeline.Run(ctx.InteractionContext))

	assert.Equal(t, "I don't know how to handle that command.", ctx.Mock.LastResponse().Content)
}

func TestPipeline_Middleware(t *testing.T) {
	pipeline := NewPipeline()

	order := []string{}
	tag := func(name string) Middleware {
		return func(next Handler) Handler {
			return HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
				order = append(order, name)
				return next.Handle(ctx)
			})
		}
	}
	pipeline.Use(tag("outer"), tag("inner"))
	pipeline.Register(HandlerFunc(func(ctx *InteractionContext) (*HandlerResult, error) {
		order = append(order, "handler")
		return &HandlerResult{Response: NewAcknowledgement()}, nil
	}))

	ctx := NewTestInteractionContext().AsComponent("spy:join:g1")
	require.NoError(t, pipeline.Run(ctx.InteractionContext))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	assert.True(t, ctx.Mock.LastResponse().Acknowledge)
}

func TestRouter(t *testing.T) {
	router := NewRouter("spy")
	router.CommandFunc("start", func(ctx *InteractionContext) (*HandlerResult, error) {
		return &HandlerResult{Response: NewResponse("start")}, nil
	})
	router.ComponentFunc("join", func(ctx *InteractionContext) (*HandlerResult, error) {
		customID, err := ctx.CustomID()
		if err != nil {
			return nil, err
		}
		return &HandlerResult{Response: NewResponse("join " + customID.Target)}, nil
	})
	handler := router.Build()

	tests := []struct {
		name    string
		ctx     *TestInteractionContext
		handles bool
		want    string
	}{
		{name: "command", ctx: NewTestInteractionContext().AsCommand("start"), handles: true, want: "start"},
		{name: "unknown command", ctx: NewTestInteractionContext().AsCommand("roll")},
		{name: "component", ctx: NewTestInteractionContext().AsComponent(router.CustomIDs().Button("join", "g1")), handles: true, want: "join g1"},
		{name: "other domain", ctx: NewTestInteractionContext().AsComponent("character:join:g1")},
		{name: "unknown action", ctx: NewTestInteractionContext().AsComponent("spy:dance:g1")},
		{name: "garbage", ctx: NewTestInteractionContext().AsComponent("join_button_g1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ic := tt.ctx.InteractionContext
			assert.Equal(t, tt.handles, handler.CanHandle(ic))
			if !tt.handles {
				return
			}
			result, err := handler.Handle(ic)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Response.Content)
		})
	}
}
