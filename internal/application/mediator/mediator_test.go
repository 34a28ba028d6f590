package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
)

type pingCommand struct{ Value string }

type pingHandler struct{}

func (pingHandler) Handle(_ context.Context, request mediator.Request) (mediator.Response, error) {
	return "pong:" + request.(*pingCommand).Value, nil
}

func TestSend_DispatchesByType(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, pingHandler{}))

	resp, err := m.Send(context.Background(), &pingCommand{Value: "a"})

	require.NoError(t, err)
	assert.Equal(t, "pong:a", resp)
}

func TestTyped_AssertsRequestType(t *testing.T) {
	handler := mediator.Typed(func(_ context.Context, cmd *pingCommand) (mediator.Response, error) {
		return "typed:" + cmd.Value, nil
	})

	resp, err := handler.Handle(context.Background(), &pingCommand{Value: "b"})
	require.NoError(t, err)
	assert.Equal(t, "typed:b", resp)

	_, err = handler.Handle(context.Background(), "not a ping")
	assert.EqualError(t, err, "invalid request type: expected *mediator_test.pingCommand")
}

func TestSend_UnknownRequest(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), &pingCommand{})

	assert.ErrorContains(t, err, "no handler registered")
}

func TestRegister_Duplicate(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, pingHandler{}))

	err := mediator.RegisterHandler[*pingCommand](m, pingHandler{})

	assert.Error(t, err)
}

func TestMiddleware_RunsOutermostFirst(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingCommand](m, pingHandler{}))

	var order []string
	trace := func(name string) mediator.Middleware {
		return func(ctx context.Context, req mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			order = append(order, name+">")
			resp, err := next(ctx, req)
			order = append(order, "<"+name)
			return resp, err
		}
	}
	m.RegisterMiddleware(trace("outer"))
	m.RegisterMiddleware(trace("inner"))

	_, err := m.Send(context.Background(), &pingCommand{})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer>", "inner>", "<inner", "<outer"}, order)
}
