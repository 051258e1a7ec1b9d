package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
)

type echoQuery struct{ Value string }

type echoHandler struct{}

func (h *echoHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	return request.(*echoQuery).Value, nil
}

func TestMediator_SendDispatchesByType(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*echoQuery](med, &echoHandler{}))

	response, err := med.Send(context.Background(), &echoQuery{Value: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "hello", response)
}

func TestMediator_Errors(t *testing.T) {
	med := mediator.NewMediator()

	_, err := med.Send(context.Background(), nil)
	assert.EqualError(t, err, "request cannot be nil")

	_, err = med.Send(context.Background(), &echoQuery{})
	assert.ErrorContains(t, err, "no handler registered")

	require.NoError(t, mediator.RegisterHandler[*echoQuery](med, &echoHandler{}))
	assert.ErrorContains(t, mediator.RegisterHandler[*echoQuery](med, &echoHandler{}), "already registered")
	assert.ErrorContains(t, med.Register(nil, &echoHandler{}), "request type cannot be nil")
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*echoQuery](med, &echoHandler{}))

	var calls []string
	record := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			calls = append(calls, name+":before")
			response, err := next(ctx, request)
			calls = append(calls, name+":after")
			return response, err
		}
	}
	med.RegisterMiddleware(record("outer"))
	med.RegisterMiddleware(record("inner"))

	_, err := med.Send(context.Background(), &echoQuery{Value: "x"})

	require.NoError(t, err)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, calls)
}

type pingQuery struct{}

func TestMediator_HandlerFuncIsAHandler(t *testing.T) {
	med := mediator.NewMediator()
	handler := mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return "pong", nil
	})
	require.NoError(t, mediator.RegisterHandler[*pingQuery](med, handler))

	response, err := med.Send(context.Background(), &pingQuery{})

	require.NoError(t, err)
	assert.Equal(t, "pong", response)
}
