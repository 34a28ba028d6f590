package mediator

import (
	"context"
	"fmt"
)

// Request is a command that changes the studio or a query that reads it.
type Request interface{}

// Response is whatever the matching handler returns.
type Response interface{}

// RequestHandler handles one request type.
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a plain function to RequestHandler. It is also the
// shape of the next step inside a middleware.
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Handle implements RequestHandler
func (f HandlerFunc) Handle(ctx context.Context, request Request) (Response, error) {
	return f(ctx, request)
}

// Middleware wraps every Send with a cross-cutting concern such as logging
// or metrics. It must call next exactly once unless it short-circuits.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

// Typed builds a handler for requests of type T, rejecting anything else
// with the same error the hand-written handlers return.
func Typed[T Request](fn func(ctx context.Context, request T) (Response, error)) RequestHandler {
	return HandlerFunc(func(ctx context.Context, request Request) (Response, error) {
		typed, ok := request.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("invalid request type: expected %T", zero)
		}
		return fn(ctx, typed)
	})
}
