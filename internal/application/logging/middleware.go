package logging

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
)

// Middleware injects logger into every request context and logs the outcome
// of each request. Handlers pick the logger up with LoggerFromContext.
func Middleware(logger Logger) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if logger == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(WithLogger(ctx, logger), request)

		metadata := map[string]interface{}{
			"request":     requestName(request),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000,
		}
		if err != nil {
			metadata["error"] = err.Error()
			logger.Log("ERROR", "request failed", metadata)
			return response, err
		}
		logger.Log("DEBUG", "request handled", metadata)
		return response, nil
	}
}

func requestName(request mediator.Request) string {
	if request == nil {
		return "unknown"
	}
	name := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
