package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/studiosim-go/internal/application/mediator"
)

const (
	statusSuccess  = "success"
	statusRejected = "rejected"
	statusError    = "error"
)

// rejectable is implemented by responses that can carry a domain rejection
// without a Go error, such as the dispatch response.
type rejectable interface {
	IsRejected() bool
}

// PrometheusMiddleware creates a middleware that records command execution metrics
//
// Every request through the mediator is timed and counted by name and status.
// A domain rejection is reported as "rejected" rather than "error" so the
// error series only counts infrastructure failures.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		end := collector.begin()
		defer end()

		start := time.Now()
		response, err := next(ctx, request)

		collector.RecordCommandExecution(extractCommandName(request), time.Since(start).Seconds(), outcomeOf(response, err))
		return response, err
	}
}

func outcomeOf(response mediator.Response, err error) string {
	if err != nil {
		return statusError
	}
	if r, ok := response.(rejectable); ok && r.IsRejected() {
		return statusRejected
	}
	return statusSuccess
}

// extractCommandName extracts a clean command name from the request using reflection
// Examples:
//   - "*commands.DispatchActionCommand" → "DispatchActionCommand"
//   - "*queries.RecommendFocusQuery" → "RecommendFocusQuery"
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
