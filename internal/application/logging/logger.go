package logging

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
	"github.com/andrescamacho/ogametools-go/pkg/utils"
)

// Context keys for passing logger through context
type contextKey int

const (
	loggerKey contextKey = iota
	requestIDKey
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a discarding logger if not found
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}

// RequestIDFromContext returns the id assigned by LoggingMiddleware, if any
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LoggingMiddleware tags every request with a request id, attaches a scoped
// logger to the context and logs the outcome.
func LoggingMiddleware(logger *slog.Logger) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		name := RequestName(request)
		requestID := utils.GenerateRequestID(name)

		scoped := logger.With("request", name, "request_id", requestID)
		ctx = context.WithValue(WithLogger(ctx, scoped), requestIDKey, requestID)

		start := time.Now()
		scoped.Debug("handling request")

		response, err := next(ctx, request)
		if err != nil {
			scoped.Warn("request failed", "error", err, "duration", time.Since(start))
			return response, err
		}

		scoped.Debug("request completed", "duration", time.Since(start))
		return response, nil
	}
}

// RequestName returns the bare type name of a request
// Example: "*production.GetMineTableQuery" → "GetMineTableQuery"
func RequestName(request mediator.Request) string {
	if request == nil {
		return "UnknownRequest"
	}
	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")
	if i := strings.LastIndex(fullName, "."); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}
