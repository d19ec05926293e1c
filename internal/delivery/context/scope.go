// Package context carries request-scoped values from the delivery layer down
// to use cases and repositories.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header echoed on responses and forwarded to the worker.
const HeaderXRequestID = echo.HeaderXRequestID

// echoKeyRequestID stores the request id on echo.Context for envelope rendering.
const echoKeyRequestID = "request_id"

type scopeKey struct{}

// scope is immutable; every With* call stores a modified copy.
type scope struct {
	requestID string
	callerID  int64
	hasCaller bool
	logger    *slog.Logger
}

func load(ctx context.Context) scope {
	s, _ := ctx.Value(scopeKey{}).(scope)

	return s
}

func store(ctx context.Context, s scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// RequestID returns the id assigned to the current HTTP request. It falls
// back to the request context and then to the response header.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}
	if id := RequestIDFrom(c.Request().Context()); id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// SetRequestID records the request id on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	s := load(ctx)
	s.requestID = requestID

	return store(ctx, s)
}

// RequestIDFrom returns the request id carried by ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	return load(ctx).requestID
}

// WithCallerID records the id of the authenticated user issuing the request.
func WithCallerID(ctx context.Context, userID int64) context.Context {
	s := load(ctx)
	s.callerID, s.hasCaller = userID, true

	return store(ctx, s)
}

// CallerID returns the authenticated user id, if the request was identified.
func CallerID(ctx context.Context) (int64, bool) {
	s := load(ctx)

	return s.callerID, s.hasCaller
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	s := load(ctx)
	s.logger = logger

	return store(ctx, s)
}

// LoggerFrom returns the request-scoped logger, or fallback when none is set.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if l := load(ctx).logger; l != nil {
		return l
	}

	return fallback
}
