package services

import (
	"context"

	"rulebot/internal/classifier"
)

// Classifier maps a message to a catalog rule.
type Classifier interface {
	Match(message string) classifier.Match
	Rules() []classifier.Rule
}

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID stores a request id on ctx for log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
