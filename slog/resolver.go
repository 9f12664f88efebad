// Package slog provides logging decorators for coursecheck services using log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/coursecheck"
	"github.com/google/uuid"
)

// Ensure LoggingResolver implements coursecheck.Resolver.
var _ coursecheck.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver and logs one record per query.
type LoggingResolver struct {
	next   coursecheck.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next coursecheck.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, snapshot *coursecheck.Snapshot, query string) (answer *coursecheck.Answer, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"request_id", uuid.New().String(),
			"query", query,
		}
		if answer != nil {
			attrs = append(attrs, "intent", answer.Intent.String(), "threshold", answer.Threshold)
			if answer.Verdict != nil {
				attrs = append(attrs, "verdict", answer.Verdict.Kind.String())
			} else {
				attrs = append(attrs, "accepted", len(answer.Accepted))
			}
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		r.logger.Info("resolve query", attrs...)
	}(time.Now())
	return r.next.Resolve(ctx, snapshot, query)
}
