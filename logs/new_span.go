package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a named span under the span of ctx, if any.
type NewSpan func(ctx context.Context, name string, args ...any) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, name string, args ...any) (context.Context, Span) {
		parent, hasParent := SpanOf(ctx)

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		args = append([]any{"name", name}, args...)
		if hasParent {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
