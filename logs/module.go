package logs

import (
	"context"
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives text logs. Program output never goes here.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// Span identifies one program run in logs and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanOf(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}
