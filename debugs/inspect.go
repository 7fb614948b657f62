package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/braingasm/gasmvm"
	"github.com/reusee/braingasm/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Inspect evaluates a starlark expression over machine state, like `tape[:dp+1]` or `cell(-1)`.
type Inspect func(ctx context.Context, m *gasmvm.Machine, expr string) (string, error)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, m *gasmvm.Machine, expr string) (string, error) {
		thread := &starlark.Thread{
			Name: "inspect",
		}
		value, err := starlark.EvalOptions(
			&syntax.FileOptions{},
			thread,
			"inspect",
			expr,
			machineGlobals(m),
		)
		if err != nil {
			return "", fmt.Errorf("inspect %q: %w", expr, err)
		}
		logger.DebugContext(ctx, "inspect", "expr", expr, "value", value.String())
		if s, ok := value.(starlark.String); ok {
			return string(s), nil
		}
		return value.String(), nil
	}
}
