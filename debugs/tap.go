package debugs

import (
	"context"

	"github.com/reusee/braingasm/gasmvm"
	"github.com/reusee/braingasm/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin over machine state.
type Tap func(ctx context.Context, what string, m *gasmvm.Machine)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, m *gasmvm.Machine) {
		logger.InfoContext(ctx, "tap: "+what,
			"ip", m.IP,
			"pos", m.Pos(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, machineGlobals(m))
	}
}
