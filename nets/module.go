package nets

import (
	"github.com/reusee/braingasm/logs"
	"github.com/reusee/dscope"
)

// Module fetches remote programs. It expects a configs.Loader in scope.
type Module struct {
	dscope.Module
	Logs logs.Module
}
