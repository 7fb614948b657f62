package gasmconfigs

import (
	"github.com/reusee/braingasm/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
