package main

import (
	"github.com/reusee/braingasm/debugs"
	"github.com/reusee/braingasm/gasmconfigs"
	"github.com/reusee/braingasm/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs gasmconfigs.Module
	Sources sources.Module
	Debugs  debugs.Module
}
