package main

import (
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/interp"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Interp interp.Module
	Debugs debugs.Module
}
