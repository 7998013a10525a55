package main

import (
	"github.com/reusee/bf/cmds"
)

type action uint8

const (
	actionRun action = iota + 1
	actionAnnotate
	actionProfile
	actionInspect
)

var (
	selected   action
	sourceFile string
)

var (
	scriptFile = cmds.Var[string]("-script", "starlark script evaluated by inspect instead of the interactive shell")
	newline    = cmds.Switch("-newline", "print a newline after the program output")
)

func init() {
	for name, def := range map[string]struct {
		action action
		desc   string
	}{
		"run":      {actionRun, "execute a program and print its output"},
		"annotate": {actionAnnotate, "print the compiled program without executing it"},
		"profile":  {actionProfile, "execute a program and print per instruction counts"},
		"inspect":  {actionInspect, "execute a program and examine the final tape with starlark"},
	} {
		cmds.Define(name, cmds.Func(func(path string) {
			selected = def.action
			sourceFile = path
		}).Desc(def.desc))
	}
}
