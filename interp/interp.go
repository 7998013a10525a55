package interp

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/fusions"
	"github.com/reusee/bf/insts"
	"github.com/reusee/bf/links"
)

// Compile parses src and, when optimize is set, runs the fusion passes over it.
// Without passes the default ones are used.
func Compile(src string, optimize bool, passes ...fusions.Pass) (insts.Program, error) {
	program, err := links.Parse(src)
	if err != nil {
		return nil, err
	}
	if !optimize {
		return program, nil
	}
	return fusions.Optimize(program, passes...)
}

// Execute runs program on a fresh machine.
func Execute(program insts.Program, profile bool, options ...bfvm.Option) (*bfvm.Output, error) {
	return bfvm.Run(program, profile, options...)
}
