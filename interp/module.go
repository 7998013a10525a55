package interp

import (
	"io"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	BFConfigs bfconfigs.Module
	Logs      logs.Module
}

// Stdin is the fallback source of Read when no input file is configured. Nil means no input.
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return nil
}
