package debugs

import (
	"io"
	"os"

	"github.com/reusee/bf/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// ScriptOutput receives what scripts print.
type ScriptOutput io.Writer

func (Module) ScriptOutput() ScriptOutput {
	return os.Stdout
}
