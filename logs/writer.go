package logs

import (
	"io"
	"os"
)

// Writer receives the terminal log output. Program output goes to stdout, so logs never do.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
