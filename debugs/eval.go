package debugs

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/bf/logs"
	"go.starlark.net/starlark"
)

// Eval runs a starlark script against globals and returns the globals it defines.
type Eval func(ctx context.Context, filename string, src any, globals map[string]any) (starlark.StringDict, error)

func (Module) Eval(
	logger logs.Logger,
	output ScriptOutput,
) Eval {
	return func(ctx context.Context, filename string, src any, globals map[string]any) (starlark.StringDict, error) {
		logger.DebugContext(ctx, "eval script",
			"filename", filename,
			"globals", sortedKeys(globals),
		)

		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		thread.SetLocal("context", ctx)

		ret, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, toStringDict(globals))
		if err != nil {
			var evalErr *starlark.EvalError
			if errors.As(err, &evalErr) {
				logger.ErrorContext(ctx, "script failed",
					"filename", filename,
					"backtrace", evalErr.Backtrace(),
				)
			}
			return nil, logs.WrapSpan(ctx, fmt.Errorf("eval %s: %w", filename, err))
		}
		return ret, nil
	}
}
