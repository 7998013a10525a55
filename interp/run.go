package interp

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/insts"
	"github.com/reusee/bf/logs"
)

// Result is a finished run. Machine holds the final tape and pointer.
type Result struct {
	Program insts.Program
	Machine *bfvm.Machine
	Output  *bfvm.Output
}

type RunFunc func(ctx context.Context, src string, profile bool) (*Result, error)

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	compile CompileFunc,
	inputPath bfconfigs.InputPath,
	eof bfvm.EOFMode,
	stdin Stdin,
) RunFunc {
	return func(ctx context.Context, src string, profile bool) (_ *Result, err error) {
		ctx, _ = newSpan(ctx, "run")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		program, err := compile(ctx, src)
		if err != nil {
			return nil, err
		}

		options := []bfvm.Option{
			bfvm.WithEOF(eof),
		}
		if inputPath != "" {
			f, err := os.Open(string(inputPath))
			if err != nil {
				return nil, fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			options = append(options, bfvm.WithInput(f))
		} else if stdin != nil {
			options = append(options, bfvm.WithInput(stdin))
		}

		machine := bfvm.NewMachine(options...)
		t0 := time.Now()
		output, err := machine.Execute(program, profile)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "execution completed",
			"duration", time.Since(t0),
			"steps", output.Steps,
			"output", len(output.Bytes),
		)

		return &Result{
			Program: program,
			Machine: machine,
			Output:  output,
		}, nil
	}
}
