package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bf/annotates"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/debugs"
	"github.com/reusee/bf/interp"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

func main() {
	cmds.Execute(os.Args[1:])
	if selected == 0 {
		fmt.Fprintln(os.Stderr, "no command given")
		cmds.GlobalExecutor.WriteUsage(os.Stderr)
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if feedsStdin(selected, *scriptFile) && !term.IsTerminal(int(os.Stdin.Fd())) {
		scope = scope.Fork(
			func() interp.Stdin {
				return os.Stdin
			},
		)
	}

	var err error
	scope.Call(func(
		loader configs.Loader,
	) {
		_, err = loader.Paths()
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scope.Call(func(
		logger logs.Logger,
		compile interp.CompileFunc,
		run interp.RunFunc,
		tap debugs.Tap,
		eval debugs.Eval,
	) {
		err = execute(context.Background(), logger, compile, run, tap, eval)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// feedsStdin reports whether piped stdin may be consumed by the program.
// The interactive inspect shell reads stdin itself.
func feedsStdin(a action, script string) bool {
	switch a {
	case actionRun, actionProfile:
		return true
	case actionInspect:
		return script != ""
	}
	return false
}

func execute(
	ctx context.Context,
	logger logs.Logger,
	compile interp.CompileFunc,
	run interp.RunFunc,
	tap debugs.Tap,
	eval debugs.Eval,
) error {
	src, err := os.ReadFile(sourceFile)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "source loaded",
		"file", sourceFile,
		"bytes", len(src),
	)

	switch selected {

	case actionAnnotate:
		program, err := compile(ctx, string(src))
		if err != nil {
			return err
		}
		_, err = fmt.Print(annotates.Annotate(program, nil))
		return err

	case actionRun:
		result, err := run(ctx, string(src), false)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(result.Output.Bytes); err != nil {
			return err
		}
		if *newline {
			fmt.Println()
		}

	case actionProfile:
		result, err := run(ctx, string(src), true)
		if err != nil {
			return err
		}
		if _, err := fmt.Print(annotates.Annotate(result.Program, result.Output.Profile)); err != nil {
			return err
		}
		logger.InfoContext(ctx, "profile",
			"instructions", len(result.Program),
			"steps", result.Output.Steps,
		)

	case actionInspect:
		result, err := run(ctx, string(src), true)
		if err != nil {
			return err
		}
		globals := debugs.Globals(result.Machine, result.Program, result.Output)
		if *scriptFile == "" {
			tap(ctx, sourceFile, globals)
			return nil
		}
		_, err = eval(ctx, *scriptFile, nil, globals)
		return err

	}

	return nil
}
