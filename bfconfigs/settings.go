package bfconfigs

import (
	"fmt"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/vars"
)

type Optimize bool

var _ configs.Configurable = Optimize(false)

func (Optimize) ConfigPath() string {
	return "optimize"
}

var optimizeFlag = cmds.OptionalSwitch("-optimize", "fuse repeated moves and adds before running")

func (Module) Optimize(
	loader configs.Loader,
	fuseClears FuseClears,
) Optimize {
	if fuseClears {
		return true
	}
	if optimizeFlag.IsSet {
		return Optimize(optimizeFlag.Value)
	}
	return mustGet[Optimize](loader)
}

type FuseClears bool

var _ configs.Configurable = FuseClears(false)

func (FuseClears) ConfigPath() string {
	return "fuse_clears"
}

var fuseClearsFlag = cmds.OptionalSwitch("-fuse-clears", "rewrite clear loops into a single instruction, implies -optimize")

func (Module) FuseClears(
	loader configs.Loader,
) FuseClears {
	if fuseClearsFlag.IsSet {
		return FuseClears(fuseClearsFlag.Value)
	}
	return mustGet[FuseClears](loader)
}

// InputPath is the file consumed by Read. Empty means standard input when it is piped.
type InputPath string

var _ configs.Configurable = InputPath("")

func (InputPath) ConfigPath() string {
	return "input"
}

var inputFlag = cmds.Var[string]("-input", "file consumed by the read instruction")

func (Module) InputPath(
	loader configs.Loader,
) InputPath {
	return vars.FirstNonZero(
		InputPath(*inputFlag),
		mustGet[InputPath](loader),
	)
}

type EOF string

var _ configs.Configurable = EOF("")

func (EOF) ConfigPath() string {
	return "eof"
}

var eofFlag string

func init() {
	cmds.Define("-eof", cmds.Func(func(name string) error {
		if _, err := ParseEOFMode(name); err != nil {
			return err
		}
		eofFlag = name
		return nil
	}).Desc("value stored by read at end of input: keep, zero or max"))
}

func (Module) EOFMode(
	loader configs.Loader,
) bfvm.EOFMode {
	name := vars.FirstNonZero(
		EOF(eofFlag),
		mustGet[EOF](loader),
	)
	// both sources are checked before this point: the flag when parsed, files by the schema
	mode, err := ParseEOFMode(string(name))
	if err != nil {
		panic(err)
	}
	return mode
}

func ParseEOFMode(name string) (bfvm.EOFMode, error) {
	switch name {
	case "", "keep":
		return bfvm.EOFKeep, nil
	case "zero":
		return bfvm.EOFZero, nil
	case "max":
		return bfvm.EOFMax, nil
	}
	return 0, fmt.Errorf("bad eof mode: %q", name)
}

func mustGet[T configs.Configurable](loader configs.Loader) T {
	v, err := configs.Get[T](loader)
	if err != nil {
		panic(err)
	}
	return v
}
