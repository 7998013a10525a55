package debugs

import (
	"fmt"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/insts"
)

// Globals exposes a finished run to scripts.
//
//	program  list of instruction strings
//	tape     list of cell values
//	pointer  data pointer
//	output   bytes printed by the program
//	profile  per instruction counts, None when not collected
//	steps    instructions executed
//	cell(i)  value of cell i
func Globals(machine *bfvm.Machine, program insts.Program, output *bfvm.Output) map[string]any {
	ret := map[string]any{
		"program": program,
		"tape":    &machine.Tape,
		"pointer": machine.Pointer,
		"cell":    cellFunc(machine),
	}
	if output != nil {
		ret["output"] = output.Bytes
		ret["steps"] = output.Steps
		ret["profile"] = output.Profile
	}
	return ret
}

func cellFunc(machine *bfvm.Machine) func(int) (int, error) {
	return func(i int) (int, error) {
		if i < 0 || i >= bfvm.TapeSize {
			return 0, fmt.Errorf("cell %d out of tape", i)
		}
		return int(machine.Tape[i]), nil
	}
}
