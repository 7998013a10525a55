package fusions

import (
	"github.com/reusee/bf/insts"
	"github.com/reusee/bf/links"
)

// Pass rewrites a program into a new one of equal or shorter length.
// Jump targets in the result are stale until the program is linked again.
type Pass func(insts.Program) insts.Program

var DefaultPasses = []Pass{
	FuseMoves,
	FuseAdds,
}

// Optimize runs passes in order, DefaultPasses if none given, then relinks.
func Optimize(program insts.Program, passes ...Pass) (insts.Program, error) {
	if len(passes) == 0 {
		passes = DefaultPasses
	}
	for _, pass := range passes {
		program = pass(program)
	}
	return links.Link(program)
}

func FuseMoves(program insts.Program) insts.Program {
	return fuseRuns(program, func(inst insts.Instruction) (int, bool) {
		m, ok := inst.(insts.Move)
		return int(m), ok
	}, func(sum int) insts.Instruction {
		return insts.Move(sum)
	})
}

func FuseAdds(program insts.Program) insts.Program {
	return fuseRuns(program, func(inst insts.Instruction) (int, bool) {
		a, ok := inst.(insts.Add)
		return int(a), ok
	}, func(sum int) insts.Instruction {
		return insts.Add(sum)
	})
}

func fuseRuns(
	program insts.Program,
	amount func(insts.Instruction) (int, bool),
	fused func(int) insts.Instruction,
) insts.Program {
	ret := make(insts.Program, 0, len(program))
	sum := 0
	for _, inst := range program {
		if n, ok := amount(inst); ok {
			sum += n
			continue
		}
		if sum != 0 {
			ret = append(ret, fused(sum))
			sum = 0
		}
		ret = append(ret, inst)
	}
	if sum != 0 {
		ret = append(ret, fused(sum))
	}
	return ret
}

// FuseClears replaces the clear loops [-] and [+] with SetZero.
// It is not part of DefaultPasses.
func FuseClears(program insts.Program) insts.Program {
	ret := make(insts.Program, 0, len(program))
	for i := 0; i < len(program); i++ {
		if i+2 < len(program) && isClearLoop(program[i:i+3]) {
			ret = append(ret, insts.SetZero{})
			i += 2
			continue
		}
		ret = append(ret, program[i])
	}
	return ret
}

func isClearLoop(window insts.Program) bool {
	if _, ok := window[0].(insts.JumpIfZero); !ok {
		return false
	}
	if _, ok := window[2].(insts.JumpIfNotZero); !ok {
		return false
	}
	add, ok := window[1].(insts.Add)
	return ok && (add == 1 || add == -1)
}
