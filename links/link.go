package links

import (
	"errors"
	"fmt"

	"github.com/reusee/bf/insts"
)

var ErrUnbalanced = errors.New("unbalanced program")

// Tokenize maps source symbols to instructions. Jumps carry insts.Unresolved
// targets and any symbol outside the alphabet is dropped.
func Tokenize(src string) insts.Program {
	ret := make(insts.Program, 0, len(src))
	for _, r := range src {
		switch r {
		case '>':
			ret = append(ret, insts.Move(1))
		case '<':
			ret = append(ret, insts.Move(-1))
		case '+':
			ret = append(ret, insts.Add(1))
		case '-':
			ret = append(ret, insts.Add(-1))
		case '.':
			ret = append(ret, insts.Print{})
		case ',':
			ret = append(ret, insts.Read{})
		case '[':
			ret = append(ret, insts.JumpIfZero(insts.Unresolved))
		case ']':
			ret = append(ret, insts.JumpIfNotZero(insts.Unresolved))
		}
	}
	return ret
}

// Link resolves every loop pair into absolute targets.
// Incoming targets are ignored, so linking a transformed program is safe.
func Link(program insts.Program) (insts.Program, error) {
	ret := make(insts.Program, 0, len(program))
	var stack []int
	for i, inst := range program {
		switch inst.(type) {

		case insts.JumpIfZero:
			stack = append(stack, i)
			ret = append(ret, insts.JumpIfZero(insts.Unresolved))

		case insts.JumpIfNotZero:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unmatched loop end at %d", ErrUnbalanced, i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ret[open] = insts.JumpIfZero(i + 1)
			ret = append(ret, insts.JumpIfNotZero(open+1))

		default:
			ret = append(ret, inst)

		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: unmatched loop start at %d", ErrUnbalanced, stack[len(stack)-1])
	}
	for i, inst := range ret {
		if inst == insts.Instruction(insts.JumpIfZero(insts.Unresolved)) {
			return nil, fmt.Errorf("%w: unresolved jump at %d", ErrUnbalanced, i)
		}
	}

	return ret, nil
}

func Parse(src string) (insts.Program, error) {
	return Link(Tokenize(src))
}
