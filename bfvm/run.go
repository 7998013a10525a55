package bfvm

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bf/insts"
)

// Execute runs the program against the machine until the instruction pointer
// leaves the program. The tape and pointer keep their final state.
// On failure no output is returned.
func (m *Machine) Execute(program insts.Program, profile bool) (*Output, error) {
	if err := Validate(program); err != nil {
		return nil, err
	}

	var output []byte
	var counts []uint64
	if profile {
		counts = make([]uint64, len(program))
	}
	var steps uint64

	ip := 0
	for ip < len(program) {
		inst := program[ip]
		steps++
		if counts != nil {
			counts[ip]++
		}

		switch inst := inst.(type) {

		case insts.Move:
			n := int(inst)
			if n > 0 {
				if n >= TapeSize-m.Pointer {
					return nil, fmt.Errorf("%w: pointer = %d, offset = %d", ErrPointerOverflow, m.Pointer, n)
				}
				m.Pointer += n
			} else if n < 0 {
				if n < -m.Pointer {
					return nil, fmt.Errorf("%w: pointer = %d, offset = %d", ErrPointerUnderflow, m.Pointer, n)
				}
				m.Pointer += n
			}

		case insts.Add:
			m.Tape[m.Pointer] += byte(inst)

		case insts.Print:
			output = append(output, m.Tape[m.Pointer])

		case insts.Read:
			if err := m.read(); err != nil {
				return nil, err
			}

		case insts.JumpIfZero:
			if m.Tape[m.Pointer] == 0 {
				ip = int(inst)
				continue
			}

		case insts.JumpIfNotZero:
			if m.Tape[m.Pointer] != 0 {
				ip = int(inst)
				continue
			}

		case insts.SetZero:
			m.Tape[m.Pointer] = 0

		default:
			return nil, fmt.Errorf("%w at %d: %v", ErrUnknownInstruction, ip, inst)
		}

		ip++
	}

	return &Output{
		Bytes:   output,
		Profile: counts,
		Steps:   steps,
	}, nil
}

func (m *Machine) read() error {
	if m.input == nil {
		m.atEOF()
		return nil
	}
	b, err := m.input.ReadByte()
	if errors.Is(err, io.EOF) {
		m.atEOF()
		return nil
	} else if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	m.Tape[m.Pointer] = b
	return nil
}

func (m *Machine) atEOF() {
	switch m.eof {
	case EOFZero:
		m.Tape[m.Pointer] = 0
	case EOFMax:
		m.Tape[m.Pointer] = 255
	}
}

// Validate rejects jumps that a linker could not have produced.
func Validate(program insts.Program) error {
	for i, inst := range program {
		var target int
		switch inst := inst.(type) {
		case insts.JumpIfZero:
			if inst == insts.Unresolved {
				return fmt.Errorf("%w at %d", ErrUnresolvedJump, i)
			}
			target = int(inst)
		case insts.JumpIfNotZero:
			target = int(inst)
		default:
			continue
		}
		if target < 0 || target > len(program) {
			return fmt.Errorf("%w at %d: target %d out of range", ErrUnresolvedJump, i, target)
		}
	}
	return nil
}

// Run executes the program on a fresh machine.
func Run(program insts.Program, profile bool, options ...Option) (*Output, error) {
	return NewMachine(options...).Execute(program, profile)
}
