package insts

import (
	"strconv"
	"strings"
)

// Instruction is one of Move, Add, Print, Read, JumpIfZero, JumpIfNotZero, SetZero.
// The set is closed: only types in this package implement it.
type Instruction interface {
	String() string
	instruction()
}

// Unresolved is the target of a jump that has not been linked yet.
// Linked targets always point past a loop marker, so they are never zero.
const Unresolved = 0

// Move shifts the data pointer, positive is forward.
type Move int

// Add adds a delta to the current cell, wrapping modulo 256.
type Add int

// Print emits the current cell.
type Print struct{}

// Read stores the next input byte into the current cell.
type Read struct{}

// JumpIfZero jumps to the target index when the current cell is zero.
type JumpIfZero int

// JumpIfNotZero jumps to the target index when the current cell is non-zero.
type JumpIfNotZero int

// SetZero clears the current cell.
type SetZero struct{}

var (
	_ Instruction = Move(0)
	_ Instruction = Add(0)
	_ Instruction = Print{}
	_ Instruction = Read{}
	_ Instruction = JumpIfZero(0)
	_ Instruction = JumpIfNotZero(0)
	_ Instruction = SetZero{}
)

func (Move) instruction()          {}
func (Add) instruction()           {}
func (Print) instruction()         {}
func (Read) instruction()          {}
func (JumpIfZero) instruction()    {}
func (JumpIfNotZero) instruction() {}
func (SetZero) instruction()       {}

func (m Move) String() string {
	return "Move(" + strconv.Itoa(int(m)) + ")"
}

func (a Add) String() string {
	return "Add(" + strconv.Itoa(int(a)) + ")"
}

func (Print) String() string {
	return "Print"
}

func (Read) String() string {
	return "Read"
}

func (j JumpIfZero) String() string {
	return "JumpIfZero(" + strconv.Itoa(int(j)) + ")"
}

func (j JumpIfNotZero) String() string {
	return "JumpIfNotZero(" + strconv.Itoa(int(j)) + ")"
}

func (SetZero) String() string {
	return "SetZero"
}

type Program []Instruction

func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	ret := make(Program, len(p))
	copy(ret, p)
	return ret
}

func (p Program) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, inst := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		if inst == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(inst.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether both programs hold the same instructions in the same order.
func (p Program) Equal(other Program) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
