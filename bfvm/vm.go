package bfvm

import (
	"bufio"
	"errors"
	"io"
)

const TapeSize = 30000

var (
	ErrPointerOverflow    = errors.New("data pointer overflow")
	ErrPointerUnderflow   = errors.New("data pointer underflow")
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrUnresolvedJump     = errors.New("unresolved jump target")
)

// EOFMode decides what Read stores when the input is exhausted.
type EOFMode uint8

const (
	EOFKeep EOFMode = iota
	EOFZero
	EOFMax
)

func (e EOFMode) String() string {
	switch e {
	case EOFKeep:
		return "keep"
	case EOFZero:
		return "zero"
	case EOFMax:
		return "max"
	}
	return "unknown"
}

// Machine is the tape and data pointer of one run.
type Machine struct {
	Tape    [TapeSize]byte
	Pointer int

	input io.ByteReader
	eof   EOFMode
}

type Option func(*Machine)

// WithInput sets the byte source of Read. Without it Read always sees end of input.
func WithInput(r io.Reader) Option {
	return func(m *Machine) {
		if r == nil {
			m.input = nil
			return
		}
		if br, ok := r.(io.ByteReader); ok {
			m.input = br
			return
		}
		m.input = bufio.NewReader(r)
	}
}

func WithEOF(mode EOFMode) Option {
	return func(m *Machine) {
		m.eof = mode
	}
}

func NewMachine(options ...Option) *Machine {
	m := new(Machine)
	for _, option := range options {
		option(m)
	}
	return m
}

// Output is the result of a successful run.
type Output struct {
	Bytes []byte
	// Profile holds per instruction dispatch counts, nil unless requested
	Profile []uint64
	Steps   uint64
}
