package insts

import "testing"

func TestString(t *testing.T) {
	for _, c := range []struct {
		inst     Instruction
		expected string
	}{
		{Move(1), "Move(1)"},
		{Move(-3), "Move(-3)"},
		{Add(-1), "Add(-1)"},
		{Add(42), "Add(42)"},
		{Print{}, "Print"},
		{Read{}, "Read"},
		{JumpIfZero(8), "JumpIfZero(8)"},
		{JumpIfNotZero(7), "JumpIfNotZero(7)"},
		{SetZero{}, "SetZero"},
	} {
		if got := c.inst.String(); got != c.expected {
			t.Fatalf("got %s, expected %s", got, c.expected)
		}
	}
}

func TestEquality(t *testing.T) {
	var a, b Instruction = Move(1), Move(1)
	if a != b {
		t.Fatal()
	}
	if Instruction(Move(1)) == Instruction(Add(1)) {
		t.Fatal("different kinds must not compare equal")
	}
	if Instruction(Print{}) != Instruction(Print{}) {
		t.Fatal()
	}
}

func TestProgramClone(t *testing.T) {
	p := Program{Add(1), JumpIfZero(3), JumpIfNotZero(2)}
	c := p.Clone()
	if !p.Equal(c) {
		t.Fatalf("got %v", c)
	}
	c[0] = Add(2)
	if p[0] != Add(1) {
		t.Fatal("clone aliases the original")
	}
	if Program(nil).Clone() != nil {
		t.Fatal()
	}
}

func TestProgramString(t *testing.T) {
	p := Program{Move(1), Print{}, nil}
	if str := p.String(); str != "[Move(1) Print <nil>]" {
		t.Fatalf("got %s", str)
	}
}
