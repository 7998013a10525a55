package debugs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/links"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func TestEval(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() ScriptOutput {
			return buf
		},
	).Call(func(
		eval Eval,
	) {
		program, err := links.Parse("++>+++.")
		if err != nil {
			t.Fatal(err)
		}
		machine := bfvm.NewMachine()
		output, err := machine.Execute(program, true)
		if err != nil {
			t.Fatal(err)
		}

		globals, err := eval(t.Context(), "inspect.star", `
print(program[0])
def count():
    n = 0
    for c in profile:
        n += c
    return n
total = count()
cells = [tape[0], tape[1]]
sum_cells = tape[0] + tape[1]
here = pointer
out = output
`, Globals(machine, program, output))
		if err != nil {
			t.Fatal(err)
		}

		if str := buf.String(); str != "Add(1)\n" {
			t.Fatalf("got %q", str)
		}
		if v := globals["total"]; v.String() != "7" {
			t.Fatalf("got %v", v)
		}
		if v := globals["cells"]; v.String() != "[2, 3]" {
			t.Fatalf("got %v", v)
		}
		if v := globals["sum_cells"]; v.String() != "5" {
			t.Fatalf("got %v", v)
		}
		if v := globals["here"]; v.String() != "1" {
			t.Fatalf("got %v", v)
		}
		if v := globals["out"]; v != starlark.Bytes("\x03") {
			t.Fatalf("got %v", v)
		}
	})
}

func TestEvalWithoutProfile(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() ScriptOutput {
			return new(bytes.Buffer)
		},
	).Call(func(
		eval Eval,
	) {
		machine := bfvm.NewMachine()
		output, err := machine.Execute(nil, false)
		if err != nil {
			t.Fatal(err)
		}
		globals, err := eval(t.Context(), "none.star", `missing = profile == None`, Globals(machine, nil, output))
		if err != nil {
			t.Fatal(err)
		}
		if globals["missing"] != starlark.True {
			t.Fatalf("got %v", globals["missing"])
		}
	})
}

func TestEvalError(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		eval Eval,
	) {
		_, err := eval(t.Context(), "bad.star", `x = undefined_name`, nil)
		if err == nil {
			t.Fatal()
		}
		if !strings.Contains(err.Error(), "bad.star") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestCellFunc(t *testing.T) {
	machine := bfvm.NewMachine()
	machine.Tape[5] = 9
	cell := cellFunc(machine)
	v, err := cell(5)
	if err != nil {
		t.Fatal(err)
	}
	if v != 9 {
		t.Fatalf("got %d", v)
	}
	if _, err := cell(bfvm.TapeSize); err == nil {
		t.Fatal()
	}
	if _, err := cell(-1); err == nil {
		t.Fatal()
	}
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]any{"tape": 1, "output": 2, "pointer": 3})
	if strings.Join(keys, ",") != "output,pointer,tape" {
		t.Fatalf("got %v", keys)
	}
}
