package interp

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/fusions"
	"github.com/reusee/bf/insts"
	"github.com/reusee/bf/links"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

const helloWorld = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>
.<-.<.+++.------.--------.>>+.>++.`

const echo = `,[.,]`

func TestCompile(t *testing.T) {
	plain, err := Compile(helloWorld, false)
	if err != nil {
		t.Fatal(err)
	}
	optimized, err := Compile(helloWorld, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(optimized) >= len(plain) {
		t.Fatalf("got %d, expected fewer than %d", len(optimized), len(plain))
	}

	onlyMoves, err := Compile("++>>", true, fusions.FuseMoves)
	if err != nil {
		t.Fatal(err)
	}
	if !onlyMoves.Equal(insts.Program{insts.Add(1), insts.Add(1), insts.Move(2)}) {
		t.Fatalf("got %v", onlyMoves)
	}

	for _, optimize := range []bool{false, true} {
		_, err := Compile("[[]", optimize)
		if !errors.Is(err, links.ErrUnbalanced) {
			t.Fatalf("got %v", err)
		}
	}
}

func TestExecute(t *testing.T) {
	program, err := Compile(helloWorld, true)
	if err != nil {
		t.Fatal(err)
	}
	output, err := Execute(program, true)
	if err != nil {
		t.Fatal(err)
	}
	if str := string(output.Bytes); str != "Hello World!\n" {
		t.Fatalf("got %q", str)
	}
	if len(output.Profile) != len(program) {
		t.Fatalf("got %d", len(output.Profile))
	}
}

func TestRun(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		run RunFunc,
	) {
		result, err := run(t.Context(), helloWorld, false)
		if err != nil {
			t.Fatal(err)
		}
		if str := string(result.Output.Bytes); str != "Hello World!\n" {
			t.Fatalf("got %q", str)
		}
		if result.Output.Profile != nil {
			t.Fatal()
		}
		plain, err := links.Parse(helloWorld)
		if err != nil {
			t.Fatal(err)
		}
		if !result.Program.Equal(plain) {
			t.Fatal("should not optimize by default")
		}
		if result.Machine.Pointer == 0 {
			t.Fatal()
		}
	})
}

func TestRunOptimized(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() bfconfigs.FuseClears {
			return true
		},
	).Call(func(
		run RunFunc,
	) {
		result, err := run(t.Context(), "+++[-]>++[-]<.", true)
		if err != nil {
			t.Fatal(err)
		}
		expected := insts.Program{
			insts.Add(3),
			insts.SetZero{},
			insts.Move(1),
			insts.Add(2),
			insts.SetZero{},
			insts.Move(-1),
			insts.Print{},
		}
		if !result.Program.Equal(expected) {
			t.Fatalf("got %v", result.Program)
		}
		if string(result.Output.Bytes) != "\x00" {
			t.Fatalf("got %v", result.Output.Bytes)
		}
		if result.Output.Steps != uint64(len(expected)) {
			t.Fatalf("got %d", result.Output.Steps)
		}
	})
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() bfconfigs.InputPath {
			return bfconfigs.InputPath(path)
		},
		func() Stdin {
			return strings.NewReader("ignored")
		},
		func() bfvm.EOFMode {
			return bfvm.EOFZero
		},
	).Call(func(
		run RunFunc,
	) {
		result, err := run(t.Context(), echo, false)
		if err != nil {
			t.Fatal(err)
		}
		if str := string(result.Output.Bytes); str != "hello" {
			t.Fatalf("got %q", str)
		}
	})
}

func TestRunStdin(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Stdin {
			return strings.NewReader("abc")
		},
	).Call(func(
		run RunFunc,
	) {
		// read past the end keeps the last byte
		result, err := run(t.Context(), ",.,.,.,.", false)
		if err != nil {
			t.Fatal(err)
		}
		if str := string(result.Output.Bytes); str != "abcc" {
			t.Fatalf("got %q", str)
		}
	})
}

func TestRunErrors(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		run RunFunc,
	) {
		result, err := run(t.Context(), "+.<", false)
		if !errors.Is(err, bfvm.ErrPointerUnderflow) {
			t.Fatalf("got %v", err)
		}
		if result != nil {
			t.Fatal()
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}

		_, err = run(t.Context(), "]", false)
		if !errors.Is(err, links.ErrUnbalanced) {
			t.Fatalf("got %v", err)
		}
	})

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() bfconfigs.InputPath {
			return bfconfigs.InputPath(filepath.Join(t.TempDir(), "missing"))
		},
	).Call(func(
		run RunFunc,
	) {
		_, err := run(t.Context(), echo, false)
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
	})
}
