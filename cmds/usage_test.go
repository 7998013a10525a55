package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Func(func(path string) {}).Desc("run a program"))
	executor.Define("-input", Func(func(path *string) {}).Desc("input file"))
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {}).Desc("BAR"),
	}).Desc("FOO"))

	buf := new(bytes.Buffer)
	executor.WriteUsage(buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	expected := []string{
		"--help, -h, -help, help\tprint this usage",
		"-input [string]\tinput file",
		"foo\tFOO",
		"  bar\tBAR",
		"run <string>\trun a program",
	}
	if len(lines) != len(expected) {
		t.Fatalf("got %q", lines)
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Fatalf("got %q, expected %q", line, expected[i])
		}
	}
}
