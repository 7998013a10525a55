package annotates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/bf/insts"
)

const indentStep = 3

// Annotate renders one line per instruction: line number, loop nesting
// indentation, a loop marker and the instruction. When profile is not nil its
// count is appended to each line.
func Annotate(program insts.Program, profile []uint64) string {
	var b strings.Builder
	width := len(strconv.Itoa(len(program)))
	indent := 0
	for i, inst := range program {
		decoration := " "
		switch inst.(type) {
		case insts.JumpIfZero:
			decoration = "⬐"
			indent += indentStep
		case insts.JumpIfNotZero:
			decoration = "⬑"
		}

		fmt.Fprintf(&b, "%-*d  %*s%s%v", width, i+1, indent, "", decoration, inst)
		if profile != nil && i < len(profile) {
			fmt.Fprintf(&b, " %d", profile[i])
		}
		b.WriteByte('\n')

		if _, ok := inst.(insts.JumpIfNotZero); ok {
			indent -= indentStep
		}
	}
	return b.String()
}
