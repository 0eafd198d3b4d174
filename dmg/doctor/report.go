package doctor

import (
	"fmt"
	"strings"
)

// MismatchError reports the first divergence between the CPU and the
// golden log, along with the instructions that led up to it. The last
// history entry is the diverging one.
type MismatchError struct {
	Line     int
	Expected string
	Received string
	History  []Entry
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("golden log mismatch at line %d", e.Line)
}

// Report renders the ring history with the expected and received
// state for the diverging line, and a caret under the first column
// where they differ.
//
//	12340      State:    A:01 F:[Z-HC] ...
//	           Instr:    LD A,$42
//	12345      Expected: A:05 F:[Z-HC] ...
//	           Was:      A:01 F:[Z-HC] ...
//	               ^
func (e *MismatchError) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", e.Error())

	for i, entry := range e.History {
		if i == len(e.History)-1 {
			fmt.Fprintf(&b, "%-10d Expected: %s\n", entry.Line, e.Expected)
			fmt.Fprintf(&b, "           Was:      %s\n", e.Received)
			if col := firstDiffColumn(e.Expected, e.Received); col >= 0 {
				fmt.Fprintf(&b, "%s^\n", strings.Repeat(" ", 21+col))
			}
		} else {
			fmt.Fprintf(&b, "%-10d State:    %s\n", entry.Line, entry.State)
			fmt.Fprintf(&b, "           Instr:    %s\n", entry.Instruction)
		}
	}
	return b.String()
}

// firstDiffColumn returns the first index where the strings differ,
// or -1 when they are equal.
func firstDiffColumn(a, b string) int {
	limit := min(len(a), len(b))
	for i := 0; i < limit; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return limit
	}
	return -1
}
