package effects

import (
	"fmt"
	"io"
)

// StdConsole writes to the given writer, one line per Print call. The
// teacher's own builtins call fmt.Println directly for equivalent
// console-output concerns; there is no console-output library in the
// corpus worth wrapping for a single Fprintln call.
type StdConsole struct {
	Out io.Writer
}

// NewStdConsole creates a Console writing to out.
func NewStdConsole(out io.Writer) *StdConsole {
	return &StdConsole{Out: out}
}

func (c *StdConsole) Print(line string) {
	fmt.Fprintln(c.Out, line)
}
