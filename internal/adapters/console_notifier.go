package adapters

import (
	"fmt"
	"io"
	"os"

	"reqpin/internal/ports"
)

// ConsoleNotifier prints run notices for the user, one per line.
type ConsoleNotifier struct {
	Out io.Writer
}

func NewConsoleNotifier(out io.Writer) ConsoleNotifier {
	if out == nil {
		out = os.Stdout
	}
	return ConsoleNotifier{Out: out}
}

func (n ConsoleNotifier) Warn(message string) {
	fmt.Fprintf(n.Out, "warning: %s\n", message)
}

func (n ConsoleNotifier) Info(message string) {
	fmt.Fprintln(n.Out, message)
}

var _ ports.NotifierPort = ConsoleNotifier{}
