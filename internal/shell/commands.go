package shell

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

// command is a word the shell recognizes instead of an expression.
type command struct {
	// word is what the user types.
	word string
	// header is printed before the command's output.
	header string
	// description is shown in the help listing.
	description string
}

var (
	cmdExit      = command{"exit", "", "to close the application"}
	cmdHelp      = command{"help", "You can use next commands:", "to get this description"}
	cmdHistory   = command{"history", "History:", "to see the calculation history"}
	cmdUnique    = command{"history unique", "Unique history:", "to see the calculation history without duplicates"}
	cmdOperators = command{"operators", "The operators list, sorted in ascending order by their precedence:", "to see the operators list"}
)

// commands lists the commands in the order help shows them.
var commands = []command{cmdExit, cmdHelp, cmdHistory, cmdUnique, cmdOperators}

// lookupCommand finds the command for a line. Runs of spaces between words
// are insignificant.
func lookupCommand(line string) (command, bool) {
	line = strings.Join(strings.Fields(line), " ")
	for _, c := range commands {
		if c.word == line {
			return c, true
		}
	}
	return command{}, false
}

func writeHelp(w io.Writer) {
	fmt.Fprintln(w, cmdHelp.header)
	for _, c := range commands {
		fmt.Fprintf(w, "\t%s - %s\n", c.word, c.description)
	}
}

func writeOperators(w io.Writer) {
	fmt.Fprintln(w, cmdOperators.header)
	for _, op := range calculator.Operators() {
		fmt.Fprintf(w, "\t%c %s (%s)\n", op.Symbol, op.Name, op.Precedence())
	}
}

// writeHistory writes a history listing in the given format.
func writeHistory(w io.Writer, header, format string, pairs []calculator.ResultPair) error {
	fmt.Fprintln(w, header)
	switch format {
	case "yaml":
		if pairs == nil {
			pairs = []calculator.ResultPair{}
		}
		b, err := yaml.Marshal(pairs)
		if err != nil {
			return fmt.Errorf("marshal history: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "text", "":
		for _, p := range pairs {
			fmt.Fprintf(w, "\t%s\n", p)
		}
		return nil
	default:
		return fmt.Errorf("unknown history format %q", format)
	}
}
