package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/zephyrtronium/calculator"
)

var oppat = calculator.OperatorPattern()

// MaxLine is the longest input line Run accepts, in bytes.
const MaxLine = 1 << 20

// Journal receives every evaluation the shell records.
type Journal interface {
	Append(ctx context.Context, key, value string) error
}

// Shell is an interactive calculator session. It is not safe to use a Shell
// concurrently.
type Shell struct {
	in      *bufio.Scanner
	out     io.Writer
	history *calculator.History
	journal Journal
	logger  *zap.Logger
	format  string
	prompt  string
}

// Option configures a Shell.
type Option func(*Shell)

// WithJournal sets a journal that receives every recorded evaluation.
func WithJournal(j Journal) Option {
	return func(s *Shell) { s.journal = j }
}

// WithLogger sets the logger. The default discards logs.
func WithLogger(l *zap.Logger) Option {
	return func(s *Shell) { s.logger = l }
}

// WithFormat sets the history listing format, "text" or "yaml".
func WithFormat(format string) Option {
	return func(s *Shell) { s.format = format }
}

// WithPrompt sets the line printed before each line is read. An empty prompt
// prints nothing.
func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

// New creates a shell reading from in and writing to out. Evaluations are
// cached in and recorded to h.
func New(in io.Reader, out io.Writer, h *calculator.History, opts ...Option) *Shell {
	s := &Shell{
		in:      bufio.NewScanner(in),
		out:     out,
		history: h,
		logger:  zap.NewNop(),
		format:  "text",
	}
	s.in.Buffer(make([]byte, 0, 4096), MaxLine)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and executes lines until the exit command, the end of the input,
// or the context is done. A line longer than MaxLine ends the session with
// bufio.ErrTooLong.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprintln(s.out, s.prompt)
		}
		if !s.in.Scan() {
			return s.in.Err()
		}
		quit, err := s.Exec(ctx, s.in.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Exec executes one line of input. The result is true if the line is the
// exit command. Errors in expressions are reported to the output; the
// returned error is only for failures to produce output.
func (s *Shell) Exec(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if c, ok := lookupCommand(line); ok {
		s.logger.Debug("command", zap.String("command", c.word))
		switch c {
		case cmdExit:
			return true, nil
		case cmdHelp:
			writeHelp(s.out)
		case cmdHistory:
			return false, writeHistory(s.out, c.header, s.format, s.history.All())
		case cmdUnique:
			return false, writeHistory(s.out, c.header, s.format, s.history.Unique())
		case cmdOperators:
			writeOperators(s.out)
		}
		return false, nil
	}
	if !looksLikeExpression(line) {
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' to see the commands.\n", line)
		return false, nil
	}
	r, err := s.Evaluate(ctx, line)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false, nil
	}
	fmt.Fprintf(s.out, "Evaluated value is %s\n", r)
	return false, nil
}

// Evaluate evaluates an expression, reusing the recorded result if the
// expression is already in the history, and records the evaluation.
func (s *Shell) Evaluate(ctx context.Context, expr string) (string, error) {
	key := strings.TrimSpace(expr)
	r, cached := s.history.Lookup(key)
	if !cached {
		var err error
		r, err = calculator.EvalString(key)
		if err != nil {
			s.logger.Info("evaluation failed", zap.String("expression", key), zap.Error(err))
			return "", err
		}
	}
	s.logger.Debug("evaluated",
		zap.String("expression", key),
		zap.String("result", r),
		zap.Bool("cached", cached),
	)
	s.history.Record(key, r)
	if s.journal != nil {
		if err := s.journal.Append(ctx, key, r); err != nil {
			// The in-memory history still has the evaluation.
			s.logger.Warn("failed to journal evaluation", zap.String("expression", key), zap.Error(err))
		}
	}
	return r, nil
}

// looksLikeExpression reports whether a line that is not a command should be
// evaluated rather than reported as an unknown command.
func looksLikeExpression(line string) bool {
	if oppat.MatchString(line) {
		return true
	}
	return strings.ContainsAny(line, "0123456789.()")
}
