package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/journal"
	"github.com/zephyrtronium/calculator/internal/shell"
)

// flags holds command-line overrides of the environment configuration.
type flags struct {
	db       string
	logLevel string
	format   string
	prompt   string
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: "Evaluate arithmetic expressions with + - * / ^ and parentheses.\n\n" +
			"With arguments, each argument is evaluated and its result printed.\n" +
			"Without arguments, expressions are read interactively; type 'help'\n" +
			"for the commands.\n\n" +
			"Flags must come before the first expression. Use -- to end the flags\n" +
			"when the first expression begins with a sign, e.g. calc -- -2+3.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return wrapExitError(exitCommandError, "configuration", err)
			}
			return run(cmd.Context(), cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	// Everything after the first expression is an expression, even "-0".
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&f.db, "db", "", "history journal database (overrides CALC_HISTORY_DB)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides CALC_LOG_LEVEL)")
	cmd.Flags().StringVar(&f.format, "format", "", "history format: text, yaml (overrides CALC_FORMAT)")
	cmd.Flags().StringVar(&f.prompt, "prompt", "", "interactive prompt (overrides CALC_PROMPT)")

	return cmd
}

// loadConfig loads the environment configuration and applies flags that were
// set explicitly.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("db") {
		cfg.HistoryDB = f.db
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = f.format
	}
	if cmd.Flags().Changed("prompt") {
		cfg.Prompt = f.prompt
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out, errOut io.Writer) error {
	logger, err := initLogger(cfg.LogLevel, errOut)
	if err != nil {
		return wrapExitError(exitCommandError, "initialize logger", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration loaded", zap.String("config", cfg.String()))

	h := &calculator.History{}
	opts := []shell.Option{
		shell.WithLogger(logger),
		shell.WithFormat(cfg.Format),
		shell.WithPrompt(cfg.Prompt),
	}
	if cfg.HistoryDB != "" {
		j, err := journal.Open(cfg.HistoryDB)
		if err != nil {
			return wrapExitError(exitCommandError, "open history journal", err)
		}
		defer j.Close()
		n, err := j.Replay(ctx, h)
		if err != nil {
			return wrapExitError(exitCommandError, "load history journal", err)
		}
		logger.Info("history journal opened",
			zap.String("path", cfg.HistoryDB),
			zap.String("session", j.Session()),
			zap.Int("evaluations", n),
		)
		opts = append(opts, shell.WithJournal(j))
	}

	s := shell.New(in, out, h, opts...)
	if len(args) > 0 {
		return evalArgs(ctx, s, args, out)
	}
	if err := s.Run(ctx); err != nil {
		return wrapExitError(exitCommandError, "read input", err)
	}
	return nil
}

// evalArgs evaluates each argument and prints one result per line.
func evalArgs(ctx context.Context, s *shell.Shell, args []string, out io.Writer) error {
	var failed error
	for _, arg := range args {
		r, err := s.Evaluate(ctx, arg)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", arg, err)
			if failed == nil {
				failed = wrapExitError(exitFailure, "evaluate "+arg, err)
			}
			continue
		}
		fmt.Fprintln(out, r)
	}
	return failed
}

// initLogger initializes a JSON zap logger writing to w.
func initLogger(level string, w io.Writer) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(zapLevel),
	)
	return zap.New(core), nil
}
