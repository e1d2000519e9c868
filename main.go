package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sergev/arith/config"
	"github.com/sergev/arith/diag"
	"github.com/sergev/arith/runtime"
)

// errReported marks a failure whose diagnostic was already printed.
var errReported = errors.New("diagnostic reported")

type options struct {
	configPath string
	sourceName string
	logLevel   string
	noColor    bool
}

type app struct {
	cfg    config.Config
	runner *runtime.Runner
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	errFmt *color.Color
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "arith: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	a := &app{}

	root := &cobra.Command{
		Use:   "arith [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Arith evaluates arithmetic expressions over integers and floats with
+ - * / ^, unary signs and parentheses.

With arguments, the joined arguments are evaluated once; put "--" before an
expression that starts with '-'. Without arguments, an interactive prompt
reads one expression per line.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				if !a.evalAndPrint(strings.Join(args, " ")) {
					return errReported
				}
				return nil
			}
			return a.runREPL()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file (YAML)")
	flags.StringVar(&opts.sourceName, "name", "", "source name shown in diagnostics")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		&cobra.Command{
			Use:   "run FILE",
			Short: "Evaluate every line of a file, or of stdin when FILE is -",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runFile(args[0])
			},
		},
		&cobra.Command{
			Use:   "tokens EXPRESSION...",
			Short: "Print the token stream of an expression",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tokens, err := a.runner.Tokens(a.cfg.SourceName, strings.Join(args, " "))
				if err != nil {
					a.report(err)
					return errReported
				}
				fmt.Fprintln(a.stdout, tokens)
				return nil
			},
		},
		&cobra.Command{
			Use:   "ast EXPRESSION...",
			Short: "Print the syntax tree of an expression",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				node, err := a.runner.Tree(a.cfg.SourceName, strings.Join(args, " "))
				if err != nil {
					a.report(err)
					return errReported
				}
				fmt.Fprintln(a.stdout, node)
				return nil
			},
		},
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.sourceName != "" {
		cfg.SourceName = opts.sourceName
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.noColor {
		cfg.Color = false
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.stdin = cmd.InOrStdin()
	a.stdout = cmd.OutOrStdout()
	a.stderr = cmd.ErrOrStderr()
	a.runner = runtime.NewRunner(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})))
	a.errFmt = color.New(color.FgRed)
	if !cfg.Color {
		a.errFmt.DisableColor()
	}
	return nil
}

// evalAndPrint evaluates src, printing the value to stdout or the
// diagnostic to stderr. It reports whether evaluation succeeded.
func (a *app) evalAndPrint(src string) bool {
	val, err := a.runner.Run(a.cfg.SourceName, src)
	if err != nil {
		a.report(err)
		return false
	}
	fmt.Fprintln(a.stdout, val)
	return true
}

func (a *app) report(err error) {
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		a.errFmt.Fprintln(a.stderr, d.Render())
		return
	}
	fmt.Fprintf(a.stderr, "error: %v\n", err)
}

func (a *app) runFile(path string) error {
	var results []runtime.Result
	var err error
	if path == "-" {
		path = a.cfg.SourceName
		results, err = runtime.EvaluateReader(a.stdin, path, a.runner)
	} else {
		results, err = runtime.EvaluateFile(path, a.runner)
	}
	if err != nil {
		return err
	}
	failed := false
	for _, res := range results {
		if res.Err != nil {
			failed = true
			fmt.Fprintf(a.stderr, "%s:%d:\n", path, res.Line)
			a.report(res.Err)
			continue
		}
		fmt.Fprintf(a.stdout, "%s:%d: %s\n", path, res.Line, res.Value)
	}
	if failed {
		return errReported
	}
	return nil
}
