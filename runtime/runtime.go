package runtime

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sergev/arith/diag"
	"github.com/sergev/arith/lang"
	"github.com/sergev/arith/parser"
)

// Run evaluates one expression. Exactly one of the results is meaningful:
// the Number when err is nil, otherwise a *diag.Diagnostic describing the
// first fault.
func Run(sourceName, text string) (lang.Number, error) {
	return NewRunner(nil).Run(sourceName, text)
}

// Runner evaluates expressions and logs the intermediate stages.
type Runner struct {
	log *slog.Logger
}

// NewRunner returns a runner logging to log; nil discards output.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{log: log}
}

// Tokens runs the lexer only.
func (r *Runner) Tokens(sourceName, text string) ([]parser.Token, error) {
	tokens, err := parser.Tokenize(sourceName, text)
	if err != nil {
		return nil, err
	}
	if r.log.Enabled(context.Background(), slog.LevelDebug) {
		r.log.Debug("tokens", "source", sourceName, "tokens", fmt.Sprint(tokens))
	}
	return tokens, nil
}

// Tree runs the lexer and parser.
func (r *Runner) Tree(sourceName, text string) (parser.Node, error) {
	tokens, err := r.Tokens(sourceName, text)
	if err != nil {
		return nil, err
	}
	node, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	r.log.Debug("tree", "source", sourceName, "ast", node.String())
	return node, nil
}

// Run evaluates text in a fresh <program> context.
func (r *Runner) Run(sourceName, text string) (lang.Number, error) {
	node, err := r.Tree(sourceName, text)
	if err != nil {
		return lang.Number{}, err
	}
	ev := lang.NewEvaluator(r.log)
	return ev.Eval(node, diag.NewProgramContext())
}

// Result is the outcome of evaluating one line of a script.
type Result struct {
	Line  int // one-based line number in the script
	Text  string
	Value lang.Number
	Err   error
}

// EvaluateReader evaluates every non-blank line of r as its own expression.
// Lines starting with '#' are comments. The returned error reports I/O
// failures only; per-line diagnostics are stored in the results.
func EvaluateReader(r io.Reader, sourceName string, runner *Runner) ([]Result, error) {
	if runner == nil {
		runner = NewRunner(nil)
	}
	var results []Result
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		val, err := runner.Run(sourceName, text)
		results = append(results, Result{
			Line:  lineNo,
			Text:  text,
			Value: val,
			Err:   err,
		})
	}
	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("read %s: %w", sourceName, err)
	}
	return results, nil
}

func readFileSkippingShebang(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, []byte("#!")) {
		if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
			// keep the newline so line numbers stay aligned
			return data[idx:], nil
		}
		return []byte{}, nil
	}
	return data, nil
}

// EvaluateFile evaluates each line of the file at path, allowing a #! line.
func EvaluateFile(path string, runner *Runner) ([]Result, error) {
	data, err := readFileSkippingShebang(path)
	if err != nil {
		return nil, err
	}
	return EvaluateReader(bytes.NewReader(data), path, runner)
}
