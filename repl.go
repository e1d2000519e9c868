package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/sergev/arith/parser"
)

func (a *app) runREPL() error {
	if !a.isInteractive() {
		return a.runBufferedREPL(bufio.NewReader(a.stdin))
	}
	a.runInteractiveREPL()
	return nil
}

// isInteractive reports whether input comes from a terminal.
func (a *app) isInteractive() bool {
	f, ok := a.stdin.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// evalBuffered evaluates src unless it is an unfinished expression worth
// continuing on the next line. It reports whether src was consumed.
func (a *app) evalBuffered(src string, final bool) bool {
	if strings.TrimSpace(src) == "" {
		return true
	}
	if !final {
		if _, err := parser.ParseString(a.cfg.SourceName, src); parser.IsIncomplete(err) {
			return false
		}
	}
	a.evalAndPrint(src)
	return true
}

func (a *app) runBufferedREPL(reader *bufio.Reader) error {
	var buffer strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read error: %w", err)
		}
		atEOF := errors.Is(err, io.EOF)
		line = strings.TrimRight(line, "\r\n")
		if buffer.Len() > 0 && line != "" {
			buffer.WriteByte(' ')
		}
		buffer.WriteString(line)

		if a.evalBuffered(buffer.String(), atEOF) {
			buffer.Reset()
		}
		if atEOF {
			return nil
		}
	}
}

func (a *app) runInteractiveREPL() {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	historyPath := a.cfg.HistoryFile
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				state.WriteHistory(f)
				f.Close()
			}
		}()
	}

	var buffer strings.Builder

	for {
		prompt := a.cfg.Prompt
		if buffer.Len() > 0 {
			prompt = a.cfg.ContinuationPrompt
		}
		input, err := state.Prompt(prompt)
		if err != nil {
			switch {
			case errors.Is(err, liner.ErrPromptAborted):
				fmt.Fprintln(a.stdout)
				buffer.Reset()
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(a.stdout)
				return
			default:
				fmt.Fprintf(a.stderr, "read error: %v\n", err)
				return
			}
		}
		if buffer.Len() > 0 {
			buffer.WriteByte(' ')
		}
		buffer.WriteString(input)

		src := buffer.String()
		if !a.evalBuffered(src, false) {
			continue
		}
		buffer.Reset()
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			state.AppendHistory(trimmed)
		}
	}
}
