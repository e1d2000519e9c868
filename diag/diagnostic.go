package diag

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic by the pipeline stage that raised it.
type Kind int

const (
	IllegalCharacter Kind = iota
	IllegalSyntax
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case IllegalCharacter:
		return "Illegal Character"
	case IllegalSyntax:
		return "Illegal Syntax"
	case RuntimeError:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// Diagnostic is a user-facing error anchored to a span of source.
type Diagnostic struct {
	Kind    Kind
	Message string
	Start   Position
	End     Position
	Context *Context // set for runtime errors only
}

// NewIllegalCharacter reports a character the lexer cannot start a token with.
func NewIllegalCharacter(span Span, format string, args ...interface{}) *Diagnostic {
	return newDiagnostic(IllegalCharacter, span, nil, format, args...)
}

// NewIllegalSyntax reports a token the parser did not expect.
func NewIllegalSyntax(span Span, format string, args ...interface{}) *Diagnostic {
	return newDiagnostic(IllegalSyntax, span, nil, format, args...)
}

// NewRuntimeError reports an evaluation fault inside ctx.
func NewRuntimeError(span Span, ctx *Context, format string, args ...interface{}) *Diagnostic {
	return newDiagnostic(RuntimeError, span, ctx, format, args...)
}

func newDiagnostic(kind Kind, span Span, ctx *Context, format string, args ...interface{}) *Diagnostic {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Diagnostic{
		Kind:    kind,
		Message: msg,
		Start:   span.Start,
		End:     span.End,
		Context: ctx,
	}
}

// Span returns the source range the diagnostic points at.
func (d *Diagnostic) Span() Span {
	return Span{Start: d.Start, End: d.End}
}

func (d *Diagnostic) Error() string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Render formats the diagnostic with its source excerpt, prefixed by a
// traceback for runtime errors.
func (d *Diagnostic) Render() string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	if d.Kind == RuntimeError {
		b.WriteString(d.Context.Traceback(d.Start))
		fmt.Fprintf(&b, "%s: %s", d.Kind, d.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", d.Kind, d.Message)
		fmt.Fprintf(&b, "File %s, line %d", d.Start.SourceName, d.Start.Line+1)
	}
	b.WriteString("\n\n")
	b.WriteString(Excerpt(d.Start.SourceText, d.Start, d.End))
	return b.String()
}
