package parser

import (
	"errors"
	"strings"

	"github.com/sergev/arith/diag"
)

// IsIncomplete reports whether err is a syntax error raised at the end of
// non-blank input, i.e. more text could still complete the expression.
func IsIncomplete(err error) bool {
	var d *diag.Diagnostic
	if !errors.As(err, &d) || d.Kind != diag.IllegalSyntax {
		return false
	}
	text := d.Start.SourceText
	if strings.TrimSpace(text) == "" {
		return false
	}
	return d.Start.Offset >= len(text)
}
