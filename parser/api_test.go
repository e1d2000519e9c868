package parser

import "testing"

func TestParseStringPropagatesLexerErrors(t *testing.T) {
	_, err := ParseString("<t>", "1 + $")
	d := mustDiagnostic(t, err)
	if d.Error() != "Illegal Character: '$'" {
		t.Fatalf("expected lexer diagnostic, got %v", d)
	}
}
