package diag

import (
	"strings"
	"testing"
)

// spanAt returns the span [from, to) of text, both given as byte offsets on
// ASCII input.
func spanAt(name, text string, from, to int) Span {
	pos := Start(name, text)
	var start Position
	for i := 0; i <= to; i++ {
		if i == from {
			start = pos
		}
		if i == to {
			break
		}
		r := EOF
		if i < len(text) {
			r = rune(text[i])
		}
		pos = pos.Advance(r)
	}
	return Span{Start: start, End: pos}
}

func TestExcerptSingleLine(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		from, to int
		want     string
	}{
		{"first char", "5/0", 0, 1, "5/0\n^"},
		{"last char", "5/0", 2, 3, "5/0\n  ^"},
		{"wide span", "2+345*6", 2, 5, "2+345*6\n  ^^^"},
		{"zero width", "2+", 2, 2, "2+\n  ^"},
		{"empty text", "", 0, 0, "\n^"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			span := spanAt("<t>", tc.text, tc.from, tc.to)
			if got := Excerpt(tc.text, span.Start, span.End); got != tc.want {
				t.Fatalf("Excerpt => %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExcerptCaretWidthProperty(t *testing.T) {
	text := "12 + 345 * (6 - 7)"
	for from := 0; from <= len(text); from++ {
		for to := from; to <= len(text); to++ {
			span := spanAt("<t>", text, from, to)
			lines := strings.Split(Excerpt(text, span.Start, span.End), "\n")
			if len(lines) != 2 {
				t.Fatalf("[%d,%d): expected 2 lines, got %d", from, to, len(lines))
			}
			carets := lines[1]
			lead := len(carets) - len(strings.TrimLeft(carets, " "))
			width := to - from
			if width < 1 {
				width = 1
			}
			if lead != from || strings.Count(carets, "^") != width {
				t.Fatalf("[%d,%d): caret line %q", from, to, carets)
			}
		}
	}
}

func TestExcerptSelectsLineAndStripsTabs(t *testing.T) {
	text := "1+1\n\t2*x\n3"
	span := spanAt("<t>", text, 7, 8)
	if span.Start.Line != 1 || span.Start.Column != 3 {
		t.Fatalf("unexpected start %+v", span.Start)
	}
	want := "2*x\n  ^"
	if got := Excerpt(text, span.Start, span.End); got != want {
		t.Fatalf("Excerpt => %q, want %q", got, want)
	}
}

func TestExcerptMultiLine(t *testing.T) {
	text := "12+\n345"
	span := spanAt("<t>", text, 1, 6)
	want := "12+\n ^\n345\n^^"
	if got := Excerpt(text, span.Start, span.End); got != want {
		t.Fatalf("Excerpt => %q, want %q", got, want)
	}
}

func TestExcerptWideRunes(t *testing.T) {
	text := "世界+@"
	start := Start("<t>", text)
	for _, r := range "世界+" {
		start = start.Advance(r)
	}
	end := start.Advance('@')
	if got, want := Excerpt(text, start, end), "世界+@\n     ^"; got != want {
		t.Fatalf("Excerpt => %q, want %q", got, want)
	}
}

func TestRenderSyntaxDiagnostic(t *testing.T) {
	text := "2+@"
	d := NewIllegalCharacter(spanAt("calc", text, 2, 3), "'%c'", '@')
	want := "Illegal Character: '@'\nFile calc, line 1\n\n2+@\n  ^"
	if got := d.Render(); got != want {
		t.Fatalf("Render => %q, want %q", got, want)
	}
	if got := d.Error(); got != "Illegal Character: '@'" {
		t.Fatalf("Error => %q", got)
	}
}

func TestRenderRuntimeDiagnostic(t *testing.T) {
	text := "5/0"
	d := NewRuntimeError(spanAt("<stdin>", text, 2, 3), NewProgramContext(), "Division by Zero")
	want := "Traceback (most recent call last):\n" +
		"  File <stdin>, line 1, in <program>\n" +
		"Runtime Error: Division by Zero\n\n" +
		"5/0\n  ^"
	if got := d.Render(); got != want {
		t.Fatalf("Render => %q, want %q", got, want)
	}
}

func TestTracebackOrdersOutermostFirst(t *testing.T) {
	text := "1\n2\n3"
	root := NewProgramContext()
	entry := spanAt("main", text, 2, 3).Start
	inner := NewContext("helper", root, &entry)
	if inner.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", inner.Depth())
	}

	fault := spanAt("main", text, 4, 5)
	d := NewRuntimeError(fault, inner, "Division by Zero")
	got := d.Render()
	want := "Traceback (most recent call last):\n" +
		"  File main, line 2, in <program>\n" +
		"  File main, line 3, in helper\n" +
		"Runtime Error: Division by Zero"
	if !strings.HasPrefix(got, want) {
		t.Fatalf("Render => %q, want prefix %q", got, want)
	}
}

func TestKindString(t *testing.T) {
	if IllegalSyntax.String() != "Illegal Syntax" || Kind(42).String() != "Error" {
		t.Fatalf("unexpected kind names %q %q", IllegalSyntax, Kind(42))
	}
	var d *Diagnostic
	if d.Error() != "" || d.Render() != "" {
		t.Fatalf("nil diagnostic should render empty")
	}
}
