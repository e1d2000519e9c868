package diag

import (
	"fmt"
	"unicode/utf8"
)

// EOF is passed to Advance when the cursor steps past the last character.
const EOF rune = -1

// Position tracks a location within one source text.
type Position struct {
	Offset     int // zero-based byte offset into SourceText
	Line       int // zero-based line number
	Column     int // zero-based column (rune count)
	SourceName string
	SourceText string
}

// Start returns the position of the first character of text.
func Start(name, text string) Position {
	return Position{
		SourceName: name,
		SourceText: text,
	}
}

// Advance returns the position following the character r, which must be the
// character at p (or EOF). Stepping over a newline moves to the start of the
// next line.
func (p Position) Advance(r rune) Position {
	w := 1
	if r != EOF && p.Offset < len(p.SourceText) {
		_, w = utf8.DecodeRuneInString(p.SourceText[p.Offset:])
	}
	p.Offset += w
	p.Column++
	if r == '\n' {
		p.Line++
		p.Column = 0
	}
	return p
}

// AtEnd reports whether the position is at or past the end of the text.
func (p Position) AtEnd() bool {
	return p.Offset >= len(p.SourceText)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.SourceName, p.Line+1, p.Column+1)
}

// Span is a half-open [Start, End) range of source.
type Span struct {
	Start Position
	End   Position
}

// Join returns the span from the start of a to the end of b.
func Join(a, b Span) Span {
	return Span{Start: a.Start, End: b.End}
}

// Text returns the source covered by the span.
func (s Span) Text() string {
	text := s.Start.SourceText
	lo, hi := s.Start.Offset, s.End.Offset
	if lo > len(text) {
		lo = len(text)
	}
	if hi > len(text) {
		hi = len(text)
	}
	if hi < lo {
		return ""
	}
	return text[lo:hi]
}
