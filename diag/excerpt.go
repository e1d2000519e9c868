package diag

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Excerpt renders the source lines covered by [start, end) with a caret line
// under each one. Tabs are removed from the result.
func Excerpt(text string, start, end Position) string {
	lineStart := 0
	if off := clamp(start.Offset, 0, len(text)); off > 0 {
		lineStart = strings.LastIndexByte(text[:off], '\n') + 1
	}

	count := end.Line - start.Line + 1
	if count < 1 {
		count = 1
	}

	var b strings.Builder
	for i := 0; i < count; i++ {
		lineEnd := len(text)
		if idx := strings.IndexByte(text[lineStart:], '\n'); idx >= 0 {
			lineEnd = lineStart + idx
		}
		line := []rune(text[lineStart:lineEnd])

		colStart := 0
		if i == 0 {
			colStart = start.Column
		}
		colEnd := len(line) - 1
		if i == count-1 {
			colEnd = end.Column
		}

		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
		b.WriteByte('\n')
		b.WriteString(caretLine(line, colStart, colEnd))

		lineStart = lineEnd
		if lineStart < len(text) {
			lineStart++
		}
	}
	return strings.ReplaceAll(b.String(), "\t", "")
}

// caretLine pads to the display width of line[:from] and underlines
// line[from:to], always emitting at least one caret.
func caretLine(line []rune, from, to int) string {
	from = clamp(from, 0, len(line))
	pad := runewidth.StringWidth(string(line[:from]))
	width := 0
	if to > from {
		width = runewidth.StringWidth(string(line[from:clamp(to, from, len(line))]))
		// columns past the end of the line still get one caret each
		if to > len(line) {
			width += to - len(line)
		}
	}
	if width < 1 {
		width = 1
	}
	return strings.Repeat(" ", pad) + strings.Repeat("^", width)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
