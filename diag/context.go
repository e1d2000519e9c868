package diag

import (
	"fmt"
	"strings"
)

// ProgramName names the root evaluation context.
const ProgramName = "<program>"

// Context is one frame of the evaluation chain used to build tracebacks.
type Context struct {
	Name   string
	Parent *Context
	Entry  *Position // where the parent entered this frame; nil for the root
}

// NewContext creates a context with an optional parent and entry position.
func NewContext(name string, parent *Context, entry *Position) *Context {
	return &Context{
		Name:   name,
		Parent: parent,
		Entry:  entry,
	}
}

// NewProgramContext returns a fresh root context.
func NewProgramContext() *Context {
	return NewContext(ProgramName, nil, nil)
}

// Depth returns the number of frames from c to the root, inclusive.
func (c *Context) Depth() int {
	n := 0
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		n++
	}
	return n
}

// Traceback renders the frame lines for a fault at pos, outermost frame first.
func (c *Context) Traceback(pos Position) string {
	frames := make([]string, 0, c.Depth())
	ctx := c
	for ctx != nil {
		frames = append(frames, fmt.Sprintf("  File %s, line %d, in %s\n", pos.SourceName, pos.Line+1, ctx.Name))
		if ctx.Entry != nil {
			pos = *ctx.Entry
		}
		ctx = ctx.Parent
	}

	var b strings.Builder
	b.WriteString("Traceback (most recent call last):\n")
	for i := len(frames) - 1; i >= 0; i-- {
		b.WriteString(frames[i])
	}
	return b.String()
}
