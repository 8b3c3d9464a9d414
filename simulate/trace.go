// Package simulate - the append-only trace sink.
package simulate

import (
	"fmt"
	"strings"
)

// Trace is the ordered, append-only log a simulation writes every random
// choice, send, receive, state transition, and final verdict to. It is the
// engine's only output channel besides the returned result value.
//
// A nil *Trace is valid and discards everything, so callers that only want
// the result can pass nil.
type Trace struct {
	lines []string
}

// NewTrace returns an empty trace.
func NewTrace() *Trace { return &Trace{} }

// Printf appends one formatted line.
func (t *Trace) Printf(format string, args ...any) {
	if t == nil {
		return
	}
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

// Blank appends an empty line, used to set verdict blocks apart.
func (t *Trace) Blank() {
	if t == nil {
		return
	}
	t.lines = append(t.lines, "")
}

// Lines returns a copy of the trace so far.
func (t *Trace) Lines() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.lines))
	copy(out, t.lines)

	return out
}

// Len returns the number of lines appended so far.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.lines)
}

// String joins the trace with newlines.
func (t *Trace) String() string {
	if t == nil {
		return ""
	}

	return strings.Join(t.lines, "\n")
}
