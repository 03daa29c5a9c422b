package format

import "strings"

// Lines is the output buffer every render call returns. It always holds at
// least one line, which may be empty.
type Lines struct {
	lines []string
}

// NewLines returns a buffer holding the given lines, or a single empty line
// when none are given.
func NewLines(text ...string) *Lines {
	if len(text) == 0 {
		return &Lines{lines: []string{""}}
	}

	return &Lines{lines: append([]string(nil), text...)}
}

// AppendToLast concatenates text onto the last line.
func (l *Lines) AppendToLast(text string) *Lines {
	l.lines[len(l.lines)-1] += text
	return l
}

// AddLine starts a new line holding text.
func (l *Lines) AddLine(text string) *Lines {
	l.lines = append(l.lines, text)
	return l
}

// Merge joins the first line of other onto the last line of l and appends the
// remaining lines of other unchanged.
func (l *Lines) Merge(other *Lines) *Lines {
	l.AppendToLast(other.lines[0])
	l.lines = append(l.lines, other.lines[1:]...)
	return l
}

// Append adds every line of other as new lines of l.
func (l *Lines) Append(other *Lines) *Lines {
	l.lines = append(l.lines, other.lines...)
	return l
}

// Indent returns a copy of l with every line prefixed by unit repeated levels
// times. Empty lines stay empty.
func (l *Lines) Indent(unit string, levels int) *Lines {
	prefix := strings.Repeat(unit, levels)
	out := make([]string, len(l.lines))
	for i, line := range l.lines {
		if line == "" {
			continue
		}
		out[i] = prefix + line
	}

	return &Lines{lines: out}
}

// IsMultiLine reports whether l holds more than one line.
func (l *Lines) IsMultiLine() bool {
	return len(l.lines) > 1
}

// First returns the first line.
func (l *Lines) First() string {
	return l.lines[0]
}

// Slice returns a copy of the lines.
func (l *Lines) Slice() []string {
	return append([]string(nil), l.lines...)
}

func (l *Lines) String() string {
	return strings.Join(l.lines, "\n")
}
