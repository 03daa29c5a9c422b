package format

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/jeannemas/tsql-formatter/pkg/parser"
)

// FormatterOptions controls formatting behavior
type FormatterOptions struct {
	// Indent is the indentation unit, repeated once per nesting level
	Indent string
	// IdentifierStyle selects the delimiters put around identifiers
	IdentifierStyle IdentifierStyle
	// KeywordCase selects upper or lower case keywords
	KeywordCase KeywordCase
	// LinesBetweenStatements is the number of blank lines between two statements
	LinesBetweenStatements int
	// OperatorSpacing selects whether comparison and arithmetic operators are padded
	OperatorSpacing OperatorSpacing
}

// Defaults are the standard formatting options: tab indentation, bracketed
// identifiers, upper case keywords, one blank line between statements and
// spaces around operators.
var Defaults = FormatterOptions{
	Indent:                 "\t",
	IdentifierStyle:        IdentifierStyleSquareBrackets,
	KeywordCase:            KeywordCaseUpper,
	LinesBetweenStatements: 1,
	OperatorSpacing:        OperatorSpacingSpaceAround,
}

// Formatter renders parsed scripts with a fixed set of options. It holds no
// mutable state and is safe for concurrent use.
type Formatter struct {
	options FormatterOptions
}

// New creates a new Formatter with the specified options
func New(options FormatterOptions) *Formatter {
	options.LinesBetweenStatements = max(options.LinesBetweenStatements, 0)
	return &Formatter{options: options}
}

// Options returns the options f was created with.
func (f *Formatter) Options() FormatterOptions {
	return f.options
}

// Format writes the formatted script to w.
func (f *Formatter) Format(w io.Writer, script *parser.Script) error {
	_, err := io.WriteString(w, f.Script(script))
	return errors.Wrap(err, "failed to write SQL")
}

// Script renders every statement of every batch, in order. Each statement is
// terminated with a semicolon and followed by the configured number of blank
// lines when another statement comes after it.
func (f *Formatter) Script(script *parser.Script) string {
	if script == nil {
		return ""
	}

	var out *Lines
	for _, stmt := range script.Statements() {
		lines := f.terminated(stmt)

		if out == nil {
			out = lines
			continue
		}

		for range f.options.LinesBetweenStatements {
			out.AddLine("")
		}
		out.Append(lines)
	}

	if out == nil {
		return ""
	}

	return out.String()
}

// terminated renders stmt followed by its semicolon, with the comments written
// around it. The semicolon goes on a line of its own after a -- comment.
func (f *Formatter) terminated(stmt *parser.Statement) *Lines {
	lines := f.Statement(stmt)
	if stmt.EndsInLineComment() {
		lines.AddLine(";")
	} else {
		lines.AppendToLast(";")
	}

	if stmt.Leading != "" {
		lines = sourceLines(stmt.Leading).Append(lines)
	}
	if stmt.After != "" {
		lines.Append(sourceLines(stmt.After))
	}

	return lines
}

// Statement renders a single statement without its terminator or the comments
// around it. Statements the parser did not recognise as queries are reproduced
// from source.
func (f *Formatter) Statement(stmt *parser.Statement) *Lines {
	r := &renderer{Formatter: f, stmt: stmt}

	switch {
	case stmt.Select != nil:
		return r.selectStatement(stmt.Select)
	default:
		slog.Debug("Unrendered statement", "kind", "statement", "text", stmt.Source)
		return sourceLines(stmt.Source)
	}
}

// Format formats script with the given options and writes it to w.
//
// Example usage:
//
//	script, err := parser.ParseString("select id from users where active = 1")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var buf bytes.Buffer
//	if err := format.Format(&buf, format.Defaults, script); err != nil {
//		log.Fatal(err)
//	}
func Format(w io.Writer, options FormatterOptions, script *parser.Script) error {
	return New(options).Format(w, script)
}

// FormatString parses sql and returns it formatted with the given options.
func FormatString(sql string, options FormatterOptions) (string, error) {
	script, err := parser.ParseString(sql)
	if err != nil {
		return "", err
	}

	return New(options).Script(script), nil
}

// renderer renders the nodes of a single statement. The statement is needed to
// recover the source text of nodes that have no rendering of their own.
type renderer struct {
	*Formatter
	stmt *parser.Statement
}

// fallback reproduces a node from its source text.
func (r *renderer) fallback(kind string, tokens []lexer.Token) *Lines {
	text := r.stmt.Text(tokens)
	slog.Debug("Unrendered node", "kind", kind, "text", text)

	return sourceLines(text)
}

// block puts child on its own lines, indented one level and wrapped in
// parentheses. The opening parenthesis is appended to the last line of l.
func (r *renderer) block(l, child *Lines) *Lines {
	l.AppendToLast("(")
	l.Append(child.Indent(r.options.Indent, 1))
	return l.AddLine(")")
}

// embed merges child into l inline when it is a single line and as a block
// otherwise.
func (r *renderer) embed(l, child *Lines) *Lines {
	if child.IsMultiLine() {
		return r.block(l, child)
	}

	return l.AppendToLast(child.First())
}

// clause renders a clause keyword on its own line with body indented below it.
func (r *renderer) clause(kw string, body *Lines) *Lines {
	return NewLines(r.keyword(kw)).Append(body.Indent(r.options.Indent, 1))
}

// commaSeparated stacks items, one or more lines each, with a comma after every
// item but the last.
func commaSeparated(items []*Lines) *Lines {
	out := NewLines(items[0].Slice()...)
	for _, item := range items[1:] {
		out.AppendToLast(",")
		out.Append(item)
	}

	return out
}

// inlineList joins single line items with ", ". It reports false when any item
// spans several lines.
func inlineList(items []*Lines) (string, bool) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsMultiLine() {
			return "", false
		}
		parts = append(parts, item.First())
	}

	return strings.Join(parts, ", "), true
}

func sourceLines(text string) *Lines {
	return NewLines(strings.Split(text, "\n")...)
}
