package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// commentTracker hands the comments of a script out to its statements while the
// statements are built in order. Comments written before a statement, including
// those separated from it by semicolons or GO, become its Leading text.
// Comments inside or right after a statement body stay in its Source. Comments
// after the last statement become its After text.
type commentTracker struct {
	source string
	tokens []lexer.Token

	// index maps the offset of every grammar token to its position in tokens
	index map[int]int

	// next is the position of the first token not yet handed out
	next int
	last *Statement
}

func newCommentTracker(source string) (*commentTracker, error) {
	tokens, err := lexAll(source)
	if err != nil {
		return nil, err
	}

	t := &commentTracker{source: source, tokens: tokens, index: make(map[int]int)}
	for i, tok := range tokens {
		if !elided(tok) {
			t.index[tok.Pos.Offset] = i
		}
	}

	return t, nil
}

// statement builds the statement whose body was parsed from body.
func (t *commentTracker) statement(body []lexer.Token) *Statement {
	first, last := -1, -1
	for _, tok := range body {
		if elided(tok) {
			continue
		}
		if first < 0 {
			first = t.index[tok.Pos.Offset]
		}
		last = t.index[tok.Pos.Offset]
	}

	end := last + 1
	for end < len(t.tokens) && elided(t.tokens[end]) {
		end++
	}

	stmt := &Statement{
		Leading: t.comments(t.next, first),
		Source:  t.text(first, end),
	}

	commented := false
	for i := first; i < end; i++ {
		commented = commented || isComment(t.tokens[i])
	}

	for i := end - 1; i > last; i-- {
		if t.tokens[i].Type != whitespaceType {
			stmt.lineComment = t.tokens[i].Type == lineCommentType
			break
		}
	}

	if commented {
		logVerbatim(stmt, "statement holds comments")
	} else {
		stmt.parseSelect()
	}

	t.next = end
	t.last = stmt
	return stmt
}

// finish attaches the comments left after the last statement.
func (t *commentTracker) finish() {
	if t.last != nil {
		t.last.After = t.comments(t.next, len(t.tokens)-1)
	}
}

// comments returns the comments between tokens[from] and tokens[to]. Runs of
// comments split by semicolons or GO are put on separate lines.
func (t *commentTracker) comments(from, to int) string {
	var runs []string

	start := from
	for i := from; i <= to; i++ {
		if i < to && elided(t.tokens[i]) {
			continue
		}
		if text := t.text(start, i); text != "" {
			runs = append(runs, text)
		}
		start = i + 1
	}

	return strings.Join(runs, "\n")
}

// text returns the trimmed source from the start of tokens[from] up to the
// start of tokens[to].
func (t *commentTracker) text(from, to int) string {
	if from >= to {
		return ""
	}

	return strings.TrimSpace(t.source[t.tokens[from].Pos.Offset:t.tokens[to].Pos.Offset])
}
