package parser

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// lookahead is large enough that a failed alternative always backtracks, which
// gives the grammar ordered-choice semantics.
const lookahead = 1024

var (
	options = []participle.Option{
		participle.Lexer(tsqlLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Keyword", "Ident"),
		participle.UseLookahead(lookahead),
	}

	// scriptParser splits a script into raw statements and batch separators.
	scriptParser = participle.MustBuild[script](options...)

	// selectParser parses a single statement that is expected to be a query.
	selectParser = participle.MustBuild[SelectStatement](options...)
)

type (
	// Script is a parsed SQL Server script: an ordered list of batches separated
	// by GO.
	Script struct {
		// Source is the complete input text
		Source string

		// Batches holds the non-empty batches in input order
		Batches []*Batch
	}

	// Batch is a run of statements between two GO separators.
	Batch struct {
		Statements []*Statement
	}

	// Statement is a single statement of a batch.
	//
	// Select is set when the statement is a query the grammar understands and
	// holds no comments. Any other statement is reproduced from Source by the
	// formatter.
	Statement struct {
		// Leading holds the comments written before the statement
		Leading string

		// Source is the statement text without its terminating semicolon. It
		// includes the comments written inside the statement or after it on
		// the way to the semicolon.
		Source string

		// After holds the comments following the last statement of a script
		After string

		Select *SelectStatement

		lineComment bool
	}

	script struct {
		Items []*scriptItem `parser:"@@*"`
	}

	scriptItem struct {
		Go        bool          `parser:"  @'GO'"`
		Semicolon bool          `parser:"| @';'"`
		Statement *rawStatement `parser:"| @@"`
	}

	rawStatement struct {
		Tokens []lexer.Token

		Body string `parser:"@(~(';' | 'GO'))+"`
	}
)

// Statements returns every statement of the script in order, across batches.
func (s *Script) Statements() []*Statement {
	var out []*Statement
	for _, batch := range s.Batches {
		out = append(out, batch.Statements...)
	}

	return out
}

// Text returns the source text the given tokens were parsed from. Every grammar
// node carrying a Tokens field can be turned back into its original text this
// way.
func (s *Statement) Text(tokens []lexer.Token) string {
	return sourceText(s.Source, tokens)
}

// EndsInLineComment reports whether Source ends with a -- comment, which runs
// to the end of its line.
func (s *Statement) EndsInLineComment() bool {
	return s.lineComment
}

// Parse reads a SQL Server script from r and parses it.
//
// Example usage:
//
//	f, err := os.Open("report.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	script, err := parser.Parse(f)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, stmt := range script.Statements() {
//		if stmt.Select != nil {
//			fmt.Println("query:", stmt.Source)
//		}
//	}
func Parse(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL")
	}

	return ParseString(string(data))
}

// ParseFile parses the script stored at path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// ParseString parses a SQL Server script.
//
// Parsing happens in two passes. The script is first split into statements on
// semicolons and into batches on GO. Each statement is then parsed as a query;
// statements that are not queries, use syntax outside the supported subset or
// hold comments are kept as their source text. Comments between statements are
// kept with the statement that follows them.
//
// Example usage:
//
//	script, err := parser.ParseString("SELECT Id FROM Users; SELECT 1\nGO\nSELECT 2")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(len(script.Batches))      // 2
//	fmt.Println(len(script.Statements())) // 3
func ParseString(sql string) (*Script, error) {
	raw, err := scriptParser.ParseString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	comments, err := newCommentTracker(sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	s := &Script{Source: sql}
	batch := &Batch{}
	for _, item := range raw.Items {
		switch {
		case item.Go:
			s.appendBatch(batch)
			batch = &Batch{}
		case item.Statement != nil:
			batch.Statements = append(batch.Statements, comments.statement(item.Statement.Tokens))
		}
	}
	s.appendBatch(batch)
	comments.finish()

	return s, nil
}

func (s *Script) appendBatch(b *Batch) {
	if len(b.Statements) > 0 {
		s.Batches = append(s.Batches, b)
	}
}

func (s *Statement) parseSelect() {
	sel, err := selectParser.ParseString("", s.Source)
	if err != nil {
		logVerbatim(s, err.Error())
		return
	}

	s.Select = sel
}

func logVerbatim(s *Statement, reason string) {
	slog.Debug("Statement kept verbatim", "reason", reason, "text", s.Source)
}
