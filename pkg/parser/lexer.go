package parser

import (
	"io"
	"maps"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// reservedWords are lexed as Keyword tokens so the grammar never mistakes them
// for identifiers or aliases. Everything else, including non-reserved words such
// as ROWS or TIES, is lexed as an Ident and matched by literal.
var reservedWords = []string{
	"ALL", "ALTER", "AND", "AS", "ASC", "BEGIN", "BETWEEN", "BY", "CASE", "COLLATE",
	"CONVERT", "CREATE", "CROSS", "DECLARE", "DEFAULT", "DELETE", "DESC", "DISTINCT",
	"DROP", "ELSE", "END", "ESCAPE", "EXCEPT", "EXEC", "EXECUTE", "EXISTS", "FETCH",
	"FOR", "FROM", "FULL", "GO", "GROUP", "HAVING", "IF", "IN", "INNER", "INSERT",
	"INTERSECT", "INTO", "IS", "JOIN", "LEFT", "LIKE", "MERGE", "NOT", "NULL", "ON",
	"OPTION", "OR", "ORDER", "OUTER", "OVER", "PERCENT", "RETURN", "RIGHT", "SELECT",
	"SET", "THEN", "TOP", "TRUNCATE", "UNION", "UPDATE", "USE", "VALUES", "WHEN",
	"WHERE", "WHILE", "WITH",
}

var reserved = func() map[string]bool {
	set := make(map[string]bool, len(reservedWords))
	for _, word := range reservedWords {
		set[word] = true
	}
	return set
}()

// tsqlLexer tokenizes SQL Server scripts. The trailing Char rule accepts any
// character the other rules reject, so lexing never fails and unsupported
// input surfaces as a grammar mismatch instead.
var tsqlLexer = newKeywordDefinition(lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\r\n]*`},
	{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "UnicodeString", Pattern: `[Nn]'([^']|'')*'`},
	{Name: "String", Pattern: `'([^']|'')*'`},
	{Name: "Variable", Pattern: `@@?[\p{L}_#][\p{L}\p{N}_@$#]*`},
	{Name: "Binary", Pattern: `0[xX][0-9a-fA-F]*`},
	{Name: "Money", Pattern: `\$\d+(\.\d*)?`},
	{Name: "Number", Pattern: `(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `\[([^\]]|\]\])*\]|"([^"]|"")*"|[\p{L}_#][\p{L}\p{N}_@$#]*`},
	{Name: "Operator", Pattern: `<>|!=|<=|>=|!<|!>|\*=|=\*|[-+*/%=<>&|^~]`},
	{Name: "Punct", Pattern: `[(),.;]`},
	{Name: "Char", Pattern: `.`},
}))

var (
	lineCommentType  = tsqlLexer.Symbols()["Comment"]
	blockCommentType = tsqlLexer.Symbols()["MultilineComment"]
	whitespaceType   = tsqlLexer.Symbols()["Whitespace"]
)

// keywordDefinition adds a Keyword token type to a lexer definition. Bare words
// are lexed as a whole by the Ident rule and retyped when they are reserved, so
// a reserved word never matches the start of a longer identifier such as Isé.
type keywordDefinition struct {
	base    lexer.Definition
	symbols map[string]lexer.TokenType
}

func newKeywordDefinition(base lexer.Definition) *keywordDefinition {
	symbols := maps.Clone(base.Symbols())

	keyword := lexer.EOF
	for _, typ := range symbols {
		keyword = min(keyword, typ)
	}
	symbols["Keyword"] = keyword - 1

	return &keywordDefinition{base: base, symbols: symbols}
}

func (d *keywordDefinition) Symbols() map[string]lexer.TokenType {
	return d.symbols
}

func (d *keywordDefinition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	lex, err := d.base.Lex(filename, r)
	if err != nil {
		return nil, err
	}

	return &keywordLexer{Lexer: lex, ident: d.symbols["Ident"], keyword: d.symbols["Keyword"]}, nil
}

type keywordLexer struct {
	lexer.Lexer
	ident   lexer.TokenType
	keyword lexer.TokenType
}

func (l *keywordLexer) Next() (lexer.Token, error) {
	tok, err := l.Lexer.Next()
	if err == nil && tok.Type == l.ident && reserved[strings.ToUpper(tok.Value)] {
		tok.Type = l.keyword
	}

	return tok, err
}

// GetLexer returns the lexer definition used by the parser. It is exposed so
// tests and tools can build parsers for individual grammar productions.
func GetLexer() lexer.Definition {
	return tsqlLexer
}

// lexAll returns every token of source, comments and whitespace included,
// ending with EOF.
func lexAll(source string) ([]lexer.Token, error) {
	lex, err := tsqlLexer.Lex("", strings.NewReader(source))
	if err != nil {
		return nil, err
	}

	return lexer.ConsumeAll(lex)
}

func isComment(tok lexer.Token) bool {
	return tok.Type == lineCommentType || tok.Type == blockCommentType
}

// elided reports whether the grammar skips tok.
func elided(tok lexer.Token) bool {
	return isComment(tok) || tok.Type == whitespaceType
}

// sourceText returns the trimmed slice of source spanned by tokens.
func sourceText(source string, tokens []lexer.Token) string {
	if len(tokens) == 0 {
		return ""
	}

	first, last := tokens[0], tokens[len(tokens)-1]
	start := first.Pos.Offset
	end := last.Pos.Offset + len(last.Value)
	if start < 0 || end > len(source) || start > end {
		return ""
	}

	return strings.TrimSpace(source[start:end])
}
