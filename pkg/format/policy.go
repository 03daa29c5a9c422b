package format

import (
	"strings"

	"github.com/jeannemas/tsql-formatter/pkg/utils"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// keyword applies the configured letter case to a keyword. Multi-word keywords
// such as "GROUP BY" are cased as a whole.
func (f *Formatter) keyword(kw string) string {
	if f.options.KeywordCase == KeywordCaseLower {
		return cases.Lower(language.Und).String(kw)
	}

	return cases.Upper(language.Und).String(kw)
}

// identifier renders a possibly multi-part name. Every non-blank part is
// stripped of its source delimiters and re-delimited in the configured style.
func (f *Formatter) identifier(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name := utils.UnquoteIdentifier(part)
		if strings.TrimSpace(name) == "" {
			continue
		}

		switch f.options.IdentifierStyle {
		case IdentifierStyleDoubleQuotes:
			out = append(out, utils.DoubleQuoteIdentifier(name))
		case IdentifierStyleNone:
			out = append(out, name)
		default:
			out = append(out, utils.BracketIdentifier(name))
		}
	}

	return utils.JoinParts(out)
}

// operator renders a comparison or arithmetic operator with the configured
// spacing.
func (f *Formatter) operator(op string) string {
	if f.options.OperatorSpacing == OperatorSpacingDense {
		return op
	}

	return " " + op + " "
}

// indent returns the indentation unit repeated level times.
func (f *Formatter) indent(level int) string {
	return strings.Repeat(f.options.Indent, level)
}
