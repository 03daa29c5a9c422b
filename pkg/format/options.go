package format

import (
	"strings"

	"github.com/pkg/errors"
)

// IdentifierStyle selects how identifiers are delimited.
type IdentifierStyle int

const (
	// IdentifierStyleSquareBrackets renders [name]
	IdentifierStyleSquareBrackets IdentifierStyle = iota
	// IdentifierStyleDoubleQuotes renders "name"
	IdentifierStyleDoubleQuotes
	// IdentifierStyleNone renders the bare name
	IdentifierStyleNone
)

// KeywordCase selects the letter case of keywords.
type KeywordCase int

const (
	KeywordCaseUpper KeywordCase = iota
	KeywordCaseLower
)

// OperatorSpacing selects whether operators are padded with spaces.
type OperatorSpacing int

const (
	// OperatorSpacingSpaceAround renders a = b
	OperatorSpacingSpaceAround OperatorSpacing = iota
	// OperatorSpacingDense renders a=b
	OperatorSpacingDense
)

var (
	identifierStyles = map[string]IdentifierStyle{
		"square-brackets": IdentifierStyleSquareBrackets,
		"double-quotes":   IdentifierStyleDoubleQuotes,
		"none":            IdentifierStyleNone,
	}

	keywordCases = map[string]KeywordCase{
		"upper": KeywordCaseUpper,
		"lower": KeywordCaseLower,
	}

	operatorSpacings = map[string]OperatorSpacing{
		"space-around": OperatorSpacingSpaceAround,
		"dense":        OperatorSpacingDense,
	}
)

// ParseIdentifierStyle parses "square-brackets", "double-quotes" or "none".
func ParseIdentifierStyle(s string) (IdentifierStyle, error) {
	return parseEnum(identifierStyles, "identifier style", s)
}

// ParseKeywordCase parses "upper" or "lower".
func ParseKeywordCase(s string) (KeywordCase, error) {
	return parseEnum(keywordCases, "keyword case", s)
}

// ParseOperatorSpacing parses "space-around" or "dense".
func ParseOperatorSpacing(s string) (OperatorSpacing, error) {
	return parseEnum(operatorSpacings, "operator spacing", s)
}

func (s IdentifierStyle) String() string { return enumName(identifierStyles, s) }
func (c KeywordCase) String() string     { return enumName(keywordCases, c) }
func (s OperatorSpacing) String() string { return enumName(operatorSpacings, s) }

func parseEnum[T comparable](values map[string]T, what, s string) (T, error) {
	if v, ok := values[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}

	var zero T
	return zero, errors.Errorf("invalid %s: %q", what, s)
}

func enumName[T comparable](values map[string]T, v T) string {
	for name, value := range values {
		if value == v {
			return name
		}
	}

	return "unknown"
}
