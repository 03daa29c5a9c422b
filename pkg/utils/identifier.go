package utils

import "strings"

// BracketIdentifier wraps name in square brackets, doubling any closing bracket
// inside it so the result reads back as the same identifier.
//
// Examples:
//   - "Users" -> "[Users]"
//   - "odd]name" -> "[odd]]name]"
//   - "" -> ""
func BracketIdentifier(name string) string {
	if name == "" {
		return ""
	}

	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// DoubleQuoteIdentifier wraps name in double quotes, doubling embedded quotes.
//
// Examples:
//   - "Users" -> "\"Users\""
//   - "say \"hi\"" -> "\"say \"\"hi\"\"\""
//   - "" -> ""
func DoubleQuoteIdentifier(name string) string {
	if name == "" {
		return ""
	}

	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// IsDelimited reports whether s is wrapped in square brackets or double quotes.
func IsDelimited(s string) bool {
	if len(s) < 2 {
		return false
	}

	return (s[0] == '[' && s[len(s)-1] == ']') || (s[0] == '"' && s[len(s)-1] == '"')
}

// UnquoteIdentifier strips the delimiters from a bracketed, double quoted or
// single quoted identifier and collapses the escaped delimiter inside it. Bare
// identifiers are returned unchanged.
//
// Examples:
//   - "[Order Details]" -> "Order Details"
//   - "[odd]]name]" -> "odd]name"
//   - "\"Users\"" -> "Users"
//   - "'alias'" -> "alias"
//   - "Users" -> "Users"
func UnquoteIdentifier(s string) string {
	if len(s) < 2 {
		return s
	}

	switch {
	case s[0] == '[' && s[len(s)-1] == ']':
		return strings.ReplaceAll(s[1:len(s)-1], "]]", "]")
	case s[0] == '"' && s[len(s)-1] == '"':
		return strings.ReplaceAll(s[1:len(s)-1], `""`, `"`)
	case s[0] == '\'' && s[len(s)-1] == '\'':
		return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}

	return s
}

// JoinParts joins the non-blank parts of a multi-part name with dots. Blank parts
// are dropped, so a bare table name never picks up leading dots.
//
// Examples:
//   - ["dbo", "Users"] -> "dbo.Users"
//   - ["", "", "Users"] -> "Users"
func JoinParts(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ".")
}
