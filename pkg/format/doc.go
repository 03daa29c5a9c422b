// Package format provides well-formatted T-SQL output for parsed scripts.
//
// This package takes the syntax tree produced by the parser package and renders
// it back into text with consistent layout and user selectable styling. It
// never tokenizes SQL itself.
//
// Every node is rendered into its own Lines buffer which the parent then either
// merges inline, when the child fits on a single line, or embeds as an indented
// block wrapped in parentheses. That one rule, applied at every operator,
// comparison, argument list and subquery, is what makes arbitrarily nested
// queries come out readable.
//
// Key features:
//   - Every clause keyword on its own line, clause bodies indented below it
//   - Boolean connectives (AND/OR) always start a new line
//   - Configurable indentation unit, keyword case and operator spacing
//   - Identifiers re-delimited as [name], "name" or left bare
//   - Canonical spellings (INNER JOIN, LEFT OUTER JOIN, TOP (n), FETCH NEXT ... ROWS ONLY)
//   - Statements outside the supported grammar are reproduced verbatim
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.FormatterOptions{
//		Indent:                 "    ",
//		IdentifierStyle:        format.IdentifierStyleNone,
//		KeywordCase:            format.KeywordCaseLower,
//		LinesBetweenStatements: 2,
//		OperatorSpacing:        format.OperatorSpacingDense,
//	})
//
//	script, _ := parser.ParseString("select id, name from users where active = 1")
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, script)
//
//	// Functional API
//	out, err := format.FormatString("select id from users", format.Defaults)
//
// Output of the last call:
//
//	SELECT
//		[id]
//	FROM
//		[users];
package format
