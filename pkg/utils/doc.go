// Package utils provides small helpers shared by the parser, formatter and CLI.
//
// # Identifier Utilities (identifier.go)
//
// SQL Server accepts identifiers in three spellings: bare, wrapped in square
// brackets and wrapped in double quotes. The parser keeps identifiers exactly
// as written and the formatter re-quotes them according to the configured
// style, so both directions live here:
//
//	utils.UnquoteIdentifier("[Order Details]") // Order Details
//	utils.BracketIdentifier("Order Details")   // [Order Details]
//	utils.DoubleQuoteIdentifier("Users")       // "Users"
//
// Escapes are handled in both directions (`]]` inside brackets, `""` inside
// double quotes), so unquoting a quoted identifier always yields the original
// name.
//
// JoinParts renders a multi-part name, skipping the blank parts that appear in
// names such as `db..Users`.
//
// # Pointer Utilities (ptr.go)
//
// Ptr returns a pointer to any value. The configuration uses it for optional
// numeric settings, where nil means "not set".
package utils
