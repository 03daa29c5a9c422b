// Package parser provides a participle-based parser for SQL Server (T-SQL) scripts.
//
// This package implements a parser using github.com/alecthomas/participle/v2 that
// turns T-SQL text into a typed syntax tree suitable for pretty-printing. It
// covers the query language in depth and treats every other statement as an
// opaque run of tokens, so any script can be parsed.
//
// Key features:
//   - Batches split on GO, statements split on semicolons
//   - SELECT with CTEs, UNION/EXCEPT/INTERSECT, TOP, DISTINCT and INTO
//   - FROM with joins, APPLY, derived tables, table variables and table hints
//   - WHERE/HAVING boolean logic with comparisons, LIKE, BETWEEN, IN and EXISTS
//   - GROUP BY (WITH ROLLUP/CUBE), ORDER BY, OFFSET/FETCH
//   - Scalar expressions with CASE, CAST/CONVERT, functions and subqueries
//   - Bracketed and double quoted identifiers, N'' strings, variables
//   - Comments kept with the statement they belong to
//
// Grammar structs double as the syntax tree. Alternatives are modelled as
// structs whose fields are mutually exclusive pointers, exactly one of which is
// set after a successful parse. Nodes that may have to be reproduced verbatim
// carry the Tokens they were parsed from; Statement.Text turns those back into
// source text.
//
// Basic usage:
//
//	script, err := parser.ParseString(`
//	    SELECT Id, Name FROM dbo.Users WHERE Active = 1;
//	    DELETE FROM dbo.Users WHERE Id = 3;
//	`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, stmt := range script.Statements() {
//		if stmt.Select == nil {
//			fmt.Println("verbatim:", stmt.Source)
//		}
//	}
//
//	// Parse from a file
//	script, err = parser.ParseFile("report.sql")
package parser
