package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// FromClause lists the table sources of a query. Each comma separated source
	// carries its own chain of joins.
	FromClause struct {
		Tables []*TableSource `parser:"'FROM' @@ ( ',' @@ )*"`
	}

	// TableSource is a table reference followed by any number of joins.
	TableSource struct {
		Primary *TableReference `parser:"@@"`
		Joins   []*Join         `parser:"@@*"`
	}

	// Join attaches Table to everything on its left.
	Join struct {
		Operator  *JoinOperator      `parser:"@@"`
		Table     *TableReference    `parser:"@@"`
		Condition *BooleanExpression `parser:"( 'ON' @@ )?"`
	}

	// JoinOperator is the kind of a join. Qualified holds INNER, LEFT, RIGHT or
	// FULL, or is empty for a bare JOIN.
	JoinOperator struct {
		CrossJoin  bool   `parser:"  @( 'CROSS' 'JOIN' )"`
		CrossApply bool   `parser:"| @( 'CROSS' 'APPLY' )"`
		OuterApply bool   `parser:"| @( 'OUTER' 'APPLY' )"`
		Qualified  string `parser:"| @( 'INNER' | 'LEFT' | 'RIGHT' | 'FULL' )? 'OUTER'? 'JOIN'"`
	}

	// TableReference is a single table-like source with its alias and hints.
	TableReference struct {
		Tokens []lexer.Token

		Derived  *QueryExpression `parser:"(   '(' @@ ')'"`
		Function *FunctionCall    `parser:"  | @@"`
		Variable string           `parser:"  | @Variable"`
		Object   *ObjectName      `parser:"  | @@ )"`
		Alias    string           `parser:"( 'AS'? @Ident )?"`
		Hints    []string         `parser:"( 'WITH' '(' @Ident ( ','? @Ident )* ')' )?"`
	}

	// ObjectName is a server.database.schema.object name. Omitted middle parts,
	// as in `db..Users`, are simply absent from Parts.
	ObjectName struct {
		Parts []string `parser:"@Ident ( '.' @Ident? )*"`
	}
)
