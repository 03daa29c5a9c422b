package parser

import "github.com/alecthomas/participle/v2/lexer"

// This file contains the query structures: SELECT statements, set operations,
// CTEs and the clauses of a query specification.

type (
	// SelectStatement is a complete query statement with its optional CTEs.
	SelectStatement struct {
		With  *WithClause      `parser:"@@?"`
		Query *QueryExpression `parser:"@@"`
	}

	// WithClause holds the common table expressions of a statement.
	WithClause struct {
		CTEs []*CommonTableExpression `parser:"'WITH' @@ ( ',' @@ )*"`
	}

	// CommonTableExpression is a single named query of a WITH clause.
	CommonTableExpression struct {
		Name    string           `parser:"@Ident"`
		Columns []string         `parser:"( '(' @Ident ( ',' @Ident )* ')' )?"`
		Query   *QueryExpression `parser:"'AS' '(' @@ ')'"`
	}

	// QueryExpression is one or more query terms combined with set operators,
	// optionally ordered and paged.
	QueryExpression struct {
		First   *QueryTerm      `parser:"@@"`
		Rest    []*SetOperation `parser:"@@*"`
		OrderBy *OrderByClause  `parser:"@@?"`
	}

	// SetOperation combines the preceding terms with Term.
	SetOperation struct {
		Operator string     `parser:"@( 'UNION' | 'EXCEPT' | 'INTERSECT' )"`
		All      bool       `parser:"@'ALL'?"`
		Term     *QueryTerm `parser:"@@"`
	}

	// QueryTerm is either a SELECT specification or a parenthesized query.
	QueryTerm struct {
		Tokens []lexer.Token

		Spec  *QuerySpecification `parser:"  @@"`
		Paren *QueryExpression    `parser:"| '(' @@ ')'"`
	}

	// QuerySpecification is a single SELECT ... FROM ... block.
	QuerySpecification struct {
		Distinct bool               `parser:"'SELECT' ( @'DISTINCT' | 'ALL' )?"`
		Top      *TopClause         `parser:"@@?"`
		Items    []*SelectItem      `parser:"@@ ( ',' @@ )*"`
		Into     *ObjectName        `parser:"( 'INTO' @@ )?"`
		From     *FromClause        `parser:"@@?"`
		Where    *BooleanExpression `parser:"( 'WHERE' @@ )?"`
		GroupBy  *GroupByClause     `parser:"@@?"`
		Having   *BooleanExpression `parser:"( 'HAVING' @@ )?"`
	}

	// TopClause limits the number (or percentage) of rows returned.
	TopClause struct {
		Value    *ScalarExpression `parser:"'TOP' ( '(' @@ ')' | @@ )"`
		Percent  bool              `parser:"@'PERCENT'?"`
		WithTies bool              `parser:"@( 'WITH' 'TIES' )?"`
	}

	// SelectItem is one entry of a select list.
	SelectItem struct {
		Tokens []lexer.Token

		Star       *StarExpression   `parser:"  @@"`
		Expression *ScalarExpression `parser:"| @@"`
		Alias      string            `parser:"( 'AS'? @( Ident | String ) )?"`
	}

	// StarExpression is `*` or a qualified `t.*`.
	StarExpression struct {
		Qualifier []string `parser:"( @Ident '.' )* '*'"`
	}

	// GroupByClause lists the grouping expressions.
	GroupByClause struct {
		Items    []*ScalarExpression `parser:"'GROUP' 'BY' @@ ( ',' @@ )*"`
		Modifier string              `parser:"( 'WITH' @( 'ROLLUP' | 'CUBE' ) )?"`
	}

	// OrderByClause sorts a query and optionally pages through the result.
	OrderByClause struct {
		Items  []*OrderItem      `parser:"'ORDER' 'BY' @@ ( ',' @@ )*"`
		Offset *OffsetFetchClause `parser:"@@?"`
	}

	// OrderItem is a single sort key.
	OrderItem struct {
		Expression *ScalarExpression `parser:"@@"`
		Direction  string            `parser:"@( 'ASC' | 'DESC' )?"`
	}

	// OffsetFetchClause is `OFFSET n ROWS [FETCH NEXT m ROWS ONLY]`. The
	// ROW/ROWS and FIRST/NEXT spellings are interchangeable.
	OffsetFetchClause struct {
		Offset *ScalarExpression `parser:"'OFFSET' @@ ( 'ROWS' | 'ROW' )"`
		Fetch  *ScalarExpression `parser:"( 'FETCH' ( 'NEXT' | 'FIRST' ) @@ ( 'ROWS' | 'ROW' ) 'ONLY' )?"`
	}
)
