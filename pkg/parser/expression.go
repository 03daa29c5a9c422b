package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// BooleanExpression is a chain of OR-ed operands.
	// Precedence levels (lowest to highest):
	// 1. OR
	// 2. AND
	// 3. NOT
	// 4. Predicates (comparison, IS NULL, LIKE, BETWEEN, IN, EXISTS)
	BooleanExpression struct {
		Left *AndExpression   `parser:"@@"`
		Rest []*AndExpression `parser:"( 'OR' @@ )*"`
	}

	// AndExpression is a chain of AND-ed operands.
	AndExpression struct {
		Left *NotExpression   `parser:"@@"`
		Rest []*NotExpression `parser:"( 'AND' @@ )*"`
	}

	// NotExpression is a predicate with an optional leading NOT.
	NotExpression struct {
		Not       bool       `parser:"@'NOT'?"`
		Predicate *Predicate `parser:"@@"`
	}

	// Predicate is a single boolean test.
	Predicate struct {
		Tokens []lexer.Token

		Exists     *QueryExpression     `parser:"  'EXISTS' '(' @@ ')'"`
		Comparison *ComparisonPredicate `parser:"| @@"`
		Paren      *BooleanExpression   `parser:"| '(' @@ ')'"`
	}

	// ComparisonPredicate is a scalar on the left of exactly one test.
	ComparisonPredicate struct {
		Left    *ScalarExpression `parser:"@@"`
		Compare *Comparison       `parser:"(  @@"`
		IsNull  *IsNullTest       `parser:" | @@"`
		Like    *LikeTest         `parser:" | @@"`
		Between *BetweenTest      `parser:" | @@"`
		In      *InTest           `parser:" | @@ )"`
	}

	// Comparison is a binary comparison against Right.
	Comparison struct {
		Operator     string            `parser:"(  @( '=' | '<>' | '!=' | '<=' | '>=' | '<' | '>' | '!<' | '!>' | '*=' | '=*' )"`
		DistinctFrom *DistinctFrom     `parser:" | @@ )"`
		Right        *ScalarExpression `parser:"@@"`
	}

	// DistinctFrom is the IS [NOT] DISTINCT FROM comparison.
	DistinctFrom struct {
		Not bool `parser:"'IS' @'NOT'? 'DISTINCT' 'FROM'"`
	}

	// IsNullTest is IS [NOT] NULL.
	IsNullTest struct {
		Not bool `parser:"'IS' @'NOT'? 'NULL'"`
	}

	// LikeTest is [NOT] LIKE pattern [ESCAPE char].
	LikeTest struct {
		Not     bool              `parser:"@'NOT'? 'LIKE'"`
		Pattern *ScalarExpression `parser:"@@"`
		Escape  *ScalarExpression `parser:"( 'ESCAPE' @@ )?"`
	}

	// BetweenTest is [NOT] BETWEEN low AND high.
	BetweenTest struct {
		Not  bool              `parser:"@'NOT'? 'BETWEEN'"`
		Low  *ScalarExpression `parser:"@@"`
		High *ScalarExpression `parser:"'AND' @@"`
	}

	// InTest is [NOT] IN against a subquery or a value list.
	InTest struct {
		Not      bool                `parser:"@'NOT'? 'IN' '('"`
		Subquery *QueryExpression    `parser:"(  @@"`
		Values   []*ScalarExpression `parser:" | @@ ( ',' @@ )* ) ')'"`
	}

	// ScalarExpression is a chain of additive and bitwise operators.
	// Precedence levels (lowest to highest):
	// 1. + - & | ^
	// 2. * / %
	// 3. Unary - + ~
	// 4. Primary (literals, columns, functions, CASE, CAST, subqueries)
	ScalarExpression struct {
		Left *Term         `parser:"@@"`
		Rest []*AdditiveOp `parser:"@@*"`
	}

	// AdditiveOp is the right hand side of an additive operator.
	AdditiveOp struct {
		Operator string `parser:"@( '+' | '-' | '&' | '|' | '^' )"`
		Right    *Term  `parser:"@@"`
	}

	// Term is a chain of multiplicative operators.
	Term struct {
		Left *Factor             `parser:"@@"`
		Rest []*MultiplicativeOp `parser:"@@*"`
	}

	// MultiplicativeOp is the right hand side of a multiplicative operator.
	MultiplicativeOp struct {
		Operator string  `parser:"@( '*' | '/' | '%' )"`
		Right    *Factor `parser:"@@"`
	}

	// Factor is a primary with optional sign, collation and time zone.
	Factor struct {
		Sign      string   `parser:"@( '-' | '+' | '~' )?"`
		Primary   *Primary `parser:"@@"`
		Collation string   `parser:"( 'COLLATE' @Ident )?"`
		TimeZone  *Primary `parser:"( 'AT' 'TIME' 'ZONE' @@ )?"`
	}

	// Primary is an operand that binds tighter than any operator.
	Primary struct {
		Tokens []lexer.Token

		Case     *CaseExpression    `parser:"  @@"`
		Cast     *CastExpression    `parser:"| @@"`
		Convert  *ConvertExpression `parser:"| @@"`
		Subquery *QueryExpression   `parser:"| '(' @@ ')'"`
		Paren    *ScalarExpression  `parser:"| '(' @@ ')'"`
		Function *FunctionCall      `parser:"| @@"`
		Literal  *Literal           `parser:"| @@"`
		Niladic  string             `parser:"| @( 'CURRENT_TIMESTAMP' | 'CURRENT_USER' | 'SESSION_USER' | 'SYSTEM_USER' )"`
		Variable string             `parser:"| @Variable"`
		Column   *ColumnReference   `parser:"| @@"`
	}

	// Literal is a constant. Value keeps the source spelling, quotes included.
	Literal struct {
		Null    bool   `parser:"  @'NULL'"`
		Default bool   `parser:"| @'DEFAULT'"`
		Value   string `parser:"| @( UnicodeString | String | Binary | Money | Number )"`
	}

	// ColumnReference is a possibly qualified column name.
	ColumnReference struct {
		Parts []string `parser:"@Ident ( '.' @Ident )*"`
	}

	// FunctionCall is a built-in or user defined function invocation.
	FunctionCall struct {
		Name     []string            `parser:"@( Ident | 'LEFT' | 'RIGHT' ) ( '.' @Ident )* '('"`
		Star     bool                `parser:"(  @'*'"`
		Distinct bool                `parser:" | ( @'DISTINCT' | 'ALL' )?"`
		Args     []*ScalarExpression `parser:"   @@ ( ',' @@ )* )? ')'"`
		Over     *OverClause         `parser:"@@?"`
	}

	// OverClause is a window specification. Its body is kept as balanced tokens
	// and reproduced from source.
	OverClause struct {
		Tokens []lexer.Token

		Body []*balancedToken `parser:"'OVER' '(' @@* ')'"`
	}

	balancedToken struct {
		Value string           `parser:"  @~( '(' | ')' )"`
		Group []*balancedToken `parser:"| '(' @@* ')'"`
	}

	// CaseExpression is a simple (Input set) or searched CASE.
	CaseExpression struct {
		Input *ScalarExpression `parser:"'CASE' @@?"`
		Whens []*WhenClause     `parser:"@@+"`
		Else  *ScalarExpression `parser:"( 'ELSE' @@ )? 'END'"`
	}

	// WhenClause is one WHEN ... THEN arm. Searched CASE arms set Condition,
	// simple CASE arms set Value.
	WhenClause struct {
		Condition *BooleanExpression `parser:"'WHEN' (  @@"`
		Value     *ScalarExpression  `parser:"        | @@ )"`
		Result    *ScalarExpression  `parser:"'THEN' @@"`
	}

	// CastExpression is CAST(expr AS type) or TRY_CAST(expr AS type).
	CastExpression struct {
		Try        bool              `parser:"( @'TRY_CAST' | 'CAST' ) '('"`
		Expression *ScalarExpression `parser:"@@ 'AS'"`
		Type       *DataType         `parser:"@@ ')'"`
	}

	// ConvertExpression is CONVERT(type, expr[, style]) or its TRY_ variant.
	ConvertExpression struct {
		Try        bool              `parser:"( @'TRY_CONVERT' | 'CONVERT' ) '('"`
		Type       *DataType         `parser:"@@ ','"`
		Expression *ScalarExpression `parser:"@@"`
		Style      *ScalarExpression `parser:"( ',' @@ )? ')'"`
	}

	// DataType is a type name with its optional length, precision and scale.
	DataType struct {
		Name   []string `parser:"@Ident ( '.' @Ident )*"`
		Max    bool     `parser:"( '(' ( @'MAX'"`
		Params []string `parser:"      | @Number ( ',' @Number )* ) ')' )?"`
	}
)
