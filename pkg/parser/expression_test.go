package parser_test

import (
	"testing"

	. "github.com/jeannemas/tsql-formatter/pkg/parser"
	"github.com/stretchr/testify/require"
)

// where returns the WHERE condition of a single SELECT.
func where(t *testing.T, condition string) *BooleanExpression {
	t.Helper()

	sel := parseSelect(t, "SELECT 1 FROM T WHERE "+condition)
	require.NotNil(t, sel.Query.First.Spec.Where)
	return sel.Query.First.Spec.Where
}

// selectExpr returns the expression of the first select item.
func selectExpr(t *testing.T, expr string) *ScalarExpression {
	t.Helper()

	sel := parseSelect(t, "SELECT "+expr)
	require.NotNil(t, sel.Query.First.Spec.Items[0].Expression)
	return sel.Query.First.Spec.Items[0].Expression
}

func primaryOf(expr *ScalarExpression) *Primary {
	return expr.Left.Left.Primary
}

func TestBoolean_Precedence(t *testing.T) {
	cond := where(t, "A = 1 OR B = 2 AND NOT C = 3")

	// OR binds loosest: two operands, the second an AND chain.
	require.Len(t, cond.Rest, 1)
	require.Empty(t, cond.Left.Rest)

	and := cond.Rest[0]
	require.Len(t, and.Rest, 1)
	require.False(t, and.Left.Not)
	require.True(t, and.Rest[0].Not)
}

func TestBoolean_Parenthesized(t *testing.T) {
	cond := where(t, "(A = 1 OR B = 2) AND C = 3")

	require.Empty(t, cond.Rest)
	require.Len(t, cond.Left.Rest, 1)

	paren := cond.Left.Left.Predicate.Paren
	require.NotNil(t, paren)
	require.Len(t, paren.Rest, 1)
	require.Nil(t, cond.Left.Left.Predicate.Comparison)
}

func TestBoolean_ParenthesizedScalarIsNotAPredicate(t *testing.T) {
	cond := where(t, "(A + 1) * 2 > 10")

	predicate := cond.Left.Left.Predicate
	require.Nil(t, predicate.Paren)
	require.NotNil(t, predicate.Comparison)
	require.NotNil(t, predicate.Comparison.Compare)
	require.Equal(t, ">", predicate.Comparison.Compare.Operator)
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		verify func(t *testing.T, p *Predicate)
	}{
		{
			name: "comparison operators",
			sql:  "A <> B",
			verify: func(t *testing.T, p *Predicate) {
				require.Equal(t, "<>", p.Comparison.Compare.Operator)
			},
		},
		{
			name: "is not distinct from",
			sql:  "A IS NOT DISTINCT FROM B",
			verify: func(t *testing.T, p *Predicate) {
				require.NotNil(t, p.Comparison.Compare.DistinctFrom)
				require.True(t, p.Comparison.Compare.DistinctFrom.Not)
				require.Empty(t, p.Comparison.Compare.Operator)
			},
		},
		{
			name: "is null",
			sql:  "A IS NULL",
			verify: func(t *testing.T, p *Predicate) {
				require.NotNil(t, p.Comparison.IsNull)
				require.False(t, p.Comparison.IsNull.Not)
			},
		},
		{
			name: "not like with escape",
			sql:  "Name NOT LIKE '%!%%' ESCAPE '!'",
			verify: func(t *testing.T, p *Predicate) {
				like := p.Comparison.Like
				require.NotNil(t, like)
				require.True(t, like.Not)
				require.NotNil(t, like.Escape)
			},
		},
		{
			name: "between",
			sql:  "Age BETWEEN 18 AND 65",
			verify: func(t *testing.T, p *Predicate) {
				between := p.Comparison.Between
				require.NotNil(t, between)
				require.Equal(t, "18", primaryOf(between.Low).Literal.Value)
				require.Equal(t, "65", primaryOf(between.High).Literal.Value)
			},
		},
		{
			name: "in list",
			sql:  "Id NOT IN (1, 2, 3)",
			verify: func(t *testing.T, p *Predicate) {
				in := p.Comparison.In
				require.True(t, in.Not)
				require.Nil(t, in.Subquery)
				require.Len(t, in.Values, 3)
			},
		},
		{
			name: "in subquery",
			sql:  "Id IN (SELECT UserId FROM Orders)",
			verify: func(t *testing.T, p *Predicate) {
				in := p.Comparison.In
				require.NotNil(t, in.Subquery)
				require.Empty(t, in.Values)
			},
		},
		{
			name: "exists",
			sql:  "EXISTS (SELECT 1 FROM Orders)",
			verify: func(t *testing.T, p *Predicate) {
				require.NotNil(t, p.Exists)
				require.Nil(t, p.Comparison)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond := where(t, tt.sql)
			require.Empty(t, cond.Rest)
			require.Empty(t, cond.Left.Rest)
			tt.verify(t, cond.Left.Left.Predicate)
		})
	}
}

func TestBetween_BindsItsOwnAnd(t *testing.T) {
	cond := where(t, "Age BETWEEN 1 AND 10 AND Active = 1")

	require.Len(t, cond.Left.Rest, 1)
	require.NotNil(t, cond.Left.Left.Predicate.Comparison.Between)
	require.NotNil(t, cond.Left.Rest[0].Predicate.Comparison.Compare)
}

func TestScalar_Precedence(t *testing.T) {
	expr := selectExpr(t, "1 + 2 * 3 - -4")

	require.Len(t, expr.Rest, 2)
	require.Equal(t, "+", expr.Rest[0].Operator)
	require.Equal(t, "-", expr.Rest[1].Operator)

	product := expr.Rest[0].Right
	require.Len(t, product.Rest, 1)
	require.Equal(t, "*", product.Rest[0].Operator)

	negative := expr.Rest[1].Right.Left
	require.Equal(t, "-", negative.Sign)
	require.Equal(t, "4", negative.Primary.Literal.Value)
}

func TestScalar_Primaries(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		verify func(t *testing.T, p *Primary)
	}{
		{
			name: "unicode string",
			sql:  "N'héllo'",
			verify: func(t *testing.T, p *Primary) {
				require.Equal(t, "N'héllo'", p.Literal.Value)
			},
		},
		{
			name: "escaped quote",
			sql:  "'it''s'",
			verify: func(t *testing.T, p *Primary) {
				require.Equal(t, "'it''s'", p.Literal.Value)
			},
		},
		{
			name: "binary",
			sql:  "0xFF",
			verify: func(t *testing.T, p *Primary) {
				require.Equal(t, "0xFF", p.Literal.Value)
			},
		},
		{
			name: "money",
			sql:  "$12.50",
			verify: func(t *testing.T, p *Primary) {
				require.Equal(t, "$12.50", p.Literal.Value)
			},
		},
		{
			name: "scientific notation",
			sql:  "1.5E-3",
			verify: func(t *testing.T, p *Primary) {
				require.Equal(t, "1.5E-3", p.Literal.Value)
			},
		},
		{
			name: "null",
			sql:  "null",
			verify: func(t *testing.T, p *Primary) {
				require.True(t, p.Literal.Null)
			},
		},
		{
			name: "system variable",
			sql:  "@@ROWCOUNT",
			verify: func(t *testing.T, p *Primary) {
				require.Equal(t, "@@ROWCOUNT", p.Variable)
			},
		},
		{
			name: "niladic function",
			sql:  "current_timestamp",
			verify: func(t *testing.T, p *Primary) {
				require.Equal(t, "current_timestamp", p.Niladic)
			},
		},
		{
			name: "qualified column",
			sql:  "dbo.Users.[Full Name]",
			verify: func(t *testing.T, p *Primary) {
				require.Equal(t, []string{"dbo", "Users", "[Full Name]"}, p.Column.Parts)
			},
		},
		{
			name: "scalar subquery",
			sql:  "(SELECT MAX(Id) FROM Users)",
			verify: func(t *testing.T, p *Primary) {
				require.NotNil(t, p.Subquery)
				require.Nil(t, p.Paren)
			},
		},
		{
			name: "parenthesized expression",
			sql:  "(1 + 2)",
			verify: func(t *testing.T, p *Primary) {
				require.NotNil(t, p.Paren)
				require.Nil(t, p.Subquery)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := selectExpr(t, tt.sql)
			require.Empty(t, expr.Rest)
			tt.verify(t, primaryOf(expr))
		})
	}
}

func TestScalar_Functions(t *testing.T) {
	t.Run("count star", func(t *testing.T) {
		fn := primaryOf(selectExpr(t, "COUNT(*)")).Function
		require.Equal(t, []string{"COUNT"}, fn.Name)
		require.True(t, fn.Star)
		require.Empty(t, fn.Args)
	})

	t.Run("distinct argument", func(t *testing.T) {
		fn := primaryOf(selectExpr(t, "COUNT(DISTINCT UserId)")).Function
		require.True(t, fn.Distinct)
		require.Len(t, fn.Args, 1)
	})

	t.Run("no arguments", func(t *testing.T) {
		fn := primaryOf(selectExpr(t, "GETDATE()")).Function
		require.Empty(t, fn.Args)
		require.Nil(t, fn.Over)
	})

	t.Run("keyword named functions", func(t *testing.T) {
		fn := primaryOf(selectExpr(t, "LEFT(Name, 3)")).Function
		require.Equal(t, []string{"LEFT"}, fn.Name)
		require.Len(t, fn.Args, 2)
	})

	t.Run("schema qualified", func(t *testing.T) {
		fn := primaryOf(selectExpr(t, "dbo.Score(Id, 2)")).Function
		require.Equal(t, []string{"dbo", "Score"}, fn.Name)
	})

	t.Run("window", func(t *testing.T) {
		fn := primaryOf(selectExpr(t, "ROW_NUMBER() OVER (PARTITION BY A ORDER BY (SELECT NULL))")).Function
		require.NotNil(t, fn.Over)
	})
}

func TestScalar_Case(t *testing.T) {
	t.Run("searched", func(t *testing.T) {
		c := primaryOf(selectExpr(t, "CASE WHEN A > 1 THEN 'big' WHEN A IS NULL THEN NULL ELSE 'small' END")).Case
		require.Nil(t, c.Input)
		require.Len(t, c.Whens, 2)
		require.NotNil(t, c.Whens[0].Condition)
		require.Nil(t, c.Whens[0].Value)
		require.NotNil(t, c.Else)
	})

	t.Run("simple", func(t *testing.T) {
		c := primaryOf(selectExpr(t, "CASE Status WHEN 1 THEN 'open' END")).Case
		require.NotNil(t, c.Input)
		require.Len(t, c.Whens, 1)
		require.Nil(t, c.Whens[0].Condition)
		require.NotNil(t, c.Whens[0].Value)
		require.Nil(t, c.Else)
	})
}

func TestScalar_Conversions(t *testing.T) {
	t.Run("cast", func(t *testing.T) {
		cast := primaryOf(selectExpr(t, "CAST(Price AS DECIMAL(10, 2))")).Cast
		require.False(t, cast.Try)
		require.Equal(t, []string{"DECIMAL"}, cast.Type.Name)
		require.Equal(t, []string{"10", "2"}, cast.Type.Params)
	})

	t.Run("try cast to max", func(t *testing.T) {
		cast := primaryOf(selectExpr(t, "TRY_CAST(Notes AS nvarchar(max))")).Cast
		require.True(t, cast.Try)
		require.True(t, cast.Type.Max)
	})

	t.Run("convert with style", func(t *testing.T) {
		conv := primaryOf(selectExpr(t, "CONVERT(VARCHAR(10), CreatedAt, 120)")).Convert
		require.False(t, conv.Try)
		require.NotNil(t, conv.Style)
	})

	t.Run("try convert", func(t *testing.T) {
		conv := primaryOf(selectExpr(t, "TRY_CONVERT(INT, Code)")).Convert
		require.True(t, conv.Try)
		require.Nil(t, conv.Style)
	})
}

func TestScalar_Modifiers(t *testing.T) {
	factor := selectExpr(t, "CreatedAt AT TIME ZONE 'UTC'").Left.Left
	require.NotNil(t, factor.TimeZone)

	factor = selectExpr(t, "Name COLLATE Latin1_General_CI_AS").Left.Left
	require.Equal(t, "Latin1_General_CI_AS", factor.Collation)
}
