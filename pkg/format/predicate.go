package format

import (
	"github.com/jeannemas/tsql-formatter/pkg/consts"
	"github.com/jeannemas/tsql-formatter/pkg/parser"
)

// boolean formats an OR chain.
func (r *renderer) boolean(expr *parser.BooleanExpression) *Lines {
	operands := make([]operand, 0, len(expr.Rest)+1)
	for _, e := range append([]*parser.AndExpression{expr.Left}, expr.Rest...) {
		operands = append(operands, operand{
			lines:    r.and(e),
			enclosed: len(e.Rest) == 0 && enclosedNot(e.Left),
		})
	}

	return r.connect(consts.KeywordOr, operands)
}

// and formats an AND chain.
func (r *renderer) and(expr *parser.AndExpression) *Lines {
	operands := make([]operand, 0, len(expr.Rest)+1)
	for _, e := range append([]*parser.NotExpression{expr.Left}, expr.Rest...) {
		operands = append(operands, operand{lines: r.not(e), enclosed: enclosedNot(e)})
	}

	return r.connect(consts.KeywordAnd, operands)
}

// operand is a rendered boolean operand. Enclosed operands carry their own
// parentheses and are never put in another block.
type operand struct {
	lines    *Lines
	enclosed bool
}

// connect joins boolean operands with a connective. The connective always
// starts a new line, and an operand spanning several lines is put in a block.
func (r *renderer) connect(connective string, operands []operand) *Lines {
	if len(operands) == 1 {
		return operands[0].lines
	}

	out := NewLines()
	for i, op := range operands {
		if i > 0 {
			out.AddLine(r.keyword(connective) + " ")
		}

		if op.enclosed {
			out.Merge(op.lines)
			continue
		}
		r.embed(out, op.lines)
	}

	return out
}

// enclosedNot reports whether expr renders with its own parentheses when it
// spans several lines: NOT (...) and [NOT] EXISTS (...).
func enclosedNot(expr *parser.NotExpression) bool {
	return expr.Not || expr.Predicate.Exists != nil
}

func (r *renderer) not(expr *parser.NotExpression) *Lines {
	predicate := r.predicate(expr.Predicate)
	switch {
	case !expr.Not:
		return predicate
	case expr.Predicate.Exists != nil:
		return NewLines(r.keyword(consts.KeywordNot) + " ").Merge(predicate)
	default:
		return r.embed(NewLines(r.keyword(consts.KeywordNot)+" "), predicate)
	}
}

// predicate formats a single boolean test. Parentheses around a nested boolean
// expression are dropped; they come back wherever the expression has to be put
// in a block.
func (r *renderer) predicate(p *parser.Predicate) *Lines {
	switch {
	case p.Exists != nil:
		return r.block(NewLines(r.keyword(consts.KeywordExists)+" "), r.query(p.Exists))
	case p.Comparison != nil:
		return r.comparison(p.Comparison)
	case p.Paren != nil:
		return r.boolean(p.Paren)
	default:
		return r.fallback("predicate", p.Tokens)
	}
}

// comparison formats a scalar test. Operators go through the operator spacing
// policy; IS, LIKE, BETWEEN and IN are always surrounded by single spaces.
func (r *renderer) comparison(c *parser.ComparisonPredicate) *Lines {
	out := r.embedScalar(NewLines(), c.Left)

	switch {
	case c.Compare != nil:
		if c.Compare.DistinctFrom != nil {
			out.AppendToLast(" " + r.keyword(consts.KeywordIs) + " ")
			if c.Compare.DistinctFrom.Not {
				out.AppendToLast(r.keyword(consts.KeywordNot) + " ")
			}
			out.AppendToLast(r.keyword(consts.KeywordDistinctFrom) + " ")
		} else {
			out.AppendToLast(r.operator(c.Compare.Operator))
		}
		return r.embedScalar(out, c.Compare.Right)

	case c.IsNull != nil:
		out.AppendToLast(" " + r.keyword(consts.KeywordIs))
		if c.IsNull.Not {
			out.AppendToLast(" " + r.keyword(consts.KeywordNot))
		}
		return out.AppendToLast(" " + r.keyword(consts.KeywordNull))

	case c.Like != nil:
		out.AppendToLast(r.negated(c.Like.Not, consts.KeywordLike))
		r.embedScalar(out, c.Like.Pattern)
		if c.Like.Escape != nil {
			out.AppendToLast(" " + r.keyword(consts.KeywordEscape) + " ")
			r.embedScalar(out, c.Like.Escape)
		}
		return out

	case c.Between != nil:
		// Operands are merged as they are, without blocks.
		out.AppendToLast(r.negated(c.Between.Not, consts.KeywordBetween))
		out.Merge(r.scalar(c.Between.Low))
		out.AppendToLast(" " + r.keyword(consts.KeywordAnd) + " ")
		return out.Merge(r.scalar(c.Between.High))

	case c.In != nil:
		out.AppendToLast(r.negated(c.In.Not, consts.KeywordIn))
		return r.in(out, c.In)
	}

	return out
}

// negated returns " [NOT] KEYWORD " for the infix tests.
func (r *renderer) negated(not bool, kw string) string {
	if not {
		return " " + r.keyword(consts.KeywordNot) + " " + r.keyword(kw) + " "
	}

	return " " + r.keyword(kw) + " "
}

// in appends the IN list or subquery to l. Short lists stay on the line;
// subqueries and lists with multi-line values become a block.
func (r *renderer) in(l *Lines, in *parser.InTest) *Lines {
	if in.Subquery != nil {
		return r.block(l, r.query(in.Subquery))
	}

	values := make([]*Lines, 0, len(in.Values))
	for _, value := range in.Values {
		values = append(values, r.scalar(value))
	}

	if list, ok := inlineList(values); ok {
		return l.AppendToLast("(" + list + ")")
	}

	return r.block(l, commaSeparated(values))
}
