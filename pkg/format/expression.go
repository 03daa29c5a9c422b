package format

import (
	"strings"

	"github.com/jeannemas/tsql-formatter/pkg/consts"
	"github.com/jeannemas/tsql-formatter/pkg/parser"
	"github.com/jeannemas/tsql-formatter/pkg/utils"
)

// scalar formats an additive chain. A lone operand is returned as is; with
// operators present, every operand spanning several lines is put in a block.
func (r *renderer) scalar(expr *parser.ScalarExpression) *Lines {
	if len(expr.Rest) == 0 {
		return r.term(expr.Left)
	}

	out := r.embedOperand(NewLines(), r.term(expr.Left), enclosedTerm(expr.Left))
	for _, op := range expr.Rest {
		right := r.term(op.Right)
		out.AppendToLast(r.arithmetic(op.Operator, right))
		r.embedOperand(out, right, enclosedTerm(op.Right))
	}

	return out
}

// term formats a multiplicative chain.
func (r *renderer) term(t *parser.Term) *Lines {
	if len(t.Rest) == 0 {
		return r.factor(t.Left)
	}

	out := r.embedOperand(NewLines(), r.factor(t.Left), enclosedFactor(t.Left))
	for _, op := range t.Rest {
		right := r.factor(op.Right)
		out.AppendToLast(r.arithmetic(op.Operator, right))
		r.embedOperand(out, right, enclosedFactor(op.Right))
	}

	return out
}

// arithmetic renders an arithmetic operator. Dense spacing must not put two
// minus signs next to each other since "--" starts a comment.
func (r *renderer) arithmetic(op string, right *Lines) string {
	rendered := r.operator(op)
	if strings.HasSuffix(rendered, "-") && strings.HasPrefix(right.First(), "-") {
		rendered += " "
	}

	return rendered
}

func (r *renderer) embedOperand(l, child *Lines, enclosed bool) *Lines {
	if enclosed {
		return l.Merge(child)
	}

	return r.embed(l, child)
}

// embedScalar embeds expr into l, putting it in a block when it spans several
// lines and does not already carry its own parentheses.
func (r *renderer) embedScalar(l *Lines, expr *parser.ScalarExpression) *Lines {
	return r.embedOperand(l, r.scalar(expr), enclosedScalar(expr))
}

func enclosedScalar(expr *parser.ScalarExpression) bool {
	return len(expr.Rest) == 0 && enclosedTerm(expr.Left)
}

func enclosedTerm(t *parser.Term) bool {
	return len(t.Rest) == 0 && enclosedFactor(t.Left)
}

// enclosedFactor reports whether f renders wrapped in its own parentheses.
func enclosedFactor(f *parser.Factor) bool {
	if f.Sign != "" || f.Collation != "" || f.TimeZone != nil {
		return false
	}

	return f.Primary.Subquery != nil || f.Primary.Paren != nil
}

func (r *renderer) factor(f *parser.Factor) *Lines {
	out := NewLines(f.Sign).Merge(r.primary(f.Primary))

	if f.Collation != "" {
		out.AppendToLast(" " + r.keyword(consts.KeywordCollate) + " " + f.Collation)
	}

	if f.TimeZone != nil {
		out.AppendToLast(" " + r.keyword(consts.KeywordAtTimeZone) + " ")
		out.Merge(r.primary(f.TimeZone))
	}

	return out
}

func (r *renderer) primary(p *parser.Primary) *Lines {
	switch {
	case p.Case != nil:
		return r.caseExpression(p.Case)
	case p.Cast != nil:
		return r.cast(p.Cast)
	case p.Convert != nil:
		return r.convert(p.Convert)
	case p.Subquery != nil:
		return r.block(NewLines(), r.query(p.Subquery))
	case p.Paren != nil:
		inner := r.scalar(p.Paren)
		if inner.IsMultiLine() {
			return r.block(NewLines(), inner)
		}
		return NewLines("(" + inner.First() + ")")
	case p.Function != nil:
		return r.function(p.Function)
	case p.Literal != nil:
		return NewLines(r.literal(p.Literal))
	case p.Niladic != "":
		return NewLines(r.keyword(p.Niladic))
	case p.Variable != "":
		return NewLines(p.Variable)
	case p.Column != nil:
		return NewLines(r.identifier(p.Column.Parts...))
	default:
		return r.fallback("scalar", p.Tokens)
	}
}

// literal formats a constant. NULL and DEFAULT are keywords, everything else
// keeps its source spelling.
func (r *renderer) literal(lit *parser.Literal) string {
	switch {
	case lit.Null:
		return r.keyword(consts.KeywordNull)
	case lit.Default:
		return r.keyword(consts.KeywordDefault)
	case strings.HasPrefix(lit.Value, "n'"):
		return "N" + lit.Value[1:]
	default:
		return lit.Value
	}
}

// function formats a function call. System functions are cased like keywords,
// user defined functions are identifiers.
func (r *renderer) function(fn *parser.FunctionCall) *Lines {
	name := r.identifier(fn.Name...)
	if len(fn.Name) == 1 {
		bare := strings.ToUpper(utils.UnquoteIdentifier(fn.Name[0]))
		if _, ok := consts.BuiltinFunctions[bare]; ok {
			name = r.keyword(bare)
		}
	}

	var args []*Lines
	switch {
	case fn.Star:
		args = []*Lines{NewLines("*")}
	default:
		for _, arg := range fn.Args {
			args = append(args, r.scalar(arg))
		}
		if fn.Distinct && len(args) > 0 {
			args[0] = NewLines(r.keyword(consts.KeywordDistinct) + " ").Merge(args[0])
		}
	}

	out := r.call(name, args)
	if fn.Over != nil {
		out.AppendToLast(" ")
		out.Merge(r.fallback("window", fn.Over.Tokens))
	}

	return out
}

// call formats name(args). Arguments stay on one line unless one of them spans
// several lines, in which case they are stacked in a block.
func (r *renderer) call(name string, args []*Lines) *Lines {
	if list, ok := inlineList(args); ok {
		return NewLines(name + "(" + list + ")")
	}

	return r.block(NewLines(name), commaSeparated(args))
}

// caseExpression formats CASE with every WHEN arm on its own line and its THEN
// result indented below it.
func (r *renderer) caseExpression(c *parser.CaseExpression) *Lines {
	out := NewLines(r.keyword(consts.KeywordCase))
	if c.Input != nil {
		out.AppendToLast(" ")
		r.embedScalar(out, c.Input)
	}

	for _, when := range c.Whens {
		arm := NewLines(r.keyword(consts.KeywordWhen) + " ")
		if when.Condition != nil {
			r.embed(arm, r.boolean(when.Condition))
		} else {
			r.embedScalar(arm, when.Value)
		}

		then := r.embedScalar(NewLines(r.keyword(consts.KeywordThen)+" "), when.Result)
		arm.Append(then.Indent(r.options.Indent, 1))
		out.Append(arm.Indent(r.options.Indent, 1))
	}

	if c.Else != nil {
		els := NewLines(r.keyword(consts.KeywordElse)).Append(r.scalar(c.Else).Indent(r.options.Indent, 1))
		out.Append(els.Indent(r.options.Indent, 1))
	}

	return out.AddLine(r.keyword(consts.KeywordEnd))
}

// cast formats CAST(expr AS type) and TRY_CAST.
func (r *renderer) cast(c *parser.CastExpression) *Lines {
	name := r.keyword(consts.KeywordCast)
	if c.Try {
		name = r.keyword(consts.KeywordTryCast)
	}

	arg := r.scalar(c.Expression)
	arg.AppendToLast(" " + r.keyword(consts.KeywordAs) + " " + r.dataType(c.Type))

	return r.call(name, []*Lines{arg})
}

// convert formats CONVERT(type, expr[, style]) and TRY_CONVERT.
func (r *renderer) convert(c *parser.ConvertExpression) *Lines {
	name := r.keyword(consts.KeywordConvert)
	if c.Try {
		name = r.keyword(consts.KeywordTryConvert)
	}

	args := []*Lines{NewLines(r.dataType(c.Type)), r.scalar(c.Expression)}
	if c.Style != nil {
		args = append(args, r.scalar(c.Style))
	}

	return r.call(name, args)
}

// dataType formats type[(n[, m])] or type(MAX). Built-in type names are cased
// like keywords, user defined types are identifiers.
func (r *renderer) dataType(t *parser.DataType) string {
	name := r.identifier(t.Name...)
	if len(t.Name) == 1 {
		bare := strings.ToUpper(utils.UnquoteIdentifier(t.Name[0]))
		if _, ok := consts.BuiltinTypes[bare]; ok {
			name = r.keyword(bare)
		}
	}

	switch {
	case t.Max:
		return name + "(" + r.keyword(consts.KeywordMax) + ")"
	case len(t.Params) > 0:
		return name + "(" + strings.Join(t.Params, ", ") + ")"
	default:
		return name
	}
}
