package format

import (
	"strings"

	"github.com/jeannemas/tsql-formatter/pkg/consts"
	"github.com/jeannemas/tsql-formatter/pkg/parser"
)

var setOperators = map[string]string{
	"UNION":     consts.KeywordUnion,
	"EXCEPT":    consts.KeywordExcept,
	"INTERSECT": consts.KeywordIntersect,
}

// selectStatement formats a query statement with its common table expressions.
func (r *renderer) selectStatement(stmt *parser.SelectStatement) *Lines {
	query := r.query(stmt.Query)
	if stmt.With == nil {
		return query
	}

	return r.with(stmt.With).Append(query)
}

// with formats the CTEs of a statement. Each CTE gets a header line, an AS ( line,
// its indented body and a closing parenthesis.
func (r *renderer) with(with *parser.WithClause) *Lines {
	var out *Lines
	for _, cte := range with.CTEs {
		header := r.identifier(cte.Name)
		if len(cte.Columns) > 0 {
			cols := make([]string, 0, len(cte.Columns))
			for _, col := range cte.Columns {
				cols = append(cols, r.identifier(col))
			}
			header += " (" + strings.Join(cols, ", ") + ")"
		}

		if out == nil {
			out = NewLines(r.keyword(consts.KeywordWith) + " " + header)
		} else {
			out.AppendToLast(",")
			out.AddLine(header)
		}

		out.AddLine(r.keyword(consts.KeywordAs) + " ")
		r.block(out, r.query(cte.Query))
	}

	return out
}

// query formats query terms joined by set operators, followed by ORDER BY.
func (r *renderer) query(q *parser.QueryExpression) *Lines {
	out := r.queryTerm(q.First)
	for _, op := range q.Rest {
		kw := setOperators[strings.ToUpper(op.Operator)]
		if op.All {
			kw += " " + consts.KeywordAll
		}

		out.AddLine(r.keyword(kw))
		out.Append(r.queryTerm(op.Term))
	}

	if q.OrderBy != nil {
		out.Append(r.orderBy(q.OrderBy))
	}

	return out
}

func (r *renderer) queryTerm(term *parser.QueryTerm) *Lines {
	switch {
	case term.Spec != nil:
		return r.querySpec(term.Spec)
	case term.Paren != nil:
		return r.block(NewLines(), r.query(term.Paren))
	default:
		return r.fallback("query term", term.Tokens)
	}
}

// querySpec formats a single SELECT block. Every clause starts on a new line.
func (r *renderer) querySpec(spec *parser.QuerySpecification) *Lines {
	out := NewLines(r.keyword(consts.KeywordSelect))
	if spec.Distinct {
		out.AppendToLast(" " + r.keyword(consts.KeywordDistinct))
	}

	if spec.Top != nil {
		r.top(out, spec.Top)
	}

	items := make([]*Lines, 0, len(spec.Items))
	for _, item := range spec.Items {
		items = append(items, r.selectItem(item))
	}
	out.Append(commaSeparated(items).Indent(r.options.Indent, 1))

	if spec.Into != nil {
		out.AddLine(r.keyword(consts.KeywordInto) + " " + r.identifier(spec.Into.Parts...))
	}

	if spec.From != nil {
		out.Append(r.from(spec.From))
	}

	if spec.Where != nil {
		out.Append(r.clause(consts.KeywordWhere, r.boolean(spec.Where)))
	}

	if spec.GroupBy != nil {
		out.Append(r.groupBy(spec.GroupBy))
	}

	if spec.Having != nil {
		out.Append(r.clause(consts.KeywordHaving, r.boolean(spec.Having)))
	}

	return out
}

// top appends TOP (n) [PERCENT] [WITH TIES] to the SELECT line. The value is
// always parenthesized.
func (r *renderer) top(l *Lines, top *parser.TopClause) {
	l.AppendToLast(" " + r.keyword(consts.KeywordTop) + " ")

	value := r.scalar(top.Value)
	if value.IsMultiLine() {
		r.block(l, value)
	} else {
		l.AppendToLast("(" + value.First() + ")")
	}

	if top.Percent {
		l.AppendToLast(" " + r.keyword(consts.KeywordPercent))
	}

	if top.WithTies {
		l.AppendToLast(" " + r.keyword(consts.KeywordWithTies))
	}
}

func (r *renderer) selectItem(item *parser.SelectItem) *Lines {
	var out *Lines
	switch {
	case item.Star != nil:
		out = NewLines(r.star(item.Star))
	case item.Expression != nil:
		out = r.scalar(item.Expression)
	default:
		return r.fallback("select item", item.Tokens)
	}

	if item.Alias != "" {
		out.AppendToLast(" " + r.keyword(consts.KeywordAs) + " " + r.identifier(item.Alias))
	}

	return out
}

// star formats * with its optional qualifier.
func (r *renderer) star(star *parser.StarExpression) string {
	if len(star.Qualifier) == 0 {
		return "*"
	}

	return r.identifier(star.Qualifier...) + ".*"
}

func (r *renderer) groupBy(groupBy *parser.GroupByClause) *Lines {
	items := make([]*Lines, 0, len(groupBy.Items))
	for _, item := range groupBy.Items {
		items = append(items, r.scalar(item))
	}

	out := r.clause(consts.KeywordGroupBy, commaSeparated(items))
	if groupBy.Modifier != "" {
		out.AddLine(r.keyword(consts.KeywordWith) + " " + r.keyword(groupBy.Modifier))
	}

	return out
}

func (r *renderer) orderBy(orderBy *parser.OrderByClause) *Lines {
	items := make([]*Lines, 0, len(orderBy.Items))
	for _, item := range orderBy.Items {
		lines := r.scalar(item.Expression)
		if item.Direction != "" {
			lines.AppendToLast(" " + r.keyword(item.Direction))
		}
		items = append(items, lines)
	}

	out := r.clause(consts.KeywordOrderBy, commaSeparated(items))
	if orderBy.Offset != nil {
		out.Append(r.offsetFetch(orderBy.Offset))
	}

	return out
}

// offsetFetch formats OFFSET n ROWS and FETCH NEXT m ROWS ONLY, each on its own
// line. A value spanning several lines is put in an indented block.
func (r *renderer) offsetFetch(clause *parser.OffsetFetchClause) *Lines {
	out := r.embedScalar(NewLines(r.keyword(consts.KeywordOffset)+" "), clause.Offset)
	out.AppendToLast(" " + r.keyword(consts.KeywordRows))

	if clause.Fetch != nil {
		fetch := r.embedScalar(NewLines(r.keyword(consts.KeywordFetchNext)+" "), clause.Fetch)
		fetch.AppendToLast(" " + r.keyword(consts.KeywordRowsOnly))
		out.Append(fetch)
	}

	return out
}
