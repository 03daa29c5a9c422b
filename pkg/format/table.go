package format

import (
	"strings"

	"github.com/jeannemas/tsql-formatter/pkg/consts"
	"github.com/jeannemas/tsql-formatter/pkg/parser"
)

// from formats the FROM keyword followed by its table sources, one per line and
// indented one level.
func (r *renderer) from(from *parser.FromClause) *Lines {
	sources := make([]*Lines, 0, len(from.Tables))
	for _, source := range from.Tables {
		sources = append(sources, r.tableSource(source))
	}

	return r.clause(consts.KeywordFrom, commaSeparated(sources))
}

// tableSource formats a table followed by its joins. Each join starts a new
// line with the join keyword, its ON keyword is indented one level and the
// condition two.
func (r *renderer) tableSource(source *parser.TableSource) *Lines {
	out := r.tableReference(source.Primary)
	for _, join := range source.Joins {
		out.AddLine(r.joinOperator(join.Operator) + " ")
		out.Merge(r.tableReference(join.Table))

		if join.Condition != nil {
			out.AddLine(r.indent(1) + r.keyword(consts.KeywordOn))
			out.Append(r.boolean(join.Condition).Indent(r.options.Indent, 2))
		}
	}

	return out
}

// joinOperator returns the canonical spelling of a join: a bare JOIN is an
// INNER JOIN and outer joins always spell out OUTER.
func (r *renderer) joinOperator(op *parser.JoinOperator) string {
	switch {
	case op.CrossJoin:
		return r.keyword(consts.KeywordCrossJoin)
	case op.CrossApply:
		return r.keyword(consts.KeywordCrossApply)
	case op.OuterApply:
		return r.keyword(consts.KeywordOuterApply)
	}

	switch strings.ToUpper(op.Qualified) {
	case "LEFT":
		return r.keyword(consts.KeywordLeftJoin)
	case "RIGHT":
		return r.keyword(consts.KeywordRightJoin)
	case "FULL":
		return r.keyword(consts.KeywordFullJoin)
	default:
		return r.keyword(consts.KeywordInnerJoin)
	}
}

// tableReference formats a table, view, table variable, table valued function
// or derived table with its alias and table hints.
func (r *renderer) tableReference(ref *parser.TableReference) *Lines {
	var out *Lines
	switch {
	case ref.Derived != nil:
		out = r.block(NewLines(), r.query(ref.Derived))
	case ref.Function != nil:
		out = r.function(ref.Function)
	case ref.Variable != "":
		out = NewLines(ref.Variable)
	case ref.Object != nil:
		out = NewLines(r.identifier(ref.Object.Parts...))
	default:
		return r.fallback("table reference", ref.Tokens)
	}

	if ref.Alias != "" {
		out.AppendToLast(" " + r.keyword(consts.KeywordAs) + " " + r.identifier(ref.Alias))
	}

	if len(ref.Hints) > 0 {
		hints := make([]string, 0, len(ref.Hints))
		for _, hint := range ref.Hints {
			hints = append(hints, r.keyword(hint))
		}
		out.AppendToLast(" " + r.keyword(consts.KeywordWith) + " (" + strings.Join(hints, ", ") + ")")
	}

	return out
}
