package repo

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

var productColumns = map[query.Field]string{
	query.FieldID:             "id",
	query.FieldName:           "name",
	query.FieldWeight:         "weight",
	query.FieldColour:         "colour",
	query.FieldRG:             "rg",
	query.FieldDiff:           "diff",
	query.FieldLaneConditions: "lane_conditions",
	query.FieldCoverstock:     "coverstock",
	query.FieldCore:           "core",
	query.FieldPrice:          "price",
	query.FieldAvailable:      "is_available",
	query.FieldCategoryID:     "category_id",
}

var categoryColumns = map[query.Field]string{
	query.FieldID:               "id",
	query.FieldManufacturerName: "manufacturer_name",
}

// sqlBuilder accumulates positional arguments while a predicate is rendered.
type sqlBuilder struct {
	columns map[query.Field]string
	args    []any
}

func newSQLBuilder(columns map[query.Field]string) *sqlBuilder {
	return &sqlBuilder{columns: columns, args: []any{}}
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

// where renders p as a boolean SQL expression.
func (b *sqlBuilder) where(p query.Predicate) (string, error) {
	switch p.Op {
	case query.OpAll:
		return "TRUE", nil
	case query.OpAnd, query.OpOr:
		if len(p.Children) == 0 {
			if p.Op == query.OpAnd {
				return "TRUE", nil
			}
			return "FALSE", nil
		}
		parts := make([]string, 0, len(p.Children))
		for _, c := range p.Children {
			part, err := b.where(c)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
		sep := " AND "
		if p.Op == query.OpOr {
			sep = " OR "
		}
		return "(" + strings.Join(parts, sep) + ")", nil
	}

	col, ok := b.columns[p.Field]
	if !ok {
		return "", fmt.Errorf("sql filter: unmapped field %q", p.Field)
	}

	switch p.Op {
	case query.OpEq:
		return col + " = " + b.arg(p.Value), nil
	case query.OpGte:
		return col + " >= " + b.arg(p.Value), nil
	case query.OpLte:
		return col + " <= " + b.arg(p.Value), nil
	case query.OpIn:
		if len(p.Values) == 0 {
			return "FALSE", nil
		}
		placeholders := make([]string, len(p.Values))
		for i, v := range p.Values {
			placeholders[i] = b.arg(v)
		}
		return col + " IN (" + strings.Join(placeholders, ", ") + ")", nil
	case query.OpContains:
		term, _ := p.Value.(string)
		return col + " ILIKE " + b.arg("%"+escapeLike(term)+"%"), nil
	case query.OpEqualFold:
		s, _ := p.Value.(string)
		return "LOWER(" + col + ") = LOWER(" + b.arg(s) + ")", nil
	}
	return "", fmt.Errorf("sql filter: unsupported operator %q", p.Op)
}

// orderBy renders s with an id tie-break.
func (b *sqlBuilder) orderBy(s query.Sort) (string, error) {
	col, ok := b.columns[s.Field]
	if !ok {
		return "", fmt.Errorf("sql sort: unmapped field %q", s.Field)
	}
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	clause := " ORDER BY " + col + " " + dir
	if col != "id" {
		clause += ", id ASC"
	}
	return clause, nil
}

func (b *sqlBuilder) window(w query.Window) string {
	clause := ""
	if w.Limit > 0 {
		clause += " LIMIT " + b.arg(w.Limit)
	}
	if w.Offset > 0 {
		clause += " OFFSET " + b.arg(w.Offset)
	}
	return clause
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
