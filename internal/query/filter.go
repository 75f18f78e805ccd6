package query

// SearchFields are the product text fields a search term is matched against.
// A product matches when any one of them contains the term.
var SearchFields = []Field{
	FieldColour,
	FieldName,
	FieldLaneConditions,
	FieldCoverstock,
	FieldCore,
}

// CompileFilter builds the catalog browsing predicate for q. Unavailable
// products are always excluded.
func CompileFilter(q ProductQuery) Predicate {
	clauses := []Predicate{Eq(FieldAvailable, true)}

	if q.MinPrice != nil {
		clauses = append(clauses, Gte(FieldPrice, *q.MinPrice))
	}
	if q.MaxPrice != nil {
		clauses = append(clauses, Lte(FieldPrice, *q.MaxPrice))
	}
	if q.SearchTerm != "" {
		clauses = append(clauses, SearchClause(q.SearchTerm))
	}

	return And(clauses...)
}

// SearchClause ORs a case-insensitive containment test over SearchFields.
func SearchClause(term string) Predicate {
	alternatives := make([]Predicate, 0, len(SearchFields))
	for _, f := range SearchFields {
		alternatives = append(alternatives, Contains(f, term))
	}
	return Predicate{Op: OpOr, Children: alternatives}
}

// ManufacturerFilter selects categories whose manufacturer name contains
// name, ignoring case.
func ManufacturerFilter(name string) Predicate {
	return Contains(FieldManufacturerName, name)
}

// ProductsInCategories selects products belonging to any of ids.
func ProductsInCategories(ids []int) Predicate {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return In(FieldCategoryID, values...)
}

// LaneConditionFilter selects products whose lane conditions equal any of
// tokens, ignoring case.
func LaneConditionFilter(tokens []string) Predicate {
	alternatives := make([]Predicate, 0, len(tokens))
	for _, t := range tokens {
		alternatives = append(alternatives, EqualFold(FieldLaneConditions, t))
	}
	return Predicate{Op: OpOr, Children: alternatives}
}
