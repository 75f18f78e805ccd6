package repo

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

var productKeys = map[query.Field]string{
	query.FieldID:             "_id",
	query.FieldName:           "Name",
	query.FieldWeight:         "Weight",
	query.FieldColour:         "Colour",
	query.FieldRG:             "RG",
	query.FieldDiff:           "Diff",
	query.FieldLaneConditions: "LaneConditions",
	query.FieldCoverstock:     "Coverstock",
	query.FieldCore:           "Core",
	query.FieldPrice:          "Price",
	query.FieldAvailable:      "IsAvailable",
	query.FieldCategoryID:     "CategoryId",
}

var categoryKeys = map[query.Field]string{
	query.FieldID:               "_id",
	query.FieldManufacturerName: "ManufacturerName",
}

// matchNothing is used for empty disjunctions, which MongoDB rejects.
var matchNothing = bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: bson.A{}}}}}

// mongoFilter compiles p into a MongoDB filter document.
// Text comparisons are literal: the term is regex-quoted.
func mongoFilter(p query.Predicate, keys map[query.Field]string) (bson.D, error) {
	switch p.Op {
	case query.OpAll:
		return bson.D{}, nil
	case query.OpAnd, query.OpOr:
		if len(p.Children) == 0 {
			if p.Op == query.OpAnd {
				return bson.D{}, nil
			}
			return matchNothing, nil
		}
		parts := make(bson.A, 0, len(p.Children))
		for _, c := range p.Children {
			doc, err := mongoFilter(c, keys)
			if err != nil {
				return nil, err
			}
			parts = append(parts, doc)
		}
		return bson.D{{Key: "$" + string(p.Op), Value: parts}}, nil
	}

	key, ok := keys[p.Field]
	if !ok {
		return nil, fmt.Errorf("mongo filter: unmapped field %q", p.Field)
	}

	switch p.Op {
	case query.OpEq:
		return bson.D{{Key: key, Value: p.Value}}, nil
	case query.OpGte:
		return bson.D{{Key: key, Value: bson.D{{Key: "$gte", Value: p.Value}}}}, nil
	case query.OpLte:
		return bson.D{{Key: key, Value: bson.D{{Key: "$lte", Value: p.Value}}}}, nil
	case query.OpIn:
		values := bson.A{}
		values = append(values, p.Values...)
		return bson.D{{Key: key, Value: bson.D{{Key: "$in", Value: values}}}}, nil
	case query.OpContains:
		return bson.D{{Key: key, Value: literalRegex(p.Value, "", "")}}, nil
	case query.OpEqualFold:
		return bson.D{{Key: key, Value: literalRegex(p.Value, "^", "$")}}, nil
	}
	return nil, fmt.Errorf("mongo filter: unsupported operator %q", p.Op)
}

func literalRegex(v any, prefix, suffix string) primitive.Regex {
	s, _ := v.(string)
	return primitive.Regex{Pattern: prefix + regexp.QuoteMeta(s) + suffix, Options: "i"}
}

// mongoSort orders by s, then by _id so that paging is stable.
func mongoSort(s query.Sort, keys map[query.Field]string) (bson.D, error) {
	key, ok := keys[s.Field]
	if !ok {
		return nil, fmt.Errorf("mongo sort: unmapped field %q", s.Field)
	}

	dir := 1
	if s.Descending {
		dir = -1
	}
	sort := bson.D{{Key: key, Value: dir}}
	if key != "_id" {
		sort = append(sort, bson.E{Key: "_id", Value: 1})
	}
	return sort, nil
}
