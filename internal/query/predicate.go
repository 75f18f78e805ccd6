package query

// Field names a logical catalog attribute. Storage backends translate
// fields to their own column or document keys.
type Field string

const (
	FieldID               Field = "id"
	FieldName             Field = "name"
	FieldWeight           Field = "weight"
	FieldColour           Field = "colour"
	FieldRG               Field = "rg"
	FieldDiff             Field = "diff"
	FieldLaneConditions   Field = "laneConditions"
	FieldCoverstock       Field = "coverstock"
	FieldCore             Field = "core"
	FieldPrice            Field = "price"
	FieldAvailable        Field = "isAvailable"
	FieldCategoryID       Field = "categoryId"
	FieldManufacturerName Field = "manufacturerName"
)

// Op is the operator of a predicate node.
type Op string

const (
	// OpAll matches every record. It is the zero value of Op.
	OpAll Op = ""

	OpAnd Op = "and"
	OpOr  Op = "or"

	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
	OpIn  Op = "in"

	// OpContains is a case-insensitive literal substring match.
	OpContains Op = "contains"
	// OpEqualFold is a case-insensitive literal equality match.
	OpEqualFold Op = "equalFold"
)

// Predicate is a node of a boolean filter tree. Leaf nodes compare Field with
// Value (or Values for OpIn); OpAnd and OpOr combine Children.
type Predicate struct {
	Op       Op
	Field    Field
	Value    any
	Values   []any
	Children []Predicate
}

// All matches every record.
func All() Predicate { return Predicate{} }

// And combines ps into a conjunction. A single child is returned unwrapped.
func And(ps ...Predicate) Predicate {
	if len(ps) == 1 {
		return ps[0]
	}
	return Predicate{Op: OpAnd, Children: ps}
}

// Or combines ps into a disjunction. A single child is returned unwrapped.
func Or(ps ...Predicate) Predicate {
	if len(ps) == 1 {
		return ps[0]
	}
	return Predicate{Op: OpOr, Children: ps}
}

func Eq(f Field, v any) Predicate  { return Predicate{Op: OpEq, Field: f, Value: v} }
func Gte(f Field, v any) Predicate { return Predicate{Op: OpGte, Field: f, Value: v} }
func Lte(f Field, v any) Predicate { return Predicate{Op: OpLte, Field: f, Value: v} }

func In(f Field, vs ...any) Predicate {
	return Predicate{Op: OpIn, Field: f, Values: vs}
}

func Contains(f Field, term string) Predicate {
	return Predicate{Op: OpContains, Field: f, Value: term}
}

func EqualFold(f Field, s string) Predicate {
	return Predicate{Op: OpEqualFold, Field: f, Value: s}
}

// Matches evaluates the predicate against a record exposed through get.
// It backs the in-memory store and gives the other backends a reference
// semantics to agree with.
func (p Predicate) Matches(get func(Field) any) bool {
	switch p.Op {
	case OpAll:
		return true
	case OpAnd:
		for _, c := range p.Children {
			if !c.Matches(get) {
				return false
			}
		}
		return true
	case OpOr:
		for _, c := range p.Children {
			if c.Matches(get) {
				return true
			}
		}
		return false
	case OpEq:
		c, ok := Compare(get(p.Field), p.Value)
		return ok && c == 0
	case OpGte:
		c, ok := Compare(get(p.Field), p.Value)
		return ok && c >= 0
	case OpLte:
		c, ok := Compare(get(p.Field), p.Value)
		return ok && c <= 0
	case OpIn:
		v := get(p.Field)
		for _, candidate := range p.Values {
			if c, ok := Compare(v, candidate); ok && c == 0 {
				return true
			}
		}
		return false
	case OpContains:
		s, _ := get(p.Field).(string)
		term, _ := p.Value.(string)
		return containsFold(s, term)
	case OpEqualFold:
		s, _ := get(p.Field).(string)
		other, _ := p.Value.(string)
		return equalFold(s, other)
	}
	return false
}
