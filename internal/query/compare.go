package query

import (
	"cmp"
	"strings"
)

// Compare orders two scalar values. Numbers compare numerically regardless
// of their Go type, strings byte-wise and booleans false before true.
// ok is false when the values are not comparable.
func Compare(a, b any) (c int, ok bool) {
	if x, isNum := toFloat(a); isNum {
		y, isNum := toFloat(b)
		if !isNum {
			return 0, false
		}
		return cmp.Compare(x, y), true
	}

	switch x := a.(type) {
	case string:
		y, isStr := b.(string)
		if !isStr {
			return 0, false
		}
		return strings.Compare(x, y), true
	case bool:
		y, isBool := b.(bool)
		if !isBool {
			return 0, false
		}
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		default:
			return 1, true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
