package entity

import (
	"math"
	"strconv"
	"strings"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

// MatchesFilter checks if a record matches every criterion using loose equality.
// A nil criterion matches a nil or absent field.
func MatchesFilter(rec domain.Record, criteria map[string]interface{}) bool {
	for field, expected := range criteria {
		actual, exists := rec[field]
		if !exists {
			if expected == nil {
				continue
			}
			return false
		}
		if !LooseEqual(actual, expected) {
			return false
		}
	}
	return true
}

// LooseEqual compares two decoded values with type coercion between numbers,
// numeric strings and booleans. Strings compare case-sensitively; slices and
// maps never compare equal.
func LooseEqual(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as == bs
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return ab == bb
		}
	}

	switch a.(type) {
	case []interface{}, map[string]interface{}, domain.Record:
		return false
	}
	switch b.(type) {
	case []interface{}, map[string]interface{}, domain.Record:
		return false
	}

	an, ok1 := toNumber(a)
	bn, ok2 := toNumber(b)
	if !ok1 || !ok2 {
		return false
	}
	if math.IsNaN(an) || math.IsNaN(bn) {
		return false
	}
	return an == bn
}

// toNumber coerces a scalar to float64. Blank strings are 0; other non-numeric
// strings are NaN.
func toNumber(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), true
		}
		return f, true
	}
	return ToFloat64(v)
}

// ToFloat64 converts various numeric types to float64 for comparison
func ToFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
