// Package records holds the untyped key/value records read from a data
// source before validation turns them into domain models.
package records

import (
	"encoding/json"
	"math"
)

// Record is one flat key/value object as decoded from a source.
// A nil Record stands for a source element that was not an object.
type Record map[string]any

// Number returns the value at key as a float64 when it holds any numeric kind.
func (r Record) Number(key string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	return toFloat(r[key])
}

// String returns the value at key when it is a string.
func (r Record) String(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r[key].(string)
	return s, ok
}

// Bool returns the value at key when it is a boolean.
func (r Record) Bool(key string) (bool, bool) {
	if r == nil {
		return false, false
	}
	b, ok := r[key].(bool)
	return b, ok
}

// IsNumber reports whether v is a numeric value. Strings and booleans are not.
func IsNumber(v any) bool {
	_, ok := toFloat(v)
	return ok
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
