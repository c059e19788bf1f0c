// Package payload gives total, non-panicking access to loosely typed JSON
// documents decoded into map[string]any.
package payload

import (
	"math"
	"strconv"
	"strings"
)

// Map is a decoded JSON object. A nil Map is valid and behaves as empty.
type Map map[string]any

func AsMap(v any) (Map, bool) {
	switch typed := v.(type) {
	case Map:
		return typed, typed != nil
	case map[string]any:
		return Map(typed), typed != nil
	default:
		return nil, false
	}
}

// Lookup walks nested objects along path.
func (m Map) Lookup(path ...string) (any, bool) {
	if m == nil || len(path) == 0 {
		return nil, false
	}
	current := m
	for i, key := range path {
		raw, ok := current[key]
		if !ok || raw == nil {
			return nil, false
		}
		if i == len(path)-1 {
			return raw, true
		}
		next, ok := AsMap(raw)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

func (m Map) Has(path ...string) bool {
	_, ok := m.Lookup(path...)
	return ok
}

func (m Map) Map(path ...string) Map {
	raw, ok := m.Lookup(path...)
	if !ok {
		return nil
	}
	out, _ := AsMap(raw)
	return out
}

func (m Map) Slice(path ...string) []any {
	raw, ok := m.Lookup(path...)
	if !ok {
		return nil
	}
	out, _ := raw.([]any)
	return out
}

// Maps returns the object elements of the array at path, skipping anything else.
func (m Map) Maps(path ...string) []Map {
	items := m.Slice(path...)
	if len(items) == 0 {
		return nil
	}
	out := make([]Map, 0, len(items))
	for _, item := range items {
		if obj, ok := AsMap(item); ok {
			out = append(out, obj)
		}
	}
	return out
}

// First returns the first object element of the array at path.
func (m Map) First(path ...string) Map {
	for _, item := range m.Slice(path...) {
		if obj, ok := AsMap(item); ok {
			return obj
		}
	}
	return nil
}

func (m Map) String(path ...string) string {
	raw, ok := m.Lookup(path...)
	if !ok {
		return ""
	}
	out, _ := ToString(raw)
	return out
}

// FirstString returns the first non-empty string among sibling keys.
func (m Map) FirstString(keys ...string) string {
	for _, key := range keys {
		if v := m.String(key); v != "" {
			return v
		}
	}
	return ""
}

func (m Map) Float(path ...string) (float64, bool) {
	raw, ok := m.Lookup(path...)
	if !ok {
		return 0, false
	}
	return ToFloat(raw)
}

func (m Map) Int(path ...string) (int, bool) {
	v, ok := m.Float(path...)
	if !ok {
		return 0, false
	}
	return int(v), true
}

func (m Map) Bool(path ...string) (bool, bool) {
	raw, ok := m.Lookup(path...)
	if !ok {
		return false, false
	}
	switch typed := raw.(type) {
	case bool:
		return typed, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		if err != nil {
			return false, false
		}
		return parsed, true
	default:
		return false, false
	}
}

// ToString renders scalars as trimmed strings. Objects and arrays are absent.
func ToString(v any) (string, bool) {
	switch typed := v.(type) {
	case string:
		trimmed := strings.TrimSpace(typed)
		return trimmed, trimmed != ""
	case float64:
		return FormatNumber(typed), true
	case float32:
		return FormatNumber(float64(typed)), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

func ToFloat(v any) (float64, bool) {
	switch typed := v.(type) {
	case float64:
		return typed, !math.IsNaN(typed) && !math.IsInf(typed, 0)
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// FormatNumber prints integral values without a fraction.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func FirstNonEmpty(values ...string) string {
	for _, item := range values {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
