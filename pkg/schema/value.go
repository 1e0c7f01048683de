// Package schema defines the data model for product lifecycle records: the
// Product/Release/CustomField shapes and the closed Value variant type that
// every field assertion pattern-matches on.
package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindList
	KindMap
)

// String returns the human-readable name of the kind, used in error reasons.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindDate:
		return "date"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// DateLayout is the wire format for lifecycle dates.
const DateLayout = "2006-01-02"

// Value is a closed variant over the types a record field may hold.
// Validation rules switch on Kind instead of probing runtime types, so a
// field can only ever be one of: absent, string, number, boolean, date,
// list of values, or map of values.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	date time.Time
	list []Value
	mapv map[string]Value
}

// Absent is the zero Value, representing a field that is not present.
var Absent = Value{}

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// DateValue wraps a calendar date. The time component is discarded.
func DateValue(t time.Time) Value {
	return Value{kind: KindDate, date: t.Truncate(24 * time.Hour)}
}

// ListValue wraps a list of values.
func ListValue(items ...Value) Value { return Value{kind: KindList, list: items} }

// MapValue wraps a map of values.
func MapValue(m map[string]Value) Value { return Value{kind: KindMap, mapv: m} }

// FromYAML converts a value decoded from YAML into a Value. Unquoted YAML
// dates arrive either as time.Time (decoder timestamps) or as strings in
// DateLayout; both become KindDate. Anything unrecognized degrades to its
// string rendering so validation can still name the offending value.
func FromYAML(v any) Value {
	switch x := v.(type) {
	case nil:
		return Absent
	case string:
		if t, err := time.Parse(DateLayout, x); err == nil {
			return DateValue(t)
		}
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case int:
		return NumberValue(float64(x))
	case int64:
		return NumberValue(float64(x))
	case uint64:
		return NumberValue(float64(x))
	case float64:
		return NumberValue(x)
	case time.Time:
		return DateValue(x)
	case []any:
		items := make([]Value, 0, len(x))
		for _, item := range x {
			items = append(items, FromYAML(item))
		}
		return ListValue(items...)
	case map[string]any:
		m := make(map[string]Value, len(x))
		for k, item := range x {
			m[k] = FromYAML(item)
		}
		return MapValue(m)
	case map[any]any:
		m := make(map[string]Value, len(x))
		for k, item := range x {
			m[fmt.Sprint(k)] = FromYAML(item)
		}
		return MapValue(m)
	default:
		return StringValue(fmt.Sprint(x))
	}
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the field was not present.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsDate reports whether the value is an actual date. Boolean lifecycle
// values ("not applicable") are not dates and are exempt from comparisons.
func (v Value) IsDate() bool { return v.kind == KindDate }

// Str returns the string payload; zero for other kinds.
func (v Value) Str() string { return v.str }

// Num returns the numeric payload; zero for other kinds.
func (v Value) Num() float64 { return v.num }

// Bool returns the boolean payload; false for other kinds.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Date returns the date payload; zero time for other kinds.
func (v Value) Date() time.Time { return v.date }

// List returns the list payload; nil for other kinds.
func (v Value) List() []Value { return v.list }

// Map returns the map payload; nil for other kinds.
func (v Value) Map() map[string]Value { return v.mapv }

// String renders the value for error messages.
func (v Value) String() string {
	switch v.kind {
	case KindAbsent:
		return "<absent>"
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.date.Format(DateLayout)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		keys := make([]string, 0, len(v.mapv))
		for k := range v.mapv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.mapv[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return "<unknown>"
}
