package clf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies what a Value holds.
type Kind uint8

// Value kinds. The zero Value is KindAbsent.
const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
)

// Value is an option value chosen by a caller: a string, a number, a
// boolean, an explicit null, or nothing at all.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// Null is the explicit null value.
var Null = Value{kind: KindNull}

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a numeric value from an integer.
func Int(i int) Value { return Number(float64(i)) }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v carries no value.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// IsNull reports whether v is the explicit null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string held by v, or "" for any other kind.
func (v Value) Str() string {
	if v.kind == KindString {
		return v.str
	}
	return ""
}

// Key returns the variant lookup key for v. ok is false for the falsy
// values (absent, null, "", NaN), which defer to the default.
// Booleans and zero are always meaningful keys.
func (v Value) Key() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, v.str != ""
	case KindBool:
		return strconv.FormatBool(v.b), true
	case KindNumber:
		if math.IsNaN(v.num) {
			return "", false
		}
		if v.num == 0 {
			return "0", true
		}
		return formatNumber(v.num), true
	}
	return "", false
}

// String formats v for display.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ValueOf converts a decoded YAML, JSON or TOML scalar into a Value.
// nil becomes Null; unsupported types are formatted as strings.
func ValueOf(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case float32:
		return Number(float64(t))
	case float64:
		return Number(t)
	case fmt.Stringer:
		return String(t.String())
	}
	return String(fmt.Sprint(x))
}

// ParseValue interprets command-line text: "null", "true", "false" and
// numerals get their own kinds, anything else is a string.
func ParseValue(s string) Value {
	switch strings.TrimSpace(s) {
	case "null":
		return Null
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}
	return String(s)
}

// Props holds the option values chosen for one resolver call.
type Props map[string]Value

// Get returns the value for name, or an absent Value.
func (p Props) Get(name string) Value {
	return p[name]
}
