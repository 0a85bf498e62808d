package clf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func (l label) String() string { return string(l) }

func TestValueKey(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		want   string
		wantOK bool
	}{
		{name: "absent", value: Value{}, wantOK: false},
		{name: "null", value: Null, wantOK: false},
		{name: "empty string", value: String(""), wantOK: false},
		{name: "string", value: String("lg"), want: "lg", wantOK: true},
		{name: "true", value: Bool(true), want: "true", wantOK: true},
		{name: "false", value: Bool(false), want: "false", wantOK: true},
		{name: "zero", value: Int(0), want: "0", wantOK: true},
		{name: "integer", value: Int(12), want: "12", wantOK: true},
		{name: "float", value: Number(0.25), want: "0.25", wantOK: true},
		{name: "NaN", value: Number(math.NaN()), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Key()
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{name: "nil", in: nil, want: Null},
		{name: "string", in: "sm", want: String("sm")},
		{name: "bool", in: false, want: Bool(false)},
		{name: "int", in: 3, want: Int(3)},
		{name: "int64", in: int64(7), want: Int(7)},
		{name: "uint8", in: uint8(2), want: Int(2)},
		{name: "float64", in: 1.5, want: Number(1.5)},
		{name: "value passthrough", in: Bool(true), want: Bool(true)},
		{name: "stringer", in: label("primary"), want: String("primary")},
		{name: "other", in: []int{1}, want: String("[1]")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueOf(tt.in))
		})
	}
}

func TestParseValue(t *testing.T) {
	assert.True(t, ParseValue("null").IsNull())
	assert.Equal(t, Bool(true), ParseValue("true"))
	assert.Equal(t, Bool(false), ParseValue("false"))
	assert.Equal(t, Int(0), ParseValue("0"))
	assert.Equal(t, Number(-2.5), ParseValue("-2.5"))
	assert.Equal(t, String("lg"), ParseValue("lg"))
	assert.Equal(t, String(""), ParseValue(""))
	assert.Equal(t, String("NaN"), ParseValue("NaN"))
	assert.Equal(t, String("Inf"), ParseValue("Inf"))
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "null", Null.String())
	assert.Equal(t, "lg", String("lg").String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "NaN", Number(math.NaN()).String())
	assert.Equal(t, "true", Bool(true).String())
}

func TestPropsGet(t *testing.T) {
	var nilProps Props
	assert.True(t, nilProps.Get("size").IsAbsent())

	p := Props{"size": String("lg"), "tone": Null}
	assert.Equal(t, "lg", p.Get("size").Str())
	assert.True(t, p.Get("tone").IsNull())
	assert.False(t, p.Get("tone").IsAbsent())
	assert.Equal(t, KindAbsent, p.Get("missing").Kind())
	assert.Equal(t, "", Int(4).Str())
}

func TestDefaults(t *testing.T) {
	d := Defaults(map[string]any{"size": "sm", "tone": nil, "level": 0})
	assert.Equal(t, String("sm"), d["size"])
	assert.True(t, d["tone"].IsNull())
	assert.Equal(t, Int(0), d["level"])
}
