//go:build !integration

package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected Kind
	}{
		{
			name:     "nil is absent",
			input:    nil,
			expected: KindAbsent,
		},
		{
			name:     "plain string",
			input:    "hello",
			expected: KindString,
		},
		{
			name:     "date-shaped string becomes a date",
			input:    "2023-10-02",
			expected: KindDate,
		},
		{
			name:     "decoder timestamp becomes a date",
			input:    time.Date(2023, 10, 2, 0, 0, 0, 0, time.UTC),
			expected: KindDate,
		},
		{
			name:     "bool",
			input:    false,
			expected: KindBool,
		},
		{
			name:     "int",
			input:    7,
			expected: KindNumber,
		},
		{
			name:     "uint64",
			input:    uint64(7),
			expected: KindNumber,
		},
		{
			name:     "float",
			input:    1.5,
			expected: KindNumber,
		},
		{
			name:     "list",
			input:    []any{"a", "b"},
			expected: KindList,
		},
		{
			name:     "map",
			input:    map[string]any{"k": "v"},
			expected: KindMap,
		},
		{
			name:     "non-string-keyed map",
			input:    map[any]any{1: "v"},
			expected: KindMap,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromYAML(tt.input).Kind(), "Kind should match")
		})
	}
}

func TestFromYAML_DateParsing(t *testing.T) {
	v := FromYAML("2023-10-02")
	require.True(t, v.IsDate(), "date-shaped string should become a date")
	assert.Equal(t, "2023-10-02", v.Date().Format(DateLayout), "date payload should round-trip")

	notADate := FromYAML("2023-13-99")
	assert.Equal(t, KindString, notADate.Kind(), "invalid calendar date should stay a string")
}

func TestFromYAML_NestedConversion(t *testing.T) {
	v := FromYAML(map[string]any{
		"releases": []any{
			map[string]any{"releaseCycle": "1.0", "releaseDate": "2023-01-01"},
		},
	})
	require.Equal(t, KindMap, v.Kind())

	releases := v.Map()["releases"]
	require.Equal(t, KindList, releases.Kind())
	require.Len(t, releases.List(), 1)

	release := releases.List()[0]
	require.Equal(t, KindMap, release.Kind())
	assert.Equal(t, KindString, release.Map()["releaseCycle"].Kind())
	assert.Equal(t, KindDate, release.Map()["releaseDate"].Kind())
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{
			name:     "absent",
			value:    Absent,
			expected: "<absent>",
		},
		{
			name:     "string",
			value:    StringValue("3.12"),
			expected: "3.12",
		},
		{
			name:     "number without trailing zeros",
			value:    NumberValue(30),
			expected: "30",
		},
		{
			name:     "bool",
			value:    BoolValue(false),
			expected: "false",
		},
		{
			name:     "date",
			value:    DateValue(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
			expected: "2023-01-01",
		},
		{
			name:     "list",
			value:    ListValue(StringValue("a"), StringValue("b")),
			expected: "[a, b]",
		},
		{
			name:     "map keys are sorted",
			value:    MapValue(map[string]Value{"b": StringValue("2"), "a": StringValue("1")}),
			expected: "{a: 1, b: 2}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestProductAccessors(t *testing.T) {
	product := &Product{
		Name: "python",
		Fields: map[string]Value{
			"releases": ListValue(
				MapValue(map[string]Value{"releaseCycle": StringValue("3.12")}),
				StringValue("not a release"),
			),
			"customFields": ListValue(
				MapValue(map[string]Value{"name": StringValue("support")}),
			),
		},
	}

	releases := product.Releases()
	require.Len(t, releases, 1, "non-map release entries should be skipped")
	assert.Equal(t, "3.12", releases[0].Cycle())

	fields := product.CustomFields()
	require.Len(t, fields, 1)
	assert.Equal(t, "support", fields[0].Name())

	assert.True(t, product.Field("missing").IsAbsent(), "missing fields should be absent")
}
