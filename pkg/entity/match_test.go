package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adfharrison1/go-voyage/pkg/domain"
)

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b interface{}
		want bool
	}{
		{"equal strings", "Mysore", "Mysore", true},
		{"strings are case-sensitive", "Mysore", "mysore", false},
		{"int and float", 42, 42.0, true},
		{"different numbers", 42, 43, false},
		{"numeric string and number", "5", float64(5), true},
		{"number and numeric string", int64(5), "5.0", true},
		{"blank string is zero", "  ", 0, true},
		{"non-numeric string and number", "five", 5, false},
		{"true and one", true, 1, true},
		{"false and zero string", false, "0", true},
		{"true and true", true, true, true},
		{"true and false", true, false, false},
		{"nil and nil", nil, nil, true},
		{"nil and zero", nil, 0, false},
		{"nil and empty string", "", nil, false},
		{"slices never match", []interface{}{"a"}, []interface{}{"a"}, false},
		{"maps never match", map[string]interface{}{}, map[string]interface{}{}, false},
		{"NaN string", "abc", "abc2", false},
		{"int16 and float", int16(2), 2.0, true},
		{"uint8 and numeric string", uint8(2), "2", true},
		{"int8 and true", int8(1), true, true},
		{"uint16 and int", uint16(7), 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooseEqual(tt.a, tt.b))
			assert.Equal(t, tt.want, LooseEqual(tt.b, tt.a))
		})
	}
}

func TestMatchesFilter(t *testing.T) {
	rec := domain.Record{"name": "Goa Trip", "number_of_days": float64(4), "status": "planning"}
	assert.True(t, MatchesFilter(rec, map[string]interface{}{"name": "Goa Trip"}))
	assert.True(t, MatchesFilter(rec, map[string]interface{}{"number_of_days": 4}))
	assert.True(t, MatchesFilter(rec, map[string]interface{}{"number_of_days": "4", "status": "planning"}))
	assert.True(t, MatchesFilter(rec, map[string]interface{}{}))
	assert.False(t, MatchesFilter(rec, map[string]interface{}{"name": "Ooty"}))
	assert.False(t, MatchesFilter(rec, map[string]interface{}{"owner": "someone"}))
}

func TestToFloat64(t *testing.T) {
	cases := []struct {
		input    interface{}
		expected float64
		ok       bool
	}{
		{42, 42.0, true},
		{int32(7), 7.0, true},
		{int64(8), 8.0, true},
		{float32(3.5), 3.5, true},
		{float64(2.2), 2.2, true},
		{uint(5), 5.0, true},
		{uint32(6), 6.0, true},
		{uint64(9), 9.0, true},
		{int8(-3), -3.0, true},
		{int16(300), 300.0, true},
		{uint8(4), 4.0, true},
		{uint16(500), 500.0, true},
		{"not a number", 0, false},
	}
	for _, c := range cases {
		result, ok := ToFloat64(c.input)
		if c.ok {
			assert.True(t, ok)
			assert.Equal(t, c.expected, result)
		} else {
			assert.False(t, ok)
		}
	}
}
