package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatfile-codec/errors"
	"flatfile-codec/layout"
)

func TestToFixed(t *testing.T) {
	tests := []struct {
		in     float64
		digits int
		want   string
	}{
		{in: 2.5, digits: 0, want: "3"},
		{in: -2.5, digits: 0, want: "-3"},
		{in: 0.125, digits: 2, want: "0.13"},
		{in: 1.005, digits: 2, want: "1.00"}, // 1.00499999... in binary
		{in: 72.525, digits: 2, want: "72.53"},
		{in: 3, digits: 2, want: "3.00"},
		{in: 0.05, digits: 3, want: "0.050"},
		{in: 0.001, digits: 1, want: "0.0"},
		{in: -0.001, digits: 2, want: "-0.00"},
		{in: 123456.789, digits: 1, want: "123456.8"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toFixed(tt.in, tt.digits), "toFixed(%v, %d)", tt.in, tt.digits)
	}
}

func TestFormatNumber(t *testing.T) {
	float2 := layout.FieldSpec{Type: layout.TypeFloat, Precision: 2}

	tests := []struct {
		spec layout.FieldSpec
		in   float64
		want string
	}{
		{spec: float2, in: 72.525, want: "7252"},
		{spec: float2, in: -0.001, want: "0"},
		{spec: float2, in: -0.019, want: "-1"},
		{spec: layout.FieldSpec{Type: layout.TypeInteger, Precision: 3}, in: 12.9, want: "12"},
	}

	for _, tt := range tests {
		got, err := formatNumber(tt.spec, tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := formatNumber(float2, 1e308)
	assert.ErrorIs(t, err, errors.ErrTypeMismatch)
	assert.ErrorContains(t, err, "overflows at precision 2")
}

func TestTrimNumber(t *testing.T) {
	assert.Equal(t, "0042", trimNumber(layout.FieldSpec{Type: layout.TypeInteger, PaddingSymbol: "0"}, "0042"))
	assert.Equal(t, "42", trimNumber(layout.FieldSpec{Type: layout.TypeInteger, PaddingSymbol: "*"}, "**42"))
	assert.Equal(t, "42", trimNumber(layout.FieldSpec{Type: layout.TypeInteger}, "  42  "))
	assert.Equal(t, "-5", trimNumber(layout.FieldSpec{Type: layout.TypeInteger, PaddingSymbol: "0"}, "00-5"))
	assert.Equal(t, "-025", trimNumber(layout.FieldSpec{Type: layout.TypeFloat, PaddingSymbol: "0"}, "-025"))
	assert.Equal(t, "-500", trimNumber(layout.FieldSpec{Type: layout.TypeInteger, PaddingSymbol: "0", PaddingPosition: "end"}, "-500"))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{""}, SplitLines("\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\n\nb"))
}
