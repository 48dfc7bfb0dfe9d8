package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestNewSalaryRange_BothBounds(t *testing.T) {
	r := NewSalaryRange(f(80000), f(110000))
	require.NotNil(t, r)
	assert.Equal(t, 80000.0, r.Min)
	assert.Equal(t, 110000.0, r.Max)
}

func TestNewSalaryRange_ReversedBoundsSwap(t *testing.T) {
	r := NewSalaryRange(f(110000), f(80000))
	require.NotNil(t, r)
	assert.Equal(t, 80000.0, r.Min)
	assert.Equal(t, 110000.0, r.Max)
}

func TestNewSalaryRange_SingleBoundDegenerate(t *testing.T) {
	r := NewSalaryRange(f(90000), nil)
	require.NotNil(t, r)
	assert.Equal(t, 90000.0, r.Min)
	assert.Equal(t, 90000.0, r.Max)

	r = NewSalaryRange(nil, f(90000))
	require.NotNil(t, r)
	assert.Equal(t, 90000.0, r.Min)
	assert.Equal(t, 90000.0, r.Max)
}

func TestNewSalaryRange_NoBounds(t *testing.T) {
	assert.Nil(t, NewSalaryRange(nil, nil))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  *float64
	}{
		{"90000", f(90000)},
		{"$90,000", f(90000)},
		{"€120.000,00", nil}, // 120.000.00 has two decimal points
		{"110000.50", f(110000.50)},
		{"about 85k", f(85)},
		{"", nil},
		{"n/a", nil},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.input)
		if tt.want == nil {
			assert.Nil(t, got, "input %q", tt.input)
		} else {
			require.NotNil(t, got, "input %q", tt.input)
			assert.Equal(t, *tt.want, *got, "input %q", tt.input)
		}
	}
}

func TestParseSalaryRange(t *testing.T) {
	r := ParseSalaryRange("$80,000", "$110,000")
	require.NotNil(t, r)
	assert.Equal(t, 80000.0, r.Min)
	assert.Equal(t, 110000.0, r.Max)

	assert.Nil(t, ParseSalaryRange("", ""))
	assert.Nil(t, ParseSalaryRange("negotiable", "competitive"))
}
