package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		amount   string
		expected int64
	}{
		{name: "whole amount", amount: "25", expected: 2500},
		{name: "cents", amount: "25.50", expected: 2550},
		{name: "sub-cent fraction truncated", amount: "25.509", expected: 2550},
		{name: "zero", amount: "0", expected: 0},
		{name: "large amount", amount: "12345.67", expected: 1234567},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToMinorUnits(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestToMajorUnits(t *testing.T) {
	t.Parallel()

	assert.True(t, decimal.RequireFromString("25.50").Equal(ToMajorUnits(2550)))
	assert.True(t, decimal.RequireFromString("0.01").Equal(ToMajorUnits(1)))
	assert.True(t, decimal.Zero.Equal(ToMajorUnits(0)))
}

func TestMinorUnitsRoundTrip(t *testing.T) {
	t.Parallel()

	for _, amount := range []string{"0.01", "1", "99.99", "1000", "123456.78"} {
		d := decimal.RequireFromString(amount)
		assert.True(t, d.Equal(ToMajorUnits(ToMinorUnits(d))), "round trip of %s", amount)
	}
}
