package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings(3)

	assert.Equal(t, int64(3), settings.StoreID)
	assert.True(t, settings.UseSandbox)
	assert.Equal(t, "2,4,6", settings.PlanTiers)
	assert.True(t, settings.DisplayProductPageWidget)
	assert.True(t, settings.DisplayCartWidget)
	assert.True(t, settings.LogCallbackErrors)
	assert.False(t, settings.HasOrderLimits())
}

func TestSettings_HasOrderLimits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		min, max int64
		expected bool
	}{
		{name: "both bounds synced", min: 50, max: 1000, expected: true},
		{name: "min missing", min: 0, max: 1000, expected: false},
		{name: "max missing", min: 50, max: 0, expected: false},
		{name: "nothing synced", min: 0, max: 0, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			settings := Settings{
				MinOrderTotal: decimal.NewFromInt(tc.min),
				MaxOrderTotal: decimal.NewFromInt(tc.max),
			}
			assert.Equal(t, tc.expected, settings.HasOrderLimits())
		})
	}
}

func TestNormalizePlanTiers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{name: "unsorted input gets sorted", raw: "6,2,4", expected: "2,4,6"},
		{name: "already sorted", raw: "2,4,6", expected: "2,4,6"},
		{name: "duplicates are kept", raw: "4,2,4", expected: "2,4,4"},
		{name: "whitespace tolerated", raw: " 6 , 2 ", expected: "2,6"},
		{name: "single tier", raw: "8", expected: "8"},
		{name: "non-numeric tier", raw: "2,four", wantErr: true},
		{name: "empty input", raw: "", wantErr: true},
		{name: "only separators", raw: ",,", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePlanTiers(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
