package region

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/vidinfra/pricing-engine/internal/errors"
)

func TestCatalog_GetRegion(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name         string
		code         string
		expectedCode string
	}{
		{name: "exact_match", code: "US", expectedCode: "US"},
		{name: "lowercase_match", code: "in", expectedCode: "IN"},
		{name: "mixed_case_match", code: "gB", expectedCode: "GB"},
		{name: "unknown_resolves_to_fallback", code: "XX", expectedCode: "GLOBAL"},
		{name: "empty_resolves_to_fallback", code: "", expectedCode: "GLOBAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := catalog.GetRegion(tt.code)
			assert.Equal(t, tt.expectedCode, r.Code)
			assert.True(t, r.PriceMultiplier.IsPositive())
			assert.NotEmpty(t, r.Currency)
		})
	}
}

func TestCatalog_GetAllRegions(t *testing.T) {
	catalog := DefaultCatalog()
	regions := catalog.GetAllRegions()

	require.Len(t, regions, 10)
	codes := make([]string, len(regions))
	for i, r := range regions {
		codes[i] = r.Code
	}
	assert.Contains(t, codes, "US")
	assert.Contains(t, codes, FallbackRegionCode)

	// The US baseline market has a multiplier of exactly 1.
	assert.True(t, catalog.GetRegion("US").PriceMultiplier.Equal(decimal.NewFromInt(1)))
}

func TestNewCatalog_Validation(t *testing.T) {
	valid := Region{
		Code:            "GLOBAL",
		Name:            "Rest of World",
		Currency:        "USD",
		CurrencySymbol:  "$",
		PriceMultiplier: decimal.NewFromFloat(0.7),
	}

	tests := []struct {
		name    string
		regions []Region
	}{
		{
			name: "missing_fallback",
			regions: []Region{
				{Code: "US", Name: "United States", Currency: "USD", CurrencySymbol: "$", PriceMultiplier: decimal.NewFromInt(1)},
			},
		},
		{
			name: "zero_multiplier",
			regions: []Region{
				valid,
				{Code: "US", Name: "United States", Currency: "USD", CurrencySymbol: "$", PriceMultiplier: decimal.Zero},
			},
		},
		{
			name: "negative_multiplier",
			regions: []Region{
				valid,
				{Code: "US", Name: "United States", Currency: "USD", CurrencySymbol: "$", PriceMultiplier: decimal.NewFromInt(-1)},
			},
		},
		{
			name:    "duplicate_code",
			regions: []Region{valid, valid},
		},
		{
			name: "missing_currency",
			regions: []Region{
				valid,
				{Code: "US", Name: "United States", PriceMultiplier: decimal.NewFromInt(1)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.regions)
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}
