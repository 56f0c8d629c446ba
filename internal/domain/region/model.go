package region

import (
	"github.com/shopspring/decimal"

	ierr "github.com/vidinfra/pricing-engine/internal/errors"
)

// Region describes a pricing region: its currency metadata and the
// purchasing power parity multiplier applied to USD baseline prices.
type Region struct {
	// Code is the short region code ex US, IN, GLOBAL
	Code string `json:"code" yaml:"code"`

	// Name is the human readable region name
	Name string `json:"name" yaml:"name"`

	// Currency is the ISO 4217 currency code ex USD, INR
	Currency string `json:"currency" yaml:"currency"`

	// CurrencySymbol is the display symbol for the currency ex $, ₹
	CurrencySymbol string `json:"currency_symbol" yaml:"currency_symbol"`

	// PriceMultiplier scales USD baseline prices for this region.
	// 1.0 is the baseline (US) market.
	PriceMultiplier decimal.Decimal `json:"price_multiplier" yaml:"price_multiplier"`
}

// Validate checks the region invariants. The multiplier must be strictly
// positive.
func (r Region) Validate() error {
	if r.Code == "" {
		return ierr.NewError("region code is required").
			WithHint("Region code can not be empty").
			Mark(ierr.ErrValidation)
	}
	if r.Currency == "" {
		return ierr.NewError("region currency is required").
			WithHint("Region currency can not be empty").
			Mark(ierr.ErrValidation)
	}
	if r.PriceMultiplier.LessThanOrEqual(decimal.Zero) {
		return ierr.NewError("invalid price multiplier").
			WithHintf("Price multiplier must be strictly positive, got %s", r.PriceMultiplier).
			WithReportableDetails(map[string]any{
				"region_code":      r.Code,
				"price_multiplier": r.PriceMultiplier,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
