package plan

import (
	"github.com/shopspring/decimal"

	ierr "github.com/vidinfra/pricing-engine/internal/errors"
	"github.com/vidinfra/pricing-engine/internal/types"
)

// Plan is the shape of a plan record as supplied by the external plan
// catalog. All prices are USD baseline amounts before regional adjustment.
type Plan struct {
	// Slug uniquely identifies the plan ex starter, team, enterprise
	Slug string `json:"slug" yaml:"slug"`

	// Name is the human readable plan name
	Name string `json:"name" yaml:"name"`

	// BasePriceMonthly is the monthly base subscription price
	BasePriceMonthly decimal.Decimal `json:"base_price_monthly" yaml:"base_price_monthly"`

	// BasePriceYearly is the base price per month on the yearly rate set
	BasePriceYearly decimal.Decimal `json:"base_price_yearly" yaml:"base_price_yearly"`

	// PerSeatPriceMonthly is the monthly price per seat beyond the included allotment
	PerSeatPriceMonthly decimal.Decimal `json:"per_seat_price_monthly" yaml:"per_seat_price_monthly"`

	// PerSeatPriceYearly is the per seat price per month on the yearly rate set
	PerSeatPriceYearly decimal.Decimal `json:"per_seat_price_yearly" yaml:"per_seat_price_yearly"`

	// IncludedSeats is the number of seats bundled into the base price
	IncludedSeats int `json:"included_seats" yaml:"included_seats"`
}

// BasePriceForCycle returns the base price per month for the given cycle.
// The 3 year cycle has no rate tier of its own and reuses the yearly rates;
// unknown cycles get the monthly rates.
func (p Plan) BasePriceForCycle(cycle types.BillingCycle) decimal.Decimal {
	if cycle.IsYearlyRate() {
		return p.BasePriceYearly
	}
	return p.BasePriceMonthly
}

// PerSeatPriceForCycle returns the per seat price per month for the given cycle
func (p Plan) PerSeatPriceForCycle(cycle types.BillingCycle) decimal.Decimal {
	if cycle.IsYearlyRate() {
		return p.PerSeatPriceYearly
	}
	return p.PerSeatPriceMonthly
}

// Validate checks the plan invariants: non negative prices and seat counts.
func (p Plan) Validate() error {
	if p.Slug == "" {
		return ierr.NewError("plan slug is required").
			WithHint("Plan slug can not be empty").
			Mark(ierr.ErrValidation)
	}
	for _, amount := range []decimal.Decimal{
		p.BasePriceMonthly,
		p.BasePriceYearly,
		p.PerSeatPriceMonthly,
		p.PerSeatPriceYearly,
	} {
		if amount.LessThan(decimal.Zero) {
			return ierr.NewError("invalid plan price").
				WithHintf("Plan %s has a negative price", p.Slug).
				WithReportableDetails(map[string]any{
					"plan_slug": p.Slug,
					"amount":    amount,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	if p.IncludedSeats < 0 {
		return ierr.NewError("invalid included seats").
			WithHintf("Plan %s has a negative included seat count", p.Slug).
			Mark(ierr.ErrValidation)
	}
	return nil
}
