package types

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	ierr "github.com/vidinfra/pricing-engine/internal/errors"
)

// BillingCycle is the recurrence of a subscription ex monthly, yearly, 3_year
type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleYearly    BillingCycle = "yearly"
	BillingCycleThreeYear BillingCycle = "3_year"
)

// BillingCycleConfig describes a billing cycle as data so that adding a
// cycle is a table change rather than a code change.
type BillingCycleConfig struct {
	Cycle           BillingCycle
	Months          int64
	DiscountPercent decimal.Decimal
}

// billingCycleConfigs drives both the cycle discount and the number of
// months billed per billing event.
var billingCycleConfigs = map[BillingCycle]BillingCycleConfig{
	BillingCycleMonthly: {
		Cycle:           BillingCycleMonthly,
		Months:          1,
		DiscountPercent: decimal.Zero,
	},
	BillingCycleYearly: {
		Cycle:           BillingCycleYearly,
		Months:          12,
		DiscountPercent: decimal.NewFromInt(11),
	},
	BillingCycleThreeYear: {
		Cycle:           BillingCycleThreeYear,
		Months:          36,
		DiscountPercent: decimal.NewFromInt(18),
	},
}

var BillingCycleValues = []BillingCycle{
	BillingCycleMonthly,
	BillingCycleYearly,
	BillingCycleThreeYear,
}

// GetBillingCycleConfig returns the config for the given cycle. Unknown
// cycles resolve to the monthly row (zero discount, one month per billing
// event) rather than failing. Callers that want strictness should call
// Validate first.
func GetBillingCycleConfig(c BillingCycle) BillingCycleConfig {
	if config, ok := billingCycleConfigs[c]; ok {
		return config
	}
	return billingCycleConfigs[BillingCycleMonthly]
}

// Months returns the number of months billed per billing event for the cycle
func (c BillingCycle) Months() int64 {
	return GetBillingCycleConfig(c).Months
}

// DiscountPercent returns the cycle discount percentage for the cycle
func (c BillingCycle) DiscountPercent() decimal.Decimal {
	return GetBillingCycleConfig(c).DiscountPercent
}

// IsYearlyRate reports whether the cycle uses the yearly base and per seat
// rate set. The 3 year cycle has no rate tier of its own and reuses the
// yearly rates on top of its own cycle discount.
func (c BillingCycle) IsYearlyRate() bool {
	return c == BillingCycleYearly || c == BillingCycleThreeYear
}

func (c BillingCycle) String() string {
	return string(c)
}

func (c BillingCycle) Validate() error {
	if !lo.Contains(BillingCycleValues, c) {
		return ierr.NewError("invalid billing cycle").
			WithHint("Billing cycle must be monthly, yearly, or 3_year").
			WithReportableDetails(map[string]any{
				"allowed_values": BillingCycleValues,
				"provided_value": c,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
