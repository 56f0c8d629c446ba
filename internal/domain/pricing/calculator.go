// Package pricing computes subscription price breakdowns: regionally
// adjusted base and per seat prices with sequentially compounding cycle,
// volume, and coupon discounts.
package pricing

import (
	"context"

	"github.com/shopspring/decimal"
)

// volumeTier maps a total seat count range to the discount percentage
// applied to seats beyond the included allotment.
type volumeTier struct {
	minSeats int
	percent  decimal.Decimal
}

// volumeTiers is ordered by descending minSeats; the first matching tier
// wins. Seat counts of ten or fewer get no volume discount.
var volumeTiers = []volumeTier{
	{minSeats: 51, percent: decimal.NewFromInt(15)},
	{minSeats: 26, percent: decimal.NewFromInt(10)},
	{minSeats: 11, percent: decimal.NewFromInt(5)},
}

// VolumeDiscountPercent returns the volume discount percentage for the
// given total seat count.
func VolumeDiscountPercent(seatCount int) decimal.Decimal {
	for _, tier := range volumeTiers {
		if seatCount >= tier.minSeats {
			return tier.percent
		}
	}
	return decimal.Zero
}

// Calculator computes price breakdowns.
type Calculator interface {
	Calculate(ctx context.Context, params PricingParams) PricingBreakdown
}

// NewCalculator creates a price calculator.
func NewCalculator() Calculator {
	return &calculator{}
}

type calculator struct{}

var oneHundred = decimal.NewFromInt(100)

// Calculate produces the full price breakdown for the given input. The
// order of the steps matters: the three discounts compound sequentially
// against a running total, not independently against the subtotal.
//
// The calculator trusts its input. Negative seat counts clamp the
// additional seat count to zero, coupon percentages outside [0,100]
// compute through, and unknown billing cycles behave like monthly
// (zero cycle discount, one month per billing event). Callers that want
// strict behavior validate before invoking.
func (c *calculator) Calculate(ctx context.Context, params PricingParams) PricingBreakdown {
	cycle := params.BillingCycle
	multiplier := params.Region.PriceMultiplier

	// Regionally adjusted unit prices, rounded to cents before any totals
	// are built from them.
	basePrice := roundToCents(params.Plan.BasePriceForCycle(cycle).Mul(multiplier))
	perSeatPrice := roundToCents(params.Plan.PerSeatPriceForCycle(cycle).Mul(multiplier))

	additionalSeats := params.SeatCount - params.Plan.IncludedSeats
	if additionalSeats < 0 {
		additionalSeats = 0
	}

	basePriceTotal := basePrice
	additionalSeatsTotal := decimal.NewFromInt(int64(additionalSeats)).Mul(perSeatPrice)
	subtotal := basePriceTotal.Add(additionalSeatsTotal)

	// Billing cycle discount off the running subtotal.
	billingDiscountPercent := cycle.DiscountPercent()
	billingDiscountAmount := subtotal.Mul(billingDiscountPercent).Div(oneHundred)
	runningTotal := subtotal.Sub(billingDiscountAmount)

	// Volume discount: the tier is chosen by the total seat count, but the
	// amount is computed against the additional seats total only.
	volumeDiscountPercent := VolumeDiscountPercent(params.SeatCount)
	volumeDiscountAmount := additionalSeatsTotal.Mul(volumeDiscountPercent).Div(oneHundred)
	runningTotal = runningTotal.Sub(volumeDiscountAmount)

	// Coupon discount off whatever remains.
	couponDiscountAmount := runningTotal.Mul(params.CouponDiscount).Div(oneHundred)
	runningTotal = runningTotal.Sub(couponDiscountAmount)

	totalPerMonth := roundToCents(runningTotal)
	total := roundToCents(totalPerMonth.Mul(decimal.NewFromInt(cycle.Months())))

	return PricingBreakdown{
		BasePrice:              basePrice,
		PerSeatPrice:           perSeatPrice,
		IncludedSeats:          params.Plan.IncludedSeats,
		AdditionalSeats:        additionalSeats,
		BasePriceTotal:         basePriceTotal,
		AdditionalSeatsTotal:   additionalSeatsTotal,
		Subtotal:               subtotal,
		BillingDiscountPercent: billingDiscountPercent,
		BillingDiscountAmount:  billingDiscountAmount,
		VolumeDiscountPercent:  volumeDiscountPercent,
		VolumeDiscountAmount:   volumeDiscountAmount,
		CouponDiscountPercent:  params.CouponDiscount,
		CouponDiscountAmount:   couponDiscountAmount,
		TotalPerMonth:          totalPerMonth,
		Total:                  total,
		DisplayTotal:           FormatPrice(total, params.Region.Currency, params.Region.CurrencySymbol),
		BillingCycle:           cycle,
		PlanSlug:               params.Plan.Slug,
		RegionCode:             params.Region.Code,
		Currency:               params.Region.Currency,
		CurrencySymbol:         params.Region.CurrencySymbol,
		PriceMultiplier:        multiplier,
	}
}

// roundToCents rounds to two decimal places, half up.
func roundToCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
