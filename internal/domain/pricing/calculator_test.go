package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidinfra/pricing-engine/internal/domain/plan"
	"github.com/vidinfra/pricing-engine/internal/domain/region"
	"github.com/vidinfra/pricing-engine/internal/types"
)

func baselinePlan() plan.Plan {
	return plan.Plan{
		Slug:                "team",
		Name:                "Team",
		BasePriceMonthly:    decimal.NewFromInt(49),
		BasePriceYearly:     decimal.NewFromInt(49),
		PerSeatPriceMonthly: decimal.NewFromInt(10),
		PerSeatPriceYearly:  decimal.NewFromInt(10),
		IncludedSeats:       5,
	}
}

func usRegion() region.Region {
	return region.Region{
		Code:            "US",
		Name:            "United States",
		Currency:        "USD",
		CurrencySymbol:  "$",
		PriceMultiplier: decimal.NewFromInt(1),
	}
}

func inRegion() region.Region {
	return region.Region{
		Code:            "IN",
		Name:            "India",
		Currency:        "INR",
		CurrencySymbol:  "₹",
		PriceMultiplier: decimal.NewFromFloat(0.35),
	}
}

func TestCalculator_Calculate(t *testing.T) {
	calc := NewCalculator()
	ctx := context.Background()

	tests := []struct {
		name   string
		params PricingParams
		check  func(t *testing.T, b PricingBreakdown)
	}{
		{
			name: "included_seats_only_monthly",
			params: PricingParams{
				Plan:         baselinePlan(),
				Region:       usRegion(),
				BillingCycle: types.BillingCycleMonthly,
				SeatCount:    5,
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.Equal(t, 0, b.AdditionalSeats)
				assert.Equal(t, "49.00", b.Subtotal.StringFixed(2))
				assert.Equal(t, "49.00", b.TotalPerMonth.StringFixed(2))
				assert.Equal(t, "49.00", b.Total.StringFixed(2))
			},
		},
		{
			name: "additional_seats_below_volume_tier",
			params: PricingParams{
				Plan:         baselinePlan(),
				Region:       usRegion(),
				BillingCycle: types.BillingCycleMonthly,
				SeatCount:    8,
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.Equal(t, 3, b.AdditionalSeats)
				assert.Equal(t, "30.00", b.AdditionalSeatsTotal.StringFixed(2))
				assert.Equal(t, "79.00", b.Subtotal.StringFixed(2))
				assert.Equal(t, "0.00", b.VolumeDiscountPercent.StringFixed(2))
				assert.Equal(t, "79.00", b.Total.StringFixed(2))
			},
		},
		{
			name: "regional_adjustment_india",
			params: PricingParams{
				Plan:         baselinePlan(),
				Region:       inRegion(),
				BillingCycle: types.BillingCycleMonthly,
				SeatCount:    8,
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.Equal(t, "17.15", b.BasePrice.StringFixed(2))
				assert.Equal(t, "3.50", b.PerSeatPrice.StringFixed(2))
				assert.Equal(t, "10.50", b.AdditionalSeatsTotal.StringFixed(2))
				assert.Equal(t, "27.65", b.Subtotal.StringFixed(2))
				assert.Equal(t, "27.65", b.Total.StringFixed(2))
				assert.Equal(t, "INR", b.Currency)
			},
		},
		{
			name: "volume_discount_tier_11_to_25",
			params: PricingParams{
				Plan:         baselinePlan(),
				Region:       usRegion(),
				BillingCycle: types.BillingCycleMonthly,
				SeatCount:    15,
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.Equal(t, 10, b.AdditionalSeats)
				assert.Equal(t, "100.00", b.AdditionalSeatsTotal.StringFixed(2))
				assert.Equal(t, "149.00", b.Subtotal.StringFixed(2))
				assert.Equal(t, "5.00", b.VolumeDiscountPercent.StringFixed(2))
				assert.Equal(t, "5.00", b.VolumeDiscountAmount.StringFixed(2))
				assert.Equal(t, "144.00", b.Total.StringFixed(2))
			},
		},
		{
			name: "yearly_cycle_discount_and_billed_total",
			params: PricingParams{
				Plan:         baselinePlan(),
				Region:       usRegion(),
				BillingCycle: types.BillingCycleYearly,
				SeatCount:    5,
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.Equal(t, "11.00", b.BillingDiscountPercent.StringFixed(2))
				assert.Equal(t, "5.39", b.BillingDiscountAmount.StringFixed(2))
				assert.Equal(t, "43.61", b.TotalPerMonth.StringFixed(2))
				assert.Equal(t, "523.32", b.Total.StringFixed(2))
			},
		},
		{
			name: "three_year_cycle_uses_yearly_rates_with_extra_discount",
			params: PricingParams{
				Plan:         baselinePlan(),
				Region:       usRegion(),
				BillingCycle: types.BillingCycleThreeYear,
				SeatCount:    5,
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.Equal(t, "49.00", b.BasePrice.StringFixed(2))
				assert.Equal(t, "18.00", b.BillingDiscountPercent.StringFixed(2))
				// 49 - 18% = 40.18, billed over 36 months
				assert.Equal(t, "40.18", b.TotalPerMonth.StringFixed(2))
				assert.Equal(t, "1446.48", b.Total.StringFixed(2))
			},
		},
		{
			name: "coupon_applied_after_other_discounts",
			params: PricingParams{
				Plan:           baselinePlan(),
				Region:         usRegion(),
				BillingCycle:   types.BillingCycleMonthly,
				SeatCount:      15,
				CouponDiscount: decimal.NewFromInt(10),
			},
			check: func(t *testing.T, b PricingBreakdown) {
				// 149 - 5 (volume) = 144, minus 10% coupon
				assert.Equal(t, "14.40", b.CouponDiscountAmount.StringFixed(2))
				assert.Equal(t, "129.60", b.Total.StringFixed(2))
			},
		},
		{
			name: "negative_seat_count_clamps_to_base_price",
			params: PricingParams{
				Plan:         baselinePlan(),
				Region:       usRegion(),
				BillingCycle: types.BillingCycleMonthly,
				SeatCount:    -3,
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.Equal(t, 0, b.AdditionalSeats)
				assert.Equal(t, "49.00", b.Total.StringFixed(2))
			},
		},
		{
			name: "unknown_cycle_behaves_like_monthly",
			params: PricingParams{
				Plan:         baselinePlan(),
				Region:       usRegion(),
				BillingCycle: types.BillingCycle("weekly"),
				SeatCount:    5,
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.Equal(t, "0.00", b.BillingDiscountPercent.StringFixed(2))
				assert.Equal(t, "49.00", b.Total.StringFixed(2))
			},
		},
		{
			name: "coupon_above_hundred_drives_total_negative",
			params: PricingParams{
				Plan:           baselinePlan(),
				Region:         usRegion(),
				BillingCycle:   types.BillingCycleMonthly,
				SeatCount:      5,
				CouponDiscount: decimal.NewFromInt(150),
			},
			check: func(t *testing.T, b PricingBreakdown) {
				assert.True(t, b.Total.IsNegative())
				assert.Equal(t, "-24.50", b.Total.StringFixed(2))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, calc.Calculate(ctx, tt.params))
		})
	}
}

func TestCalculator_Determinism(t *testing.T) {
	calc := NewCalculator()
	ctx := context.Background()

	params := PricingParams{
		Plan:           baselinePlan(),
		Region:         inRegion(),
		BillingCycle:   types.BillingCycleYearly,
		SeatCount:      30,
		CouponDiscount: decimal.NewFromFloat(7.5),
	}

	first := calc.Calculate(ctx, params)
	second := calc.Calculate(ctx, params)
	assert.Equal(t, first, second)
}

func TestCalculator_Decomposition(t *testing.T) {
	calc := NewCalculator()
	ctx := context.Background()

	for _, seats := range []int{0, 1, 5, 8, 11, 26, 51, 200} {
		b := calc.Calculate(ctx, PricingParams{
			Plan:         baselinePlan(),
			Region:       inRegion(),
			BillingCycle: types.BillingCycleYearly,
			SeatCount:    seats,
		})
		assert.True(t, b.Subtotal.Equal(b.BasePriceTotal.Add(b.AdditionalSeatsTotal)),
			"subtotal must equal base plus additional seats for %d seats", seats)
	}
}

func TestCalculator_DiscountBounds(t *testing.T) {
	calc := NewCalculator()
	ctx := context.Background()

	b := calc.Calculate(ctx, PricingParams{
		Plan:           baselinePlan(),
		Region:         usRegion(),
		BillingCycle:   types.BillingCycleThreeYear,
		SeatCount:      60,
		CouponDiscount: decimal.NewFromInt(25),
	})

	require.False(t, b.BillingDiscountAmount.IsNegative())
	require.False(t, b.VolumeDiscountAmount.IsNegative())
	require.False(t, b.CouponDiscountAmount.IsNegative())
	assert.True(t, b.BillingDiscountAmount.LessThanOrEqual(b.Subtotal))
	assert.True(t, b.VolumeDiscountAmount.LessThanOrEqual(b.AdditionalSeatsTotal))
}

func TestCalculator_BilledTotalScaling(t *testing.T) {
	calc := NewCalculator()
	ctx := context.Background()

	for _, cycle := range types.BillingCycleValues {
		b := calc.Calculate(ctx, PricingParams{
			Plan:         baselinePlan(),
			Region:       inRegion(),
			BillingCycle: cycle,
			SeatCount:    12,
		})
		expected := b.TotalPerMonth.Mul(decimal.NewFromInt(cycle.Months())).Round(2)
		assert.True(t, b.Total.Equal(expected),
			"billed total must be the rounded monthly equivalent times %d", cycle.Months())
	}
}

func TestVolumeDiscountPercent(t *testing.T) {
	tests := []struct {
		seats    int
		expected int64
	}{
		{seats: -1, expected: 0},
		{seats: 1, expected: 0},
		{seats: 10, expected: 0},
		{seats: 11, expected: 5},
		{seats: 25, expected: 5},
		{seats: 26, expected: 10},
		{seats: 50, expected: 10},
		{seats: 51, expected: 15},
		{seats: 1000, expected: 15},
	}

	for _, tt := range tests {
		assert.True(t, VolumeDiscountPercent(tt.seats).Equal(decimal.NewFromInt(tt.expected)),
			"seat count %d should map to %d%%", tt.seats, tt.expected)
	}
}
