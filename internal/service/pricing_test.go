package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidinfra/pricing-engine/internal/domain/plan"
	"github.com/vidinfra/pricing-engine/internal/domain/pricing"
	"github.com/vidinfra/pricing-engine/internal/domain/proration"
	ierr "github.com/vidinfra/pricing-engine/internal/errors"
	"github.com/vidinfra/pricing-engine/internal/types"
)

func testPlan() plan.Plan {
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

func TestPricingService_CalculatePrice(t *testing.T) {
	svc := NewPricingService(ServiceParams{})
	ctx := context.Background()

	breakdown, err := svc.CalculatePrice(ctx, pricing.PricingParams{
		Plan:         testPlan(),
		Region:       svc.GetRegion(ctx, "us"),
		BillingCycle: types.BillingCycleMonthly,
		SeatCount:    8,
	})

	require.NoError(t, err)
	assert.Equal(t, "79.00", breakdown.Total.StringFixed(2))
	assert.Equal(t, "$79.00", breakdown.DisplayTotal)
}

func TestPricingService_CalculateProration(t *testing.T) {
	svc := NewPricingService(ServiceParams{})
	ctx := context.Background()

	t.Run("valid_change", func(t *testing.T) {
		result, err := svc.CalculateProration(ctx, proration.ProrationParams{
			OldPlan:       testPlan(),
			NewPlan:       testPlan(),
			Region:        svc.GetRegion(ctx, "US"),
			BillingCycle:  types.BillingCycleMonthly,
			OldSeats:      5,
			NewSeats:      8,
			DaysRemaining: 15,
			TotalDays:     30,
		})

		require.NoError(t, err)
		assert.Equal(t, types.PlanChangeTypeUpgrade, result.ChangeType)
		assert.Equal(t, "15.00", result.NetAmount.StringFixed(2))
	})

	t.Run("zero_total_days_rejected", func(t *testing.T) {
		_, err := svc.CalculateProration(ctx, proration.ProrationParams{
			OldPlan:      testPlan(),
			NewPlan:      testPlan(),
			Region:       svc.GetRegion(ctx, "US"),
			BillingCycle: types.BillingCycleMonthly,
			OldSeats:     5,
			NewSeats:     8,
			TotalDays:    0,
		})

		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})

	t.Run("invalid_cycle_rejected", func(t *testing.T) {
		_, err := svc.CalculateProration(ctx, proration.ProrationParams{
			OldPlan:       testPlan(),
			NewPlan:       testPlan(),
			Region:        svc.GetRegion(ctx, "US"),
			BillingCycle:  types.BillingCycle("weekly"),
			OldSeats:      5,
			NewSeats:      8,
			DaysRemaining: 15,
			TotalDays:     30,
		})

		require.Error(t, err)
		assert.True(t, ierr.IsValidation(err))
	})
}

func TestPricingService_Regions(t *testing.T) {
	svc := NewPricingService(ServiceParams{})
	ctx := context.Background()

	assert.Equal(t, "IN", svc.GetRegion(ctx, "in").Code)
	assert.Equal(t, "GLOBAL", svc.GetRegion(ctx, "nowhere").Code)
	assert.Len(t, svc.ListRegions(ctx), 10)
}

func TestPricingService_FormatPrice(t *testing.T) {
	svc := NewPricingService(ServiceParams{})

	assert.Equal(t, "$12.34", svc.FormatPrice(decimal.NewFromFloat(12.34), "USD", "$"))
	assert.Equal(t, "12.34 ₺", svc.FormatPrice(decimal.NewFromFloat(12.34), "TRY", "₺"))
}
