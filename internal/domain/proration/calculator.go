// Package proration computes the monetary adjustment owed when a
// subscription's plan or seat count changes before the current billing
// cycle ends.
package proration

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vidinfra/pricing-engine/internal/domain/pricing"
	"github.com/vidinfra/pricing-engine/internal/types"
)

// Calculator performs proration calculations. It is kept separate from the
// service to allow different pricing calculators or easier testing.
type Calculator interface {
	Calculate(ctx context.Context, params ProrationParams) ProrationResult
}

// NewCalculator creates a proration calculator that delegates price
// computation to the given pricing calculator.
func NewCalculator(priceCalculator pricing.Calculator) Calculator {
	return &dayBasedCalculator{priceCalculator: priceCalculator}
}

// dayBasedCalculator prorates on whole day counts supplied by the caller.
type dayBasedCalculator struct {
	priceCalculator pricing.Calculator
}

// Calculate prices the old and new configuration, scales each monthly
// equivalent by the remaining fraction of the cycle, and nets the two.
// Credit and charge are rounded to cents independently before the
// subtraction. TotalDays must be positive; a zero value is a caller
// contract violation and is not guarded here.
func (c *dayBasedCalculator) Calculate(ctx context.Context, params ProrationParams) ProrationResult {
	remainingFraction := decimal.NewFromInt(int64(params.DaysRemaining)).
		Div(decimal.NewFromInt(int64(params.TotalDays)))

	oldBreakdown := c.priceCalculator.Calculate(ctx, pricing.PricingParams{
		Plan:         params.OldPlan,
		Region:       params.Region,
		BillingCycle: params.BillingCycle,
		SeatCount:    params.OldSeats,
	})
	newBreakdown := c.priceCalculator.Calculate(ctx, pricing.PricingParams{
		Plan:         params.NewPlan,
		Region:       params.Region,
		BillingCycle: params.BillingCycle,
		SeatCount:    params.NewSeats,
	})

	credit := oldBreakdown.TotalPerMonth.Mul(remainingFraction).Round(2)
	charge := newBreakdown.TotalPerMonth.Mul(remainingFraction).Round(2)
	netAmount := charge.Sub(credit)

	changeType := classifyChange(netAmount)

	return ProrationResult{
		Credit:      credit,
		Charge:      charge,
		NetAmount:   netAmount,
		ChangeType:  changeType,
		Description: generateDescription(changeType, params),
		Currency:    params.Region.Currency,
	}
}

// classifyChange derives the change type purely from the sign of the net
// amount.
func classifyChange(netAmount decimal.Decimal) types.PlanChangeType {
	switch {
	case netAmount.GreaterThan(decimal.Zero):
		return types.PlanChangeTypeUpgrade
	case netAmount.LessThan(decimal.Zero):
		return types.PlanChangeTypeDowngrade
	default:
		return types.PlanChangeTypeLateral
	}
}

// generateDescription generates a human readable summary of the change.
func generateDescription(changeType types.PlanChangeType, params ProrationParams) string {
	change := fmt.Sprintf("%s (%d seats) to %s (%d seats)",
		params.OldPlan.Name, params.OldSeats, params.NewPlan.Name, params.NewSeats)

	switch changeType {
	case types.PlanChangeTypeUpgrade:
		return fmt.Sprintf("Upgrade from %s, additional charge for the remainder of the cycle", change)
	case types.PlanChangeTypeDowngrade:
		return fmt.Sprintf("Downgrade from %s, credit for the remainder of the cycle", change)
	default:
		return fmt.Sprintf("Lateral change from %s, no net adjustment", change)
	}
}
