package proration

import (
	"github.com/shopspring/decimal"

	"github.com/vidinfra/pricing-engine/internal/domain/plan"
	"github.com/vidinfra/pricing-engine/internal/domain/region"
	"github.com/vidinfra/pricing-engine/internal/types"
)

// ProrationParams holds all necessary input for calculating the charge and
// credit of a mid cycle plan or seat change.
type ProrationParams struct {
	OldPlan plan.Plan
	NewPlan plan.Plan

	Region       region.Region
	BillingCycle types.BillingCycle

	OldSeats int
	NewSeats int

	// DaysRemaining and TotalDays describe the position in the current
	// billing cycle. The caller guarantees TotalDays > 0; the calculator
	// does not defend against a zero value.
	DaysRemaining int
	TotalDays     int
}

// ProrationResult holds the output of a proration calculation. Credit and
// charge are each rounded to cents before NetAmount is derived, so the two
// always reconcile with the net exactly.
type ProrationResult struct {
	// Credit owed back for the unused remainder of the old configuration
	Credit decimal.Decimal `json:"credit"`

	// Charge for the remainder of the cycle on the new configuration
	Charge decimal.Decimal `json:"charge"`

	// NetAmount = Charge - Credit. Positive means the subscriber owes an
	// additional charge, negative means a credit is owed to them.
	NetAmount decimal.Decimal `json:"net_amount"`

	// ChangeType classifies the change by the sign of NetAmount
	ChangeType types.PlanChangeType `json:"change_type"`

	// Description is a human readable summary of the change
	Description string `json:"description"`

	Currency string `json:"currency"`
}
