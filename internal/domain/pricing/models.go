package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/vidinfra/pricing-engine/internal/domain/plan"
	"github.com/vidinfra/pricing-engine/internal/domain/region"
	"github.com/vidinfra/pricing-engine/internal/types"
)

// PricingParams holds all necessary input for a price calculation.
type PricingParams struct {
	Plan         plan.Plan
	Region       region.Region
	BillingCycle types.BillingCycle

	// SeatCount is the total seat count, including the seats bundled into
	// the base price
	SeatCount int

	// CouponDiscount is an optional percentage in [0,100] applied after the
	// cycle and volume discounts. The calculator does not validate the
	// range; out of range values compute through.
	CouponDiscount decimal.Decimal
}

// PricingBreakdown is the immutable result of a price calculation. It
// carries every intermediate quantity so a caller can put the full
// computation on an invoice without re-deriving any of it.
type PricingBreakdown struct {
	// Regionally adjusted unit prices
	BasePrice    decimal.Decimal `json:"base_price"`
	PerSeatPrice decimal.Decimal `json:"per_seat_price"`

	// Seat split
	IncludedSeats   int `json:"included_seats"`
	AdditionalSeats int `json:"additional_seats"`

	// Pre discount amounts
	BasePriceTotal       decimal.Decimal `json:"base_price_total"`
	AdditionalSeatsTotal decimal.Decimal `json:"additional_seats_total"`
	Subtotal             decimal.Decimal `json:"subtotal"`

	// Discounts, in application order
	BillingDiscountPercent decimal.Decimal `json:"billing_discount_percent"`
	BillingDiscountAmount  decimal.Decimal `json:"billing_discount_amount"`
	VolumeDiscountPercent  decimal.Decimal `json:"volume_discount_percent"`
	VolumeDiscountAmount   decimal.Decimal `json:"volume_discount_amount"`
	CouponDiscountPercent  decimal.Decimal `json:"coupon_discount_percent"`
	CouponDiscountAmount   decimal.Decimal `json:"coupon_discount_amount"`

	// TotalPerMonth is the monthly equivalent display figure; Total is the
	// amount charged per billing event
	TotalPerMonth decimal.Decimal `json:"total_per_month"`
	Total         decimal.Decimal `json:"total"`

	// DisplayTotal is Total rendered with the region's currency symbol
	DisplayTotal string `json:"display_total"`

	// Echoed context
	BillingCycle    types.BillingCycle `json:"billing_cycle"`
	PlanSlug        string             `json:"plan_slug"`
	RegionCode      string             `json:"region_code"`
	Currency        string             `json:"currency"`
	CurrencySymbol  string             `json:"currency_symbol"`
	PriceMultiplier decimal.Decimal    `json:"price_multiplier"`
}
