package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vidinfra/pricing-engine/internal/config"
	"github.com/vidinfra/pricing-engine/internal/domain/pricing"
	"github.com/vidinfra/pricing-engine/internal/domain/proration"
	"github.com/vidinfra/pricing-engine/internal/domain/region"
	ierr "github.com/vidinfra/pricing-engine/internal/errors"
	"github.com/vidinfra/pricing-engine/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger  *logger.Logger
	Config  *config.Configuration
	Regions *region.Catalog

	PriceCalculator     pricing.Calculator
	ProrationCalculator proration.Calculator
}

// PricingService is the orchestrator facing surface of the engine. Unlike
// the domain calculators, which trust their input, this layer validates the
// caller contract before delegating.
type PricingService interface {
	CalculatePrice(ctx context.Context, params pricing.PricingParams) (pricing.PricingBreakdown, error)
	CalculateProration(ctx context.Context, params proration.ProrationParams) (*proration.ProrationResult, error)
	GetRegion(ctx context.Context, code string) region.Region
	ListRegions(ctx context.Context) []region.Region
	FormatPrice(amount decimal.Decimal, currency string, currencySymbol string) string
}

type pricingService struct {
	serviceParams ServiceParams
}

// NewPricingService creates a new pricing service. Missing calculators are
// filled in with the defaults.
func NewPricingService(serviceParams ServiceParams) PricingService {
	if serviceParams.PriceCalculator == nil {
		serviceParams.PriceCalculator = pricing.NewCalculator()
	}
	if serviceParams.ProrationCalculator == nil {
		serviceParams.ProrationCalculator = proration.NewCalculator(serviceParams.PriceCalculator)
	}
	if serviceParams.Regions == nil {
		serviceParams.Regions = region.DefaultCatalog()
	}
	if serviceParams.Logger == nil {
		serviceParams.Logger = logger.GetLogger()
	}
	return &pricingService{serviceParams: serviceParams}
}

// CalculatePrice delegates to the price calculator. The calculator itself
// never fails; it computes through malformed numeric input per the engine's
// documented fallback behavior.
func (s *pricingService) CalculatePrice(ctx context.Context, params pricing.PricingParams) (pricing.PricingBreakdown, error) {
	breakdown := s.serviceParams.PriceCalculator.Calculate(ctx, params)

	s.serviceParams.Logger.Debugw("calculated price",
		"plan", params.Plan.Slug,
		"region", breakdown.RegionCode,
		"billing_cycle", params.BillingCycle.String(),
		"seat_count", params.SeatCount,
		"total", breakdown.Total.String(),
	)

	return breakdown, nil
}

// CalculateProration validates the caller contract and delegates to the
// proration calculator.
func (s *pricingService) CalculateProration(ctx context.Context, params proration.ProrationParams) (*proration.ProrationResult, error) {
	if params.TotalDays <= 0 {
		return nil, ierr.NewError("invalid billing period").
			WithHintf("Total days in cycle must be positive, got %d", params.TotalDays).
			WithReportableDetails(map[string]any{
				"total_days":     params.TotalDays,
				"days_remaining": params.DaysRemaining,
			}).
			Mark(ierr.ErrValidation)
	}
	if err := params.BillingCycle.Validate(); err != nil {
		return nil, err
	}

	result := s.serviceParams.ProrationCalculator.Calculate(ctx, params)

	s.serviceParams.Logger.Debugw("calculated proration",
		"old_plan", params.OldPlan.Slug,
		"new_plan", params.NewPlan.Slug,
		"change_type", result.ChangeType.String(),
		"net_amount", result.NetAmount.String(),
	)

	return &result, nil
}

// GetRegion looks up a region; unknown codes resolve to the fallback region.
func (s *pricingService) GetRegion(ctx context.Context, code string) region.Region {
	return s.serviceParams.Regions.GetRegion(code)
}

// ListRegions returns all regions in the catalog.
func (s *pricingService) ListRegions(ctx context.Context) []region.Region {
	return s.serviceParams.Regions.GetAllRegions()
}

// FormatPrice renders an amount with its currency symbol.
func (s *pricingService) FormatPrice(amount decimal.Decimal, currency string, currencySymbol string) string {
	return pricing.FormatPrice(amount, currency, currencySymbol)
}
