package cmd

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vidinfra/pricing-engine/internal/domain/pricing"
	"github.com/vidinfra/pricing-engine/internal/types"
)

var (
	quotePlan   string
	quoteRegion string
	quoteCycle  string
	quoteSeats  int
	quoteCoupon float64
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute a price breakdown for a plan, region, and seat count",
	Long: `Compute the full price breakdown for a subscription: regionally
adjusted prices, seat split, cycle, volume and coupon discounts, monthly
equivalent and billed total.

Examples:
  pricing-engine quote --catalog plans.json --plan team --region US --cycle monthly --seats 8
  pricing-engine quote --catalog plans.json --plan team --region IN --cycle yearly --seats 15 --coupon 10`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&quotePlan, "plan", "", "plan slug from the catalog")
	quoteCmd.Flags().StringVar(&quoteRegion, "region", "US", "region code")
	quoteCmd.Flags().StringVar(&quoteCycle, "cycle", "monthly", "billing cycle (monthly, yearly, 3_year)")
	quoteCmd.Flags().IntVar(&quoteSeats, "seats", 1, "total seat count")
	quoteCmd.Flags().Float64Var(&quoteCoupon, "coupon", 0, "coupon discount percentage in [0,100]")
	_ = quoteCmd.MarkFlagRequired("plan")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cycle := types.BillingCycle(quoteCycle)
	if err := cycle.Validate(); err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	plans, err := loadPlanCatalog(catalogFile)
	if err != nil {
		return err
	}
	p, err := findPlan(plans, quotePlan)
	if err != nil {
		return err
	}

	breakdown, err := svc.CalculatePrice(ctx, pricing.PricingParams{
		Plan:           p,
		Region:         svc.GetRegion(ctx, quoteRegion),
		BillingCycle:   cycle,
		SeatCount:      quoteSeats,
		CouponDiscount: decimal.NewFromFloat(quoteCoupon),
	})
	if err != nil {
		return err
	}

	printBreakdown(cmd, breakdown)
	return nil
}

func printBreakdown(cmd *cobra.Command, b pricing.PricingBreakdown) {
	money := func(amount decimal.Decimal) string {
		return pricing.FormatPrice(amount, b.Currency, b.CurrencySymbol)
	}

	cmd.Printf("Plan:                 %s\n", b.PlanSlug)
	cmd.Printf("Region:               %s (multiplier %s)\n", b.RegionCode, b.PriceMultiplier)
	cmd.Printf("Billing cycle:        %s\n", b.BillingCycle)
	cmd.Printf("Base price:           %s\n", money(b.BasePrice))
	cmd.Printf("Seats:                %d included, %d additional at %s\n",
		b.IncludedSeats, b.AdditionalSeats, money(b.PerSeatPrice))
	cmd.Printf("Subtotal:             %s\n", money(b.Subtotal))
	cmd.Printf("Cycle discount:       %s%% (-%s)\n", b.BillingDiscountPercent, money(b.BillingDiscountAmount))
	cmd.Printf("Volume discount:      %s%% (-%s)\n", b.VolumeDiscountPercent, money(b.VolumeDiscountAmount))
	cmd.Printf("Coupon discount:      %s%% (-%s)\n", b.CouponDiscountPercent, money(b.CouponDiscountAmount))
	cmd.Printf("Per month:            %s\n", money(b.TotalPerMonth))
	cmd.Printf("Billed per cycle:     %s\n", b.DisplayTotal)
}
