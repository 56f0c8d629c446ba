package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vidinfra/pricing-engine/internal/domain/pricing"
	"github.com/vidinfra/pricing-engine/internal/domain/proration"
	"github.com/vidinfra/pricing-engine/internal/types"
)

var (
	prorationOldPlan  string
	prorationNewPlan  string
	prorationRegion   string
	prorationCycle    string
	prorationOldSeats int
	prorationNewSeats int
	daysRemaining     int
	totalDays         int
)

// prorationCmd represents the proration command
var prorationCmd = &cobra.Command{
	Use:   "proration",
	Short: "Preview the charge or credit for a mid-cycle plan change",
	Long: `Compute the prorated credit for the old configuration and charge
for the new one, given the days remaining in the current billing cycle.

Example:
  pricing-engine proration --catalog plans.json --old-plan starter --new-plan team \
    --old-seats 5 --new-seats 8 --days-remaining 15 --total-days 30`,
	RunE: runProration,
}

func init() {
	prorationCmd.Flags().StringVar(&prorationOldPlan, "old-plan", "", "current plan slug")
	prorationCmd.Flags().StringVar(&prorationNewPlan, "new-plan", "", "new plan slug")
	prorationCmd.Flags().StringVar(&prorationRegion, "region", "US", "region code")
	prorationCmd.Flags().StringVar(&prorationCycle, "cycle", "monthly", "billing cycle (monthly, yearly, 3_year)")
	prorationCmd.Flags().IntVar(&prorationOldSeats, "old-seats", 1, "current seat count")
	prorationCmd.Flags().IntVar(&prorationNewSeats, "new-seats", 1, "new seat count")
	prorationCmd.Flags().IntVar(&daysRemaining, "days-remaining", 0, "days remaining in the current cycle")
	prorationCmd.Flags().IntVar(&totalDays, "total-days", 0, "total days in the current cycle")
	_ = prorationCmd.MarkFlagRequired("old-plan")
	_ = prorationCmd.MarkFlagRequired("new-plan")
	_ = prorationCmd.MarkFlagRequired("total-days")
}

func runProration(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	svc, err := newService()
	if err != nil {
		return err
	}

	plans, err := loadPlanCatalog(catalogFile)
	if err != nil {
		return err
	}
	oldPlan, err := findPlan(plans, prorationOldPlan)
	if err != nil {
		return err
	}
	newPlan, err := findPlan(plans, prorationNewPlan)
	if err != nil {
		return err
	}

	result, err := svc.CalculateProration(ctx, proration.ProrationParams{
		OldPlan:       oldPlan,
		NewPlan:       newPlan,
		Region:        svc.GetRegion(ctx, prorationRegion),
		BillingCycle:  types.BillingCycle(prorationCycle),
		OldSeats:      prorationOldSeats,
		NewSeats:      prorationNewSeats,
		DaysRemaining: daysRemaining,
		TotalDays:     totalDays,
	})
	if err != nil {
		return err
	}

	symbol := types.GetCurrencySymbol(result.Currency)
	cmd.Printf("%s\n", result.Description)
	cmd.Printf("Credit:     %s\n", pricing.FormatPrice(result.Credit, result.Currency, symbol))
	cmd.Printf("Charge:     %s\n", pricing.FormatPrice(result.Charge, result.Currency, symbol))
	cmd.Printf("Net amount: %s\n", pricing.FormatPrice(result.NetAmount, result.Currency, symbol))
	return nil
}
