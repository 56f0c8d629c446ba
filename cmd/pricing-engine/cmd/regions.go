package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// regionsCmd represents the regions command
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the region table",
	RunE:  runRegions,
}

func runRegions(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	cmd.Printf("%-8s %-22s %-8s %-8s %s\n", "CODE", "NAME", "CURRENCY", "SYMBOL", "MULTIPLIER")
	for _, r := range svc.ListRegions(context.Background()) {
		cmd.Printf("%-8s %-22s %-8s %-8s %s\n",
			r.Code, r.Name, r.Currency, r.CurrencySymbol, r.PriceMultiplier)
	}
	return nil
}
