// Package cmd provides the CLI commands for the pricing engine.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vidinfra/pricing-engine/internal/config"
	"github.com/vidinfra/pricing-engine/internal/logger"
	"github.com/vidinfra/pricing-engine/internal/service"
	"github.com/vidinfra/pricing-engine/internal/types"
)

var (
	catalogFile string
	regionsFile string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricing-engine",
	Short: "Compute subscription prices and mid-cycle proration",
	Long: `pricing-engine computes subscription price breakdowns and the
charge or credit owed when a subscriber changes plan or seat count
mid-cycle.

Plans come from a JSON catalog file; regions default to the built-in
table unless a region catalog file is given.

Examples:
  pricing-engine quote --catalog plans.json --plan team --region IN --cycle yearly --seats 12
  pricing-engine proration --catalog plans.json --old-plan starter --new-plan team --old-seats 5 --new-seats 8 --days-remaining 15 --total-days 30
  pricing-engine regions`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "plan catalog file (JSON)")
	rootCmd.PersistentFlags().StringVar(&regionsFile, "regions-file", "", "region catalog file (JSON, defaults to the built-in table)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(prorationCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// newService builds a pricing service from the CLI flags.
func newService() (service.PricingService, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = types.LogLevelDebug
	}
	if catalogFile != "" {
		cfg.Catalog.PlansFile = catalogFile
	}
	if regionsFile != "" {
		cfg.Catalog.RegionsFile = regionsFile
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	regions, err := loadRegionCatalog(cfg.Catalog.RegionsFile)
	if err != nil {
		return nil, err
	}

	return service.NewPricingService(service.ServiceParams{
		Logger:  log,
		Config:  cfg,
		Regions: regions,
	}), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("pricing-engine version 0.1.0")
	},
}
