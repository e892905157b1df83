package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradegains/tax"
	"tradegains/timeline"
)

var avgcostCmd = &cobra.Command{
	Use:   "avgcost",
	Short: "Compute Austrian KESt gains (gleitender Durchschnitt)",
	Long: `Compute realized gains per the Austrian moving-average method.

Every instrument keeps one weighted-average cost pool; all instruments
aggregate into the single 27.5% KESt pool. Broker fees are not deductible
for private capital assets and are excluded from cost basis and proceeds.

Example:
  tradegains avgcost --events all_events.json --year 2025`,
	RunE: runAvgcost,
}

var (
	avgEvents string
	avgYear   int
	avgPrefix string
)

func init() {
	rootCmd.AddCommand(avgcostCmd)

	avgcostCmd.Flags().StringVarP(&avgEvents, "events", "e", "", "path to all_events.json (default from config)")
	avgcostCmd.Flags().IntVarP(&avgYear, "year", "y", time.Now().Year(), "tax year to evaluate")
	avgcostCmd.Flags().StringVar(&avgPrefix, "out-prefix", "", "CSV report prefix (default from config)")
}

func runAvgcost(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	events := avgEvents
	if events == "" {
		events = cfg.Events.File
	}
	prefix := avgPrefix
	if prefix == "" {
		prefix = cfg.Report.AvgcostPrefix
	}

	trades, err := timeline.LoadTrades(events)
	if err != nil {
		return err
	}

	res := tax.AverageCost(trades, avgYear)

	fmt.Printf("Realisierte Gewinne/Verluste %d\n", avgYear)
	fmt.Printf("  Gesamt (27,5 %% KESt): %.2f EUR\n", res.Realized)
	fmt.Println("\nDetails pro Verkauf:")
	for _, s := range res.Sales {
		fmt.Printf("  %s %s (%s) | %s Stk | Erlös %.2f | Kosten %.2f | PnL %.2f\n",
			s.Date.Format("2006-01-02"), s.Title, s.ISIN,
			shares(s.Shares), s.Proceeds, s.CostBasis, s.Profit)
	}

	csvPath, err := writeSalesReport(cfg, "avgcost", prefix, avgYear, res.Sales, false)
	if err != nil {
		return err
	}
	fmt.Printf("\nCSV gespeichert: %s\n", csvPath)

	printWarnings(res.Warnings)
	return nil
}
