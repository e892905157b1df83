package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tradegains/tax"
	"tradegains/timeline"
)

var fifoCmd = &cobra.Command{
	Use:   "fifo",
	Short: "Compute German Verlusttopf gains (first-in-first-out)",
	Long: `Compute realized gains per the German FIFO method.

Every instrument keeps an ordered queue of acquisition lots; sells consume
the oldest lots first. Equities feed the Aktien-Verlusttopf, all other
instrument types the sonstige pool. Amounts are net of transaction costs.

Example:
  tradegains fifo --events all_events.json --year 2025`,
	RunE: runFIFO,
}

var (
	fifoEvents string
	fifoYear   int
	fifoPrefix string
)

func init() {
	rootCmd.AddCommand(fifoCmd)

	fifoCmd.Flags().StringVarP(&fifoEvents, "events", "e", "", "path to all_events.json (default from config)")
	fifoCmd.Flags().IntVarP(&fifoYear, "year", "y", time.Now().Year(), "tax year to evaluate")
	fifoCmd.Flags().StringVar(&fifoPrefix, "out-prefix", "", "CSV report prefix (default from config)")
}

func runFIFO(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	events := fifoEvents
	if events == "" {
		events = cfg.Events.File
	}
	prefix := fifoPrefix
	if prefix == "" {
		prefix = cfg.Report.FIFOPrefix
	}

	trades, err := timeline.LoadTrades(events)
	if err != nil {
		return err
	}

	res := tax.FIFO(trades, fifoYear)

	fmt.Printf("Realisierte Gewinne/Verluste %d\n", fifoYear)
	fmt.Printf("  Aktien-Verlusttopf: %.2f EUR\n", res.Realized[tax.CategoryStock])
	fmt.Printf("  Sonstiger Verlusttopf: %.2f EUR\n", res.Realized[tax.CategoryOther])
	fmt.Println("\nDetails pro Verkauf:")
	for _, s := range res.Sales {
		fmt.Printf("  %s %s (%s) | %s Stk | Erlös %.2f | Kosten %.2f | PnL %.2f | Topf %s\n",
			s.Date.Format("2006-01-02"), s.Title, s.ISIN,
			shares(s.Shares), s.Proceeds, s.CostBasis, s.Profit, s.Category)
	}

	csvPath, err := writeSalesReport(cfg, "fifo", prefix, fifoYear, res.Sales, true)
	if err != nil {
		return err
	}
	fmt.Printf("\nCSV gespeichert: %s\n", csvPath)

	printWarnings(res.Warnings)
	return nil
}
