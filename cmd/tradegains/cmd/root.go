package cmd

import (
	"github.com/spf13/cobra"

	"tradegains/config"
)

var rootCmd = &cobra.Command{
	Use:   "tradegains",
	Short: "Realized capital-gains calculator for Trade Republic timeline exports",
	Long: `Tradegains computes realized gains/losses for tax reporting from a
Trade Republic timeline export (all_events.json from pytr dl_docs).

It supports two cost-basis accounting methods:
  - avgcost: Austrian moving average (gleitender Durchschnitt, 27.5% KESt pool)
  - fifo:    German first-in-first-out (Aktien- und sonstiger Verlusttopf)

Each run prints a per-year summary with a per-sale breakdown and writes a
semicolon-delimited CSV report for further analysis.`,
}

var cfgPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (YAML or JSON)")
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgPath)
}
