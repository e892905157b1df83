package cmd

import (
	"fmt"
	"strconv"

	"tradegains/config"
	"tradegains/report"
	"tradegains/tax"
)

// writeSalesReport writes the CSV artifact for a run and, when configured,
// records the run in the SQLite journal. Returns the CSV path.
func writeSalesReport(cfg *config.Config, method, prefix string, year int, sales []tax.Sale, withCategory bool) (string, error) {
	csvPath := report.CSVPath(prefix, year)

	j, err := report.NewCSV(csvPath, withCategory)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	for _, s := range sales {
		if err := j.RecordSale(s); err != nil {
			j.Close()
			return "", fmt.Errorf("write report: %w", err)
		}
	}
	if err := j.Close(); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	if cfg.Journal.Type == "sqlite" {
		sj, err := report.NewSQLite(cfg.Journal.DBPath, method, year)
		if err != nil {
			return "", fmt.Errorf("open journal db: %w", err)
		}
		defer sj.Close()
		for _, s := range sales {
			if err := sj.RecordSale(s); err != nil {
				return "", fmt.Errorf("record sale: %w", err)
			}
		}
	}

	return csvPath, nil
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("\nWARNUNGEN:")
	for _, msg := range warnings {
		fmt.Println(" -", msg)
	}
}

// shares formats a share count without trailing zeros, matching the export
// ("4", "3.7", "10.5").
func shares(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
