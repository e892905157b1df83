// Package report renders realized-sale results: a semicolon-delimited CSV
// artifact for further analysis, and an optional SQLite journal that keeps
// runs queryable across invocations.
package report

import (
	"fmt"

	"tradegains/tax"
)

// Journal records the per-sale breakdown of one calculation run.
type Journal interface {
	RecordSale(tax.Sale) error
	Close() error
}

// CSVPath returns the conventional artifact name for a run, e.g.
// "verlusttopf_2025_sales.csv".
func CSVPath(prefix string, year int) string {
	return fmt.Sprintf("%s_%d_sales.csv", prefix, year)
}
