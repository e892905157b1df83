// Package tax computes realized capital gains from a trade history using
// either the Austrian moving-average method (gleitender Durchschnitt, one
// 27.5% KESt pool) or the German FIFO method (Verlusttopf, split into stock
// and other pools).
//
// Both engines walk the full trade history so that inventory reflects every
// prior year; only sales inside the requested tax year are reported.
package tax

import "time"

const (
	// zeroEps floors a position to exact zero once its quantity decays
	// below this threshold, so float residue cannot keep dust alive.
	zeroEps = 1e-9

	// shortfallEps is the tolerance before an oversold position counts as
	// an inventory shortage worth warning about.
	shortfallEps = 1e-6
)

// snap rounds a near-zero quantity to exact zero. Applied after every
// quantity mutation in both engines.
func snap(qty float64) float64 {
	if qty < zeroEps {
		return 0
	}
	return qty
}

// Sale is one reported sell: the realized figures for a sale that falls
// inside the requested tax year. Profit = Proceeds - CostBasis.
type Sale struct {
	Date      time.Time
	ISIN      string
	Title     string
	Category  string // "stock" or "other"; set by the FIFO engine only
	Shares    float64
	Proceeds  float64
	CostBasis float64
	Profit    float64
}
