package tax

import (
	"fmt"
	"math"

	"tradegains/timeline"
)

// AvgResult is the outcome of an AverageCost run.
type AvgResult struct {
	// Realized is the aggregate gain/loss of the requested year across all
	// instruments. Austrian law taxes everything in one 27.5% pool.
	Realized float64
	Sales    []Sale
	Warnings []string
}

// avgPosition is the running single pool per instrument. Average cost is
// Cost/Qty while Qty is above zero.
type avgPosition struct {
	qty  float64
	cost float64
}

// AverageCost computes realized gains per the Austrian moving-average
// method:
//
//   - one weighted-average pool per ISIN, all instruments aggregated into a
//     single tax pool;
//   - fees are not deductible for private capital assets, so buy cost
//     excludes the fee and sell proceeds have the fee added back;
//   - inventory is updated for the whole history, only sales in year are
//     reported.
func AverageCost(trades []timeline.Trade, year int) AvgResult {
	positions := make(map[string]*avgPosition)
	nonstockWarned := make(map[string]bool)
	var res AvgResult

	for i := range trades {
		tr := &trades[i]
		if tr.Shares == nil || tr.Total == nil {
			continue
		}

		if tr.InstrumentType != "stock" && !nonstockWarned[tr.ISIN] {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Instrumententyp %q für %s (%s): kein separater Topf implementiert – alles im 27,5%%-Pool.",
				tr.InstrumentType, tr.Title, tr.ISIN))
			nonstockWarned[tr.ISIN] = true
		}

		pos := positions[tr.ISIN]
		if pos == nil {
			pos = &avgPosition{}
			positions[tr.ISIN] = pos
		}
		fee := tr.FeeOrZero()

		if tr.Side == timeline.Buy {
			// Total is net and negative; exclude the non-deductible fee.
			pos.qty += *tr.Shares
			pos.cost += math.Max(0, math.Abs(*tr.Total)-fee)
			continue
		}

		// Sell: the net total already had the fee subtracted, so add it
		// back to recover gross proceeds.
		proceeds := *tr.Total + fee

		avgCost := 0.0
		if pos.qty > zeroEps {
			avgCost = pos.cost / pos.qty
		}
		used := math.Min(*tr.Shares, pos.qty)
		costBasis := used * avgCost

		pos.qty = snap(pos.qty - used)
		pos.cost -= costBasis
		if pos.qty == 0 {
			pos.cost = 0
		}

		if *tr.Shares-used > shortfallEps {
			res.Warnings = append(res.Warnings, shortageWarning(tr.Title, tr.ISIN, *tr.Shares-used))
		}

		if tr.Timestamp.Year() != year {
			continue
		}
		profit := proceeds - costBasis
		res.Realized += profit
		res.Sales = append(res.Sales, Sale{
			Date:      tr.Timestamp,
			ISIN:      tr.ISIN,
			Title:     tr.Title,
			Shares:    *tr.Shares,
			Proceeds:  proceeds,
			CostBasis: costBasis,
			Profit:    profit,
		})
	}

	return res
}

func shortageWarning(title, isin string, missing float64) string {
	return fmt.Sprintf(
		"Kein/zu wenig Bestand für %s (%s) – %.4f Stück ohne Anschaffungskosten angesetzt.",
		title, isin, missing)
}
