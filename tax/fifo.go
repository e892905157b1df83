package tax

import (
	"math"

	"tradegains/timeline"
)

// Category buckets for the German Verlusttopf split.
const (
	CategoryStock = "stock"
	CategoryOther = "other"
)

// FIFOResult is the outcome of a FIFO run.
type FIFOResult struct {
	// Realized holds the aggregate gain/loss of the requested year per
	// category: equities feed the Aktien-Verlusttopf, everything else the
	// sonstige pool.
	Realized map[string]float64
	Sales    []Sale
	Warnings []string
}

// lot is one acquisition: quantity bought and the cash paid for it
// (net total, fee included — German transaction costs are deductible).
type lot struct {
	qty  float64
	cost float64
}

// FIFO computes realized gains per the German first-in-first-out method.
// Each ISIN keeps an ordered queue of acquisition lots; sells consume lots
// oldest first, splitting the cost basis proportionally when a sale spans
// lots. Proceeds are the net sell total as exported.
//
// Like AverageCost, the whole history mutates inventory and only sales in
// year are reported.
func FIFO(trades []timeline.Trade, year int) FIFOResult {
	positions := make(map[string][]lot)
	res := FIFOResult{
		Realized: map[string]float64{CategoryStock: 0, CategoryOther: 0},
	}

	for i := range trades {
		tr := &trades[i]
		if tr.Shares == nil || tr.Total == nil {
			continue
		}

		cat := CategoryOther
		if tr.InstrumentType == "stock" {
			cat = CategoryStock
		}

		if tr.Side == timeline.Buy {
			// Buys are negative net totals in the export; lots store
			// positive cost.
			positions[tr.ISIN] = append(positions[tr.ISIN], lot{
				qty:  *tr.Shares,
				cost: math.Abs(*tr.Total),
			})
			continue
		}

		proceeds := *tr.Total // sells are positive net cash in the export
		remaining := *tr.Shares
		costSum := 0.0

		queue := positions[tr.ISIN]
		for remaining > zeroEps && len(queue) > 0 {
			front := &queue[0]
			take := math.Min(remaining, front.qty)
			costPerShare := front.cost / front.qty

			costSum += take * costPerShare
			remaining -= take
			front.qty = snap(front.qty - take)
			if front.qty == 0 {
				queue = queue[1:]
			} else {
				front.cost = front.qty * costPerShare
			}
		}
		positions[tr.ISIN] = queue

		if remaining > shortfallEps {
			res.Warnings = append(res.Warnings, shortageWarning(tr.Title, tr.ISIN, remaining))
		}

		if tr.Timestamp.Year() != year {
			continue
		}
		profit := proceeds - costSum
		res.Realized[cat] += profit
		res.Sales = append(res.Sales, Sale{
			Date:      tr.Timestamp,
			ISIN:      tr.ISIN,
			Title:     tr.Title,
			Category:  cat,
			Shares:    *tr.Shares,
			Proceeds:  proceeds,
			CostBasis: costSum,
			Profit:    profit,
		})
	}

	return res
}
