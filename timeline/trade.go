// Package timeline turns a Trade Republic timeline export (all_events.json
// from pytr dl_docs) into a clean, chronologically sorted list of executed
// buy and sell trades.
package timeline

import "time"

// Side marks a trade as a purchase or a sale.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// Trade is one executed order extracted from a raw timeline event.
// Optional fields are pointers: the export frequently omits them, and the
// accounting engines need to distinguish "absent" from zero.
type Trade struct {
	Timestamp      time.Time
	Side           Side
	ISIN           string // 12-character instrument id; may be empty
	InstrumentType string // defaults to "stock" when the export gives no hint
	Shares         *float64
	Price          *float64 // execution price per share
	Fee            *float64
	Total          *float64 // net cash amount: negative for buys, positive for sells
	Title          string   // display name, carried through for reporting
}

// FeeOrZero returns the order fee, treating an unknown fee as zero.
func (t *Trade) FeeOrZero() float64 {
	if t.Fee == nil {
		return 0
	}
	return *t.Fee
}
