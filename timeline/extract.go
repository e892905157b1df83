package timeline

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"tradegains/money"
)

// cancelWords are subtitle fragments that mark an order as never executed.
var cancelWords = []string{"storniert", "abgebrochen", "abgelaufen"}

// sharesRowTitles and priceRowTitles label the rows of the nested
// transaction table. The export mixes German wordings per product.
var (
	sharesRowTitles = []string{"Aktien", "Stück", "Anteile"}
	priceRowTitles  = []string{"Aktienkurs", "Preis", "Ausführungskurs"}
)

// qtyTimesPrice matches free text like "1 × 156,60 €".
var qtyTimesPrice = regexp.MustCompile(`(-?\d+[\.,]?\d*)\s*×\s*(-?\d+[\.,]?\d*)`)

// ParseTradeEvent classifies one raw timeline event and extracts the trade
// fields from its nested detail sections. It returns nil for anything that
// is not an executed buy or sell: card payments, dividends, cancelled or
// expired orders, interest postings and so on.
//
// Field discovery is best effort. Every lookup short-circuits to "absent"
// when a key is missing; nothing here ever fails hard.
func ParseTradeEvent(ev map[string]any) *Trade {
	subtitle := strings.ToLower(asString(ev["subtitle"]))
	for _, w := range cancelWords {
		if strings.Contains(subtitle, w) {
			return nil
		}
	}

	// Prefer the explicit status flag when present.
	status := strings.ToLower(asString(ev["status"]))
	if status != "" && status != "executed" {
		return nil
	}

	var side Side
	switch {
	case strings.Contains(subtitle, "verkauf") || strings.Contains(subtitle, "sell"):
		side = Sell
	case strings.Contains(subtitle, "kauf") || strings.Contains(subtitle, "buy"):
		side = Buy
	default:
		return nil
	}

	ts, ok := parseTimestamp(asString(ev["timestamp"]))
	if !ok {
		return nil
	}

	amountNet, hasAmountNet := asNumber(asMap(ev["amount"])["value"])

	tr := &Trade{
		Timestamp: ts,
		Side:      side,
		Title:     asString(ev["title"]),
	}

	for _, s := range asList(asMap(ev["details"])["sections"]) {
		sec := asMap(s)
		if sec == nil {
			continue
		}

		// The ISIN rides as the payload of the header section's action.
		if payload := asString(asMap(sec["action"])["payload"]); len(payload) == 12 {
			tr.ISIN = payload
		}

		for _, e := range asList(sec["data"]) {
			entry := asMap(e)
			if entry == nil {
				continue
			}
			title := asString(entry["title"])
			detail := asMap(entry["detail"])

			// The instrument classification hides at arbitrary depth,
			// usually inside the customer-support chat context.
			if tr.InstrumentType == "" {
				if v, ok := FindInstrumentType(detail); ok {
					tr.InstrumentType = v
				}
			}
			if tr.InstrumentType == "" {
				if v, ok := FindInstrumentType(entry); ok {
					tr.InstrumentType = v
				}
			}

			// Fee and net sum come from the overview table.
			switch title {
			case "Gebühr":
				tr.Fee = moneyValue(detailText(detail))
			case "Summe":
				tr.Total = moneyValue(detailText(detail))
			}

			// The transaction table is nested one level down, inside the
			// entry's action payload.
			parseTransactionTable(tr, asMap(asMap(detail["action"])["payload"]))

			// Fallback: free text like "1 × 156,60 €" carries quantity and
			// execution price for events without a transaction table.
			if txt := asString(detail["text"]); strings.Contains(txt, "×") {
				if m := qtyTimesPrice.FindStringSubmatch(txt); m != nil {
					if tr.Shares == nil {
						tr.Shares = sharesValue(m[1])
					}
					if tr.Price == nil {
						tr.Price = moneyValue(m[2])
					}
				}
			}
		}
	}

	if tr.InstrumentType == "" {
		tr.InstrumentType = "stock" // default guess
	}

	if tr.Total == nil && hasAmountNet {
		v := amountNet
		tr.Total = &v
	}

	// Buys: the net amount already includes the fee, so an absent fee row
	// means no separately billed fee. Stay conservative and record zero
	// rather than back-solving from the discrepancy.
	if tr.Fee == nil && tr.Total != nil && hasAmountNet && side == Buy {
		zero := 0.0
		tr.Fee = &zero
	}

	return tr
}

// parseTransactionTable pulls shares, execution price and (if still unset)
// the sum out of the nested table sections of an action payload.
func parseTransactionTable(tr *Trade, payload map[string]any) {
	for _, s := range asList(payload["sections"]) {
		sec := asMap(s)
		if asString(sec["type"]) != "table" {
			continue
		}
		for _, r := range asList(sec["data"]) {
			row := asMap(r)
			if row == nil {
				continue
			}
			title := asString(row["title"])
			val := detailText(asMap(row["detail"]))

			switch {
			case slices.Contains(sharesRowTitles, title):
				tr.Shares = sharesValue(val)
			case slices.Contains(priceRowTitles, title):
				tr.Price = moneyValue(val)
			case title == "Summe" && tr.Total == nil:
				tr.Total = moneyValue(val)
			}
		}
	}
}

// detailText returns the display text of a detail node, preferring the
// formatted displayValue over the raw text field.
func detailText(detail map[string]any) string {
	if s := asString(asMap(detail["displayValue"])["text"]); s != "" {
		return s
	}
	return asString(detail["text"])
}

func parseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	// The export writes the UTC offset as "+0000", which RFC 3339 rejects.
	raw = strings.Replace(raw, "+0000", "+00:00", 1)
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func moneyValue(text string) *float64 {
	if v, ok := money.ParseMoney(text); ok {
		return &v
	}
	return nil
}

func sharesValue(text string) *float64 {
	if v, ok := money.ParseShares(text); ok {
		return &v
	}
	return nil
}
