package timeline

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventOpts shapes a minimal broker-like event with net cash totals.
// Buys: -(price*shares + fee); sells: price*shares - fee.
type eventOpts struct {
	side           Side
	isin           string
	shares         float64
	price          float64
	fee            float64
	ts             string
	instrumentType string
	subtitle       string
	status         string
}

// german formats a value with a comma decimal separator.
func german(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

func makeEvent(o eventOpts) map[string]any {
	subtitle := o.subtitle
	if subtitle == "" {
		if o.side == Buy {
			subtitle = "Kauforder"
		} else {
			subtitle = "Verkaufsorder"
		}
	}
	status := o.status
	if status == "" {
		status = "EXECUTED"
	}
	ts := o.ts
	if ts == "" {
		ts = "2025-01-01T10:00:00.000+0000"
	}

	var total float64
	if o.side == Buy {
		total = -(o.price*o.shares + o.fee)
	} else {
		total = o.price*o.shares - o.fee
	}

	row := func(title, text string) map[string]any {
		return map[string]any{
			"title": title,
			"detail": map[string]any{
				"text":         text,
				"displayValue": map[string]any{"text": text},
			},
		}
	}

	transactionRows := []any{
		row("Aktien", strconv.FormatFloat(o.shares, 'f', -1, 64)),
		row("Aktienkurs", german(o.price)),
		row("Summe", german(o.price*o.shares)),
	}
	innerPayload := map[string]any{
		"sections": []any{
			map[string]any{"type": "table", "data": transactionRows},
		},
	}

	transaction := map[string]any{
		"title": "Transaktion",
		"detail": map[string]any{
			"action": map[string]any{"payload": innerPayload},
			"text":   fmt.Sprintf("%s × %s", strconv.FormatFloat(o.shares, 'f', -1, 64), german(o.price)),
		},
	}
	if o.instrumentType != "" {
		transaction["instrumentType"] = o.instrumentType
	}

	overview := []any{
		transaction,
		row("Gebühr", german(o.fee)),
		row("Summe", german(total)),
	}

	return map[string]any{
		"id":        "dummy",
		"timestamp": ts,
		"title":     "TEST",
		"subtitle":  subtitle,
		"status":    status,
		"amount":    map[string]any{"currency": "EUR", "value": total, "fractionDigits": 2.0},
		"details": map[string]any{
			"sections": []any{
				map[string]any{"type": "header", "title": "header", "action": map[string]any{"payload": o.isin}},
				map[string]any{"type": "table", "title": "Übersicht", "data": overview},
			},
		},
	}
}

func TestParseTradeEventBuySell(t *testing.T) {
	t.Parallel()

	buy := ParseTradeEvent(makeEvent(eventOpts{side: Buy, isin: "US0000000001", shares: 10, price: 100, fee: 1}))
	require.NotNil(t, buy)
	assert.Equal(t, Buy, buy.Side)
	assert.Equal(t, "US0000000001", buy.ISIN)
	assert.Equal(t, "stock", buy.InstrumentType)
	require.NotNil(t, buy.Total)
	assert.InDelta(t, -1001.0, *buy.Total, 1e-6) // buy totals stored negative
	require.NotNil(t, buy.Shares)
	assert.InDelta(t, 10, *buy.Shares, 1e-9)
	require.NotNil(t, buy.Fee)
	assert.InDelta(t, 1.0, *buy.Fee, 1e-9)

	sell := ParseTradeEvent(makeEvent(eventOpts{side: Sell, isin: "US0000000001", shares: 4, price: 150, fee: 1, ts: "2025-02-01T10:00:00.000+0000"}))
	require.NotNil(t, sell)
	assert.Equal(t, Sell, sell.Side)
	require.NotNil(t, sell.Total)
	assert.InDelta(t, 599.0, *sell.Total, 1e-6) // sell net after fee
	require.NotNil(t, sell.Price)
	assert.InDelta(t, 150, *sell.Price, 1e-9)
	assert.Equal(t, 2025, sell.Timestamp.Year())
}

func TestParseTradeEventRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   map[string]any
	}{
		{"cancelled", makeEvent(eventOpts{side: Buy, isin: "US0000000001", shares: 1, price: 10, subtitle: "Kauforder storniert"})},
		{"expired", makeEvent(eventOpts{side: Buy, isin: "US0000000001", shares: 1, price: 10, subtitle: "Kauforder abgelaufen"})},
		{"not_executed", makeEvent(eventOpts{side: Buy, isin: "US0000000001", shares: 1, price: 10, status: "CANCELED"})},
		{"not_a_trade", makeEvent(eventOpts{side: Buy, isin: "US0000000001", shares: 1, price: 10, subtitle: "Dividende"})},
		{"no_timestamp", map[string]any{"subtitle": "Kauforder"}},
		{"empty", map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Nil(t, ParseTradeEvent(tt.ev))
		})
	}
}

func TestParseTradeEventInstrumentType(t *testing.T) {
	t.Parallel()

	deriv := ParseTradeEvent(makeEvent(eventOpts{side: Buy, isin: "DE000DERIV01", shares: 2, price: 10, instrumentType: "derivative"}))
	require.NotNil(t, deriv)
	assert.Equal(t, "derivative", deriv.InstrumentType)
}

func TestParseTradeEventFreeTextFallback(t *testing.T) {
	t.Parallel()

	// No transaction table; shares and price only appear as "1 × 156,60 €".
	ev := map[string]any{
		"timestamp": "2025-06-01T09:30:00.000+0000",
		"title":     "Sparplan",
		"subtitle":  "Kauforder",
		"amount":    map[string]any{"value": -156.60},
		"details": map[string]any{
			"sections": []any{
				map[string]any{
					"type":   "header",
					"action": map[string]any{"payload": "IE00B4L5Y983"},
				},
				map[string]any{
					"type": "table",
					"data": []any{
						map[string]any{
							"title":  "Transaktion",
							"detail": map[string]any{"text": "1 × 156,60 €"},
						},
					},
				},
			},
		},
	}

	tr := ParseTradeEvent(ev)
	require.NotNil(t, tr)
	assert.Equal(t, "IE00B4L5Y983", tr.ISIN)
	require.NotNil(t, tr.Shares)
	assert.InDelta(t, 1, *tr.Shares, 1e-9)
	require.NotNil(t, tr.Price)
	assert.InDelta(t, 156.60, *tr.Price, 1e-9)
	// Total falls back to the top-level net amount.
	require.NotNil(t, tr.Total)
	assert.InDelta(t, -156.60, *tr.Total, 1e-9)
	// Fee is conservatively zero for buys with a known net amount.
	require.NotNil(t, tr.Fee)
	assert.InDelta(t, 0, *tr.Fee, 1e-9)
}

func TestFindInstrumentType(t *testing.T) {
	t.Parallel()

	node := map[string]any{
		"a": []any{
			map[string]any{"b": map[string]any{"instrumentType": "fund"}},
		},
	}
	v, ok := FindInstrumentType(node)
	assert.True(t, ok)
	assert.Equal(t, "fund", v)

	_, ok = FindInstrumentType(map[string]any{"x": []any{1.0, "y"}})
	assert.False(t, ok)
}
