// Package money normalizes European-formatted numeric text (comma decimals,
// dot thousands separators, currency symbols, non-breaking spaces) into
// float64 values.
package money

import (
	"regexp"
	"strconv"
	"strings"
)

// numberRe extracts the first signed decimal substring as a last resort when
// the cleaned text still refuses to parse (e.g. trailing junk).
var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

var moneyCleaner = strings.NewReplacer(" ", "", "€", "", "$", "", " ", "")

// ParseMoney converts a money string like "1.234,56 €" to 1234.56.
// Dots are treated as thousands separators and removed; the comma becomes
// the decimal point. Returns ok=false when no number can be recovered.
func ParseMoney(text string) (float64, bool) {
	clean := moneyCleaner.Replace(text)
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	return parse(clean)
}

// ParseShares converts a share-count string like "10,5" to 10.5. Unlike
// ParseMoney it keeps dots: share counts never carry thousands separators,
// and "0.5" must stay 0.5.
func ParseShares(text string) (float64, bool) {
	clean := moneyCleaner.Replace(text)
	clean = strings.ReplaceAll(clean, ",", ".")
	return parse(clean)
}

func parse(clean string) (float64, bool) {
	if f, err := strconv.ParseFloat(clean, 64); err == nil {
		return f, true
	}
	if m := numberRe.FindString(clean); m != "" {
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
