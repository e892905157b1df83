package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"tradegains/tax"
)

type CSVJournal struct {
	w            *csv.Writer
	f            *os.File
	withCategory bool
}

// NewCSV opens a semicolon-delimited sales report at path. withCategory
// adds the Verlusttopf category column used by the FIFO method.
func NewCSV(path string, withCategory bool) (*CSVJournal, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	w.Comma = ';'

	header := []string{"date", "title", "isin"}
	if withCategory {
		header = append(header, "category")
	}
	header = append(header, "shares", "proceeds_eur", "cost_basis_eur", "profit_eur")

	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	return &CSVJournal{w: w, f: f, withCategory: withCategory}, nil
}

func (j *CSVJournal) RecordSale(s tax.Sale) error {
	row := []string{s.Date.Format("2006-01-02"), s.Title, s.ISIN}
	if j.withCategory {
		row = append(row, s.Category)
	}
	row = append(row,
		strconv.FormatFloat(s.Shares, 'f', -1, 64),
		money(s.Proceeds),
		money(s.CostBasis),
		money(s.Profit),
	)
	if err := j.w.Write(row); err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	return j.f.Close()
}

func money(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
