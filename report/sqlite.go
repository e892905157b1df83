package report

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"tradegains/pkg/id"
	"tradegains/tax"
)

// SQLiteJournal persists calculation runs. Each journal instance represents
// one run: a row in runs plus one row per reported sale.
type SQLiteJournal struct {
	db    *sql.DB
	runID string
}

func NewSQLite(path, method string, year int) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	runID := id.New()
	_, err = db.Exec(`
		INSERT INTO runs (run_id, method, tax_year, created_at)
		VALUES (?, ?, ?, ?)`,
		runID, method, year, time.Now().UTC(),
	)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db, runID: runID}, nil
}

// RunID returns the ULID assigned to this run.
func (j *SQLiteJournal) RunID() string {
	return j.runID
}

func (j *SQLiteJournal) RecordSale(s tax.Sale) error {
	_, err := j.db.Exec(`
		INSERT INTO sales
		(run_id, sale_date, isin, title, category, shares, proceeds, cost_basis, profit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.runID, s.Date, s.ISIN, s.Title, s.Category,
		s.Shares, s.Proceeds, s.CostBasis, s.Profit,
	)
	return err
}

// ListSales returns the recorded sales of a run in insertion order.
func (j *SQLiteJournal) ListSales(runID string) ([]tax.Sale, error) {
	rows, err := j.db.Query(`
		SELECT sale_date, isin, title, category, shares, proceeds, cost_basis, profit
		FROM sales WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []tax.Sale
	for rows.Next() {
		var s tax.Sale
		if err := rows.Scan(&s.Date, &s.ISIN, &s.Title, &s.Category,
			&s.Shares, &s.Proceeds, &s.CostBasis, &s.Profit); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
