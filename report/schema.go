// report/schema.go
package report

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	method TEXT NOT NULL,
	tax_year INTEGER NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS sales (
	run_id TEXT NOT NULL REFERENCES runs(run_id),
	sale_date DATETIME NOT NULL,
	isin TEXT NOT NULL,
	title TEXT NOT NULL,
	category TEXT NOT NULL,
	shares REAL NOT NULL,
	proceeds REAL NOT NULL,
	cost_basis REAL NOT NULL,
	profit REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sales_run ON sales(run_id);
`
