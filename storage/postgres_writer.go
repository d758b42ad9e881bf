package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"alibaba-rfq-scraper/models"
)

// dbColumns mirrors models.Columns.
var dbColumns = []string{
	"rfq_id",
	"title",
	"buyer_name",
	"buyer_image",
	"inquiry_time",
	"quotes_left",
	"country",
	"quantity_required",
	"email_confirmed",
	"experienced_buyer",
	"complete_order_via_rfq",
	"typical_replies",
	"interactive_user",
	"inquiry_url",
	"inquiry_date",
	"scraping_date",
}

// PostgresWriter persists RFQ records to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS rfq_listings (
			id                     SERIAL PRIMARY KEY,
			rfq_id                 TEXT NOT NULL DEFAULT '',
			title                  TEXT NOT NULL DEFAULT '',
			buyer_name             TEXT NOT NULL DEFAULT '',
			buyer_image            TEXT NOT NULL DEFAULT '',
			inquiry_time           TEXT NOT NULL DEFAULT '',
			quotes_left            TEXT NOT NULL DEFAULT '',
			country                TEXT NOT NULL DEFAULT '',
			quantity_required      TEXT NOT NULL DEFAULT '',
			email_confirmed        TEXT NOT NULL DEFAULT '',
			experienced_buyer      TEXT NOT NULL DEFAULT '',
			complete_order_via_rfq TEXT NOT NULL DEFAULT '',
			typical_replies        TEXT NOT NULL DEFAULT '',
			interactive_user       TEXT NOT NULL DEFAULT '',
			inquiry_url            TEXT NOT NULL DEFAULT '',
			inquiry_date           TEXT NOT NULL DEFAULT '',
			scraping_date          TEXT NOT NULL,
			UNIQUE (rfq_id, title, scraping_date)
		);

		CREATE INDEX IF NOT EXISTS idx_rfq_listings_country       ON rfq_listings(country);
		CREATE INDEX IF NOT EXISTS idx_rfq_listings_scraping_date ON rfq_listings(scraping_date);
	`)
	return err
}

// Write batch-inserts the records. Rows already stored for the same run are
// skipped.
func (pw *PostgresWriter) Write(records []*models.RFQ) error {
	if len(records) == 0 {
		return nil
	}

	const batchSize = 50
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		query, args := buildInsert(records[i:end])
		if _, err := pw.db.Exec(query, args...); err != nil {
			return fmt.Errorf("postgres: insert batch: %w", err)
		}
	}
	return nil
}

func buildInsert(batch []*models.RFQ) (string, []interface{}) {
	n := len(dbColumns)
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*n)

	for idx, r := range batch {
		placeholders := make([]string, n)
		for c := 0; c < n; c++ {
			placeholders[c] = fmt.Sprintf("$%d", idx*n+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		for _, v := range r.Row() {
			valueArgs = append(valueArgs, v)
		}
	}

	query := fmt.Sprintf(`
		INSERT INTO rfq_listings (%s)
		VALUES %s
		ON CONFLICT (rfq_id, title, scraping_date) DO NOTHING
	`, strings.Join(dbColumns, ", "), strings.Join(valueStrings, ","))

	return query, valueArgs
}

// FetchRun retrieves the rows stored for one scraping date, ordered by
// insertion.
func (pw *PostgresWriter) FetchRun(scrapingDate string) ([]*models.RFQ, error) {
	rows, err := pw.db.Query(fmt.Sprintf(
		"SELECT %s FROM rfq_listings WHERE scraping_date = $1 ORDER BY id",
		strings.Join(dbColumns, ", ")), scrapingDate)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch run: %w", err)
	}
	defer rows.Close()

	var records []*models.RFQ
	for rows.Next() {
		values := make([]string, len(dbColumns))
		dest := make([]interface{}, len(values))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("postgres: scan: %w", err)
		}
		records = append(records, models.FromRow(values))
	}
	return records, rows.Err()
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
