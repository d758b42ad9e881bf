package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"alibaba-rfq-scraper/models"
)

// ErrNoRecords is returned when there is nothing to persist. It means no
// output was produced, not that writing failed.
var ErrNoRecords = errors.New("no records to write")

const filePrefix = "alibaba_rfq_data_"

// OutputPath returns the timestamped CSV path for a run started at t.
func OutputPath(dir string, t time.Time) string {
	return filepath.Join(dir, filePrefix+t.Format("20060102_150405")+".csv")
}

// CSVWriter writes RFQ records to a UTF-8 CSV file with the fixed column
// header. The file is only created once there is at least one record.
// It is safe for concurrent use.
type CSVWriter struct {
	mu   sync.Mutex
	path string
}

// NewCSVWriter creates a writer targeting path. Nothing touches the disk
// until Write is called.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Path returns the file the writer targets.
func (c *CSVWriter) Path() string {
	return c.path
}

// Write creates (or truncates) the file and writes the header plus one row
// per record. Intermediate directories are created automatically.
func (c *CSVWriter) Write(records []*models.RFQ) error {
	if len(records) == 0 {
		return ErrNoRecords
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", c.path, err)
	}

	if err := writeRecords(csv.NewWriter(f), records); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close is a no-op; every Write closes its own file.
func (c *CSVWriter) Close() error {
	return nil
}

func writeRecords(w *csv.Writer, records []*models.RFQ) error {
	if err := w.Write(models.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for _, r := range records {
		if err := w.Write(r.Row()); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return nil
}

// WriteCSV writes records to path. It reports whether a file was produced;
// an empty slice produces no file and no error.
func WriteCSV(path string, records []*models.RFQ) (bool, error) {
	err := NewCSVWriter(path).Write(records)
	if errors.Is(err, ErrNoRecords) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
