package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"alibaba-rfq-scraper/config"
	"alibaba-rfq-scraper/models"
	"alibaba-rfq-scraper/scraper/alibaba"
	"alibaba-rfq-scraper/services"
	"alibaba-rfq-scraper/storage"
	"alibaba-rfq-scraper/utils"
)

// scraperFactory is swapped in tests to avoid touching the network.
var scraperFactory = alibaba.New

// run executes one scrape: fetch, normalize, persist, report. Only a
// cancelled context or an unusable configuration make it fail; an empty
// result set is reported on w and is not an error.
func run(ctx context.Context, cfg *config.Config, logger *utils.Logger, w io.Writer) error {
	startedAt := time.Now()

	logger.Info("=== Alibaba RFQ Scraper starting ===")
	logger.Info("Config: demo=%t | fallback=%t | retries=%d | output=%s",
		cfg.DemoMode, cfg.DemoFallback, cfg.MaxRetries, cfg.OutputDir)

	s, err := scraperFactory(cfg, logger)
	if err != nil {
		return fmt.Errorf("init scraper: %w", err)
	}

	result, err := s.Run(ctx, cfg.DemoMode)
	if err != nil {
		return fmt.Errorf("scrape: %w", err)
	}

	records := services.NewNormalizer(logger).Normalize(result.Records, result.ScrapingDate)
	logger.Info("Normalized dataset: %d records (source: %s)", len(records), result.Source)

	outPath := storage.OutputPath(cfg.OutputDir, startedAt)
	written, err := storage.WriteCSV(outPath, records)
	if err != nil {
		logger.Error("CSV write failed: %v", err)
	} else if written {
		logger.Info("Data saved to %s", outPath)
	} else {
		logger.Warn("No data to save")
	}

	if cfg.PostgresEnabled && len(records) > 0 {
		storeInPostgres(cfg, logger, records, result.ScrapingDate)
	}

	summarySvc := services.NewSummaryService(logger)
	report := summarySvc.Generate(records, result.Source, result.ScrapingDate)
	if !written {
		report.Sample = nil
	}
	summarySvc.Print(w, report)

	switch {
	case written:
		fmt.Fprintf(w, "\n  Done. %d RFQ records -> %s\n\n", len(records), outPath)
	case err != nil:
		fmt.Fprintf(w, "\n  Done. %d RFQ records collected but the CSV write failed, no file written.\n\n", len(records))
	default:
		fmt.Fprintf(w, "\n  Done. No RFQ records were collected, no file written.\n\n")
	}
	return nil
}

// storeInPostgres mirrors the run into PostgreSQL. Failures are logged only;
// the CSV file stays the primary output.
func storeInPostgres(cfg *config.Config, logger *utils.Logger, records []*models.RFQ, scrapingDate string) {
	pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer pgWriter.Close()

	if err := pgWriter.Write(records); err != nil {
		logger.Error("PostgreSQL write failed: %v", err)
		return
	}

	stored, err := pgWriter.FetchRun(scrapingDate)
	if err != nil {
		logger.Error("Failed to read back run from PostgreSQL: %v", err)
		return
	}
	logger.Info("PostgreSQL holds %d records for run %s (table: rfq_listings)", len(stored), scrapingDate)
}
