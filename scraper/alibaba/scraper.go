package alibaba

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"alibaba-rfq-scraper/config"
	"alibaba-rfq-scraper/models"
	"alibaba-rfq-scraper/utils"
)

// ErrNoListings is returned by a fetch stage whose document yielded no
// usable record.
var ErrNoListings = errors.New("no listings extracted")

// Result is the outcome of one scraping run.
type Result struct {
	Records      []*models.RFQ
	Source       models.Source
	ScrapingDate string
}

// Scraper runs the static fetch, then the browser fetch, then falls back to
// demo data, stopping at the first stage that yields records.
type Scraper struct {
	cfg       *config.Config
	logger    *utils.Logger
	static    StaticFetcher
	dynamic   DynamicFetcher
	extractor *Extractor
	retry     *utils.RetryConfig
	now       func() time.Time
}

// New creates a Scraper wired to the real HTTP and browser fetchers.
func New(cfg *config.Config, logger *utils.Logger) (*Scraper, error) {
	return NewWithFetchers(cfg, logger, NewHTTPFetcher(), NewBrowserFetcher(cfg.ChromeBin, logger))
}

// NewWithFetchers creates a Scraper using the given fetch collaborators.
func NewWithFetchers(cfg *config.Config, logger *utils.Logger, static StaticFetcher, dynamic DynamicFetcher) (*Scraper, error) {
	extractor, err := NewExtractor(cfg.BaseURL, logger)
	if err != nil {
		return nil, err
	}
	return &Scraper{
		cfg:       cfg,
		logger:    logger,
		static:    static,
		dynamic:   dynamic,
		extractor: extractor,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		now: time.Now,
	}, nil
}

// Run scrapes the configured target. Fetch failures are logged and never
// returned; the only error is ctx being done. With demo set, no network
// access happens at all.
func (s *Scraper) Run(ctx context.Context, demo bool) (*Result, error) {
	scrapedAt := s.now().Format(models.TimeLayout)
	result := &Result{Source: models.SourceNone, ScrapingDate: scrapedAt}

	if demo {
		s.logger.Info("[scraper] Demo mode, using sample data")
		result.Records = DemoRecords(scrapedAt)
		result.Source = models.SourceDemo
		return result, nil
	}

	s.logger.Info("[scraper] Target URL: %s", s.cfg.TargetURL)

	stages := []struct {
		source models.Source
		fetch  func(ctx context.Context, pageURL string) (string, error)
	}{
		{models.SourceStatic, s.static.Fetch},
		{models.SourceDynamic, s.dynamic.Render},
	}

	for _, stage := range stages {
		records, err := s.runStage(ctx, stage.source, stage.fetch, scrapedAt)
		if err == nil {
			result.Records = records
			result.Source = stage.source
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		s.logger.Warn("[scraper] %s stage failed: %v", stage.source, err)
	}

	if !s.cfg.DemoFallback {
		s.logger.Error("[scraper] All fetch stages failed and demo fallback is disabled")
		return result, nil
	}

	s.logger.Warn("[scraper] Live scraping failed, likely anti-scraping measures; substituting demo data")
	result.Records = DemoRecords(scrapedAt)
	result.Source = models.SourceDemo
	return result, nil
}

func (s *Scraper) runStage(ctx context.Context, source models.Source,
	fetch func(ctx context.Context, pageURL string) (string, error), scrapedAt string) ([]*models.RFQ, error) {
	s.logger.Info("[scraper] Attempting %s fetch", source)

	var html string
	err := s.retry.Do(ctx, string(source)+"-fetch", func(ctx context.Context) error {
		var err error
		html, err = fetch(ctx, s.cfg.TargetURL)
		return err
	})
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%s: parse document: %w", source, err)
	}

	records := s.extractor.ExtractAll(doc, scrapedAt)
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoListings)
	}
	return records, nil
}
