package alibaba

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"alibaba-rfq-scraper/utils"
)

const (
	waitTimeout     = 20 * time.Second
	settleDelay     = 5 * time.Second
	navigateTimeout = 90 * time.Second

	// listingWaitSelector matches anything that looks like a listing block.
	listingWaitSelector = "[class*='rfq'], [class*='item'], [class*='card']"
)

// BrowserFetcher is the DynamicFetcher backed by a headless Chrome driven
// through chromedp. Every Render call launches its own browser and closes it
// before returning.
type BrowserFetcher struct {
	chromeBin string
	logger    *utils.Logger
}

// NewBrowserFetcher creates a BrowserFetcher. An empty chromeBin means the
// binary is looked up on the system.
func NewBrowserFetcher(chromeBin string, logger *utils.Logger) *BrowserFetcher {
	if chromeBin == "" {
		chromeBin = findChromeBinary()
	}
	return &BrowserFetcher{chromeBin: chromeBin, logger: logger}
}

// Render loads pageURL, waits up to 20s for a listing-like element (or
// sleeps 5s when none shows up) and returns the rendered document.
func (b *BrowserFetcher) Render(ctx context.Context, pageURL string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(utils.RandomUserAgent()),
	)
	if b.chromeBin != "" {
		b.logger.Debug("[browser] Using browser binary: %s", b.chromeBin)
		opts = append(opts, chromedp.ExecPath(b.chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	// Start the browser without a deadline so the timeouts below only bound
	// the page work, not the browser process itself.
	if err := chromedp.Run(tabCtx); err != nil {
		return "", fmt.Errorf("browser: launch: %w", err)
	}

	runCtx, cancelRun := context.WithTimeout(tabCtx, navigateTimeout)
	defer cancelRun()

	if err := chromedp.Run(runCtx, chromedp.Navigate(pageURL)); err != nil {
		return "", fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}

	waitCtx, cancelWait := context.WithTimeout(runCtx, waitTimeout)
	err := chromedp.Run(waitCtx, chromedp.WaitReady(listingWaitSelector, chromedp.ByQuery))
	cancelWait()
	if err != nil {
		b.logger.Warn("[browser] No listing element after %v, waiting %v for general content", waitTimeout, settleDelay)
		if err := chromedp.Run(runCtx, chromedp.Sleep(settleDelay)); err != nil {
			return "", fmt.Errorf("browser: settle: %w", err)
		}
	}

	var html string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("browser: read document: %w", err)
	}
	return html, nil
}

// findChromeBinary looks for a Chrome or Chromium install on PATH and in the
// usual locations. The CHROME_BIN override is applied by config.
func findChromeBinary() string {
	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
