package slickdeals

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// PageFetcher renders a page and returns its HTML once deal rows are present
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// BrowserFetcher renders pages in a headless Chrome session
type BrowserFetcher struct {
	timeout time.Duration
}

// NewBrowserFetcher creates a fetcher that waits up to timeout for deal rows
func NewBrowserFetcher(timeout time.Duration) *BrowserFetcher {
	return &BrowserFetcher{timeout: timeout}
}

// newContext creates a fresh chromedp context (one browser, one tab)
func newContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("log-level", "3"),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Fetch launches the browser, navigates to pageURL and returns the document
// HTML. The browser is shut down before Fetch returns.
func (f *BrowserFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	browserCtx, cancel := newContext(ctx)
	defer cancel()

	// start the browser first; the load timeout bounds navigation and waiting only
	if err := chromedp.Run(browserCtx); err != nil {
		return "", fmt.Errorf("browser start failed: %w", err)
	}

	loadCtx, cancelLoad := context.WithTimeout(browserCtx, f.timeout)
	defer cancelLoad()

	var html string
	err := chromedp.Run(loadCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(RowSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("page load failed: %w", err)
	}
	return html, nil
}
