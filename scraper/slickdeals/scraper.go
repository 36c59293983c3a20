package slickdeals

import (
	"context"

	"dealfinder/config"
	"dealfinder/models"
	"dealfinder/utils"
)

// SlickdealsScraper collects deals from the Slickdeals listing page
type SlickdealsScraper struct {
	url     string
	fetcher PageFetcher
	logger  *utils.Logger
}

// NewSlickdealsScraper creates a scraper backed by a headless browser
func NewSlickdealsScraper(cfg config.Config, logger *utils.Logger) *SlickdealsScraper {
	return NewSlickdealsScraperWithFetcher(cfg.SlickdealsURL, NewBrowserFetcher(cfg.PageLoadTimeout), logger)
}

// NewSlickdealsScraperWithFetcher creates a scraper using the given fetcher
func NewSlickdealsScraperWithFetcher(pageURL string, fetcher PageFetcher, logger *utils.Logger) *SlickdealsScraper {
	return &SlickdealsScraper{url: pageURL, fetcher: fetcher, logger: logger}
}

func (s *SlickdealsScraper) Name() string {
	return models.SourceSlickdeals.String()
}

// Collect fetches and parses the listing page. Load failures are logged and
// yield no deals; rows that cannot be parsed are skipped.
func (s *SlickdealsScraper) Collect(ctx context.Context) []models.Deal {
	s.logger.Info("Fetching deals from: %s", s.url)

	html, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		s.logger.Error("An error occurred during Slickdeals scraping: %v", err)
		return nil
	}
	s.logger.Info("Slickdeals content loaded!")

	result, err := ParseDeals(html, s.url)
	if err != nil {
		s.logger.Error("An error occurred during Slickdeals scraping: %v", err)
		return nil
	}

	s.logger.Info("Found %d deal rows on Slickdeals. Parsing now...", result.Rows)
	for _, skipErr := range result.Skipped {
		s.logger.Debug("Skipping row: %v", skipErr)
	}
	s.logger.Info("Successfully parsed %d deals from Slickdeals.", len(result.Deals))
	return result.Deals
}
