package slickdeals

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"dealfinder/models"

	"github.com/PuerkitoBio/goquery"
)

// CSS selectors for the deals listing page
const (
	RowSelector   = "div.dealRow"
	TitleSelector = "div.dealTitle a"
	PriceSelector = "div.price > span"
)

var (
	errNoTitle = errors.New("no title element")
	errNoPrice = errors.New("no price element")
	errEmpty   = errors.New("empty title or price")
)

// ParseResult holds the deals parsed from one page
type ParseResult struct {
	Rows    int // deal rows found on the page
	Deals   []models.Deal
	Skipped []error // one entry per row that could not be parsed
}

// ParseDeals extracts deals from rendered page HTML. Relative links are
// resolved against pageURL.
func ParseDeals(html string, pageURL string) (ParseResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, _ := url.Parse(pageURL)

	var result ParseResult
	doc.Find(RowSelector).Each(func(i int, row *goquery.Selection) {
		result.Rows++
		deal, err := parseRow(row, base)
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Errorf("row %d: %w", i, err))
			return
		}
		result.Deals = append(result.Deals, deal)
	})
	return result, nil
}

func parseRow(row *goquery.Selection, base *url.URL) (models.Deal, error) {
	titleEl := row.Find(TitleSelector).First()
	if titleEl.Length() == 0 {
		return models.Deal{}, errNoTitle
	}
	priceEl := row.Find(PriceSelector).First()
	if priceEl.Length() == 0 {
		return models.Deal{}, errNoPrice
	}

	title := strings.TrimSpace(titleEl.Text())
	price := strings.TrimSpace(priceEl.Text())
	if title == "" || price == "" {
		return models.Deal{}, errEmpty
	}

	href, _ := titleEl.Attr("href")
	return models.Deal{
		Title:  title,
		Price:  price,
		Link:   resolve(base, strings.TrimSpace(href)),
		Source: models.SourceSlickdeals,
	}, nil
}

func resolve(base *url.URL, href string) string {
	if href == "" || base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
