package reddit

import (
	"context"
	"fmt"

	"dealfinder/config"
	"dealfinder/models"
	"dealfinder/utils"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// listing mirrors the subset of a subreddit JSON listing we read
type listing struct {
	Data struct {
		Children []child `json:"children"`
	} `json:"data"`
}

type child struct {
	Data post `json:"data"`
}

type post struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Stickied bool   `json:"stickied"`
}

// RedditClient collects deals from a subreddit's JSON feed
type RedditClient struct {
	url    string
	http   *resty.Client
	logger *utils.Logger
}

// NewRedditClient creates a client for cfg.RedditURL
func NewRedditClient(cfg config.Config, logger *utils.Logger) *RedditClient {
	client := resty.New().
		SetTimeout(cfg.HTTPTimeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &RedditClient{url: cfg.RedditURL, http: client, logger: logger}
}

func (c *RedditClient) Name() string {
	return models.SourceReddit.String()
}

// Collect fetches the feed once. Any failure is logged and yields no deals.
func (c *RedditClient) Collect(ctx context.Context) []models.Deal {
	c.logger.Info("Fetching deals from: %s", c.url)

	deals, err := c.fetch(ctx)
	if err != nil {
		c.logger.Error("An error occurred during Reddit fetching: %v", err)
		return nil
	}
	c.logger.Info("Successfully parsed %d deals from Reddit.", len(deals))
	return deals
}

func (c *RedditClient) fetch(ctx context.Context) ([]models.Deal, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status())
	}
	return ParseListing(resp.Body())
}

// ParseListing maps a feed body to deals, dropping stickied posts
func ParseListing(body []byte) ([]models.Deal, error) {
	var feed listing
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	return lo.FilterMap(feed.Data.Children, func(c child, _ int) (models.Deal, bool) {
		p := c.Data
		if p.Stickied {
			return models.Deal{}, false
		}
		return models.Deal{
			Title:  p.Title,
			Price:  models.NoPrice,
			Link:   p.URL,
			Source: models.SourceReddit,
		}, true
	}), nil
}
