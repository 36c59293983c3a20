package services

import (
	"strings"

	"dealfinder/models"
	"dealfinder/utils"
)

// DataCleaner normalizes text fields of collected deals
type DataCleaner struct {
	logger *utils.Logger
}

// NewDataCleaner creates a new DataCleaner
func NewDataCleaner(logger *utils.Logger) *DataCleaner {
	return &DataCleaner{logger: logger}
}

// Clean collapses whitespace in title, price and link. Records are never
// dropped and their order is kept.
func (c *DataCleaner) Clean(deals []models.Deal) []models.Deal {
	changed := 0
	for i := range deals {
		d := &deals[i]
		title, price, link := collapseSpaces(d.Title), collapseSpaces(d.Price), strings.TrimSpace(d.Link)
		if title != d.Title || price != d.Price || link != d.Link {
			changed++
		}
		d.Title, d.Price, d.Link = title, price, link
		if d.Price == "" {
			d.Price = models.NoPrice
		}
	}
	if changed > 0 {
		c.logger.Debug("Normalized whitespace in %d/%d deals", changed, len(deals))
	}
	return deals
}

// collapseSpaces trims s and replaces internal whitespace runs with one space
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
