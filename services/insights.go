package services

import (
	"dealfinder/models"
	"dealfinder/utils"

	"github.com/samber/lo"
)

// InsightReport summarizes a rated set of deals
type InsightReport struct {
	TotalDeals    int
	BySource      map[models.Source]int
	RatedDeals    int // deals with a rating above zero
	AverageRating float64
	Best          *models.Deal
}

// InsightService computes summary figures for the report header
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes insights from deals
func (s *InsightService) Generate(deals []models.Deal) InsightReport {
	report := InsightReport{
		TotalDeals: len(deals),
		BySource:   lo.CountValuesBy(deals, func(d models.Deal) models.Source { return d.Source }),
	}
	if len(deals) == 0 {
		return report
	}

	rated := lo.Filter(deals, func(d models.Deal, _ int) bool { return d.Rating > 0 })
	report.RatedDeals = len(rated)
	if len(rated) == 0 {
		s.logger.Debug("No rated deals to summarize")
		return report
	}

	total := lo.SumBy(rated, func(d models.Deal) int { return d.Rating })
	report.AverageRating = float64(total) / float64(len(rated))

	// first deal wins ties, matching the stable report order
	best := lo.Reduce(rated[1:], func(acc models.Deal, d models.Deal, _ int) models.Deal {
		if d.Rating > acc.Rating {
			return d
		}
		return acc
	}, rated[0])
	report.Best = &best
	return report
}
