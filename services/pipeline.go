package services

import (
	"context"
	"io"

	"dealfinder/models"
	"dealfinder/utils"
)

// Collector produces deals from one external source
type Collector interface {
	Name() string
	Collect(ctx context.Context) []models.Deal
}

// Pipeline runs collectors in order, rates the combined deals and prints
// the sorted report
type Pipeline struct {
	collectors []Collector
	cleaner    *DataCleaner
	annotator  *Annotator
	insights   *InsightService
	out        io.Writer
	logger     *utils.Logger
}

// NewPipeline creates a Pipeline writing its report to out
func NewPipeline(collectors []Collector, annotator *Annotator, out io.Writer, logger *utils.Logger) *Pipeline {
	return &Pipeline{
		collectors: collectors,
		cleaner:    NewDataCleaner(logger),
		annotator:  annotator,
		insights:   NewInsightService(logger),
		out:        out,
		logger:     logger,
	}
}

// Collect runs every collector in order and concatenates their deals
func (p *Pipeline) Collect(ctx context.Context) []models.Deal {
	var all []models.Deal
	for _, c := range p.collectors {
		deals := c.Collect(ctx)
		p.logger.Debug("%s returned %d deals", c.Name(), len(deals))
		all = append(all, deals...)
	}
	return p.cleaner.Clean(all)
}

// Run collects, rates and reports. It returns the deals in report order.
func (p *Pipeline) Run(ctx context.Context) []models.Deal {
	deals := p.Collect(ctx)
	p.logger.Info("Found a total of %d deals.", len(deals))
	if len(deals) == 0 {
		return deals
	}

	deals = p.annotator.Annotate(ctx, deals)
	sorted := models.SortByRating(deals)
	PrintReport(p.out, p.insights.Generate(sorted), sorted)
	return sorted
}
