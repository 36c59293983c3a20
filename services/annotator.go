package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"dealfinder/models"
	"dealfinder/utils"
)

var digitsRegex = regexp.MustCompile(`\d+`)

var ErrNoRating = errors.New("no number found in AI response")

// Generator produces free text for a prompt
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Limiter paces calls to the generator
type Limiter interface {
	Wait(ctx context.Context) error
	Delay() time.Duration
}

// Annotator assigns AI-derived desirability ratings to deals
type Annotator struct {
	gen     Generator // nil when no credential is configured
	limiter Limiter
	logger  *utils.Logger
}

// NewAnnotator creates an Annotator. A nil gen disables rating.
func NewAnnotator(gen Generator, limiter Limiter, logger *utils.Logger) *Annotator {
	return &Annotator{gen: gen, limiter: limiter, logger: logger}
}

// Enabled reports whether a generator is configured
func (a *Annotator) Enabled() bool {
	return a.gen != nil
}

// Annotate rates each deal in place and returns the same slice. Each
// attempt is followed by the limiter's pause, whether it succeeded or not.
func (a *Annotator) Annotate(ctx context.Context, deals []models.Deal) []models.Deal {
	if len(deals) == 0 {
		return deals
	}
	if !a.Enabled() {
		a.logger.Warn("Skipping AI analysis due to missing API key.")
		return deals
	}

	a.logger.Info("Analyzing %d deals with AI... (about %s between calls)", len(deals), a.limiter.Delay())
	for i := range deals {
		deal := &deals[i]
		short := utils.Truncate(deal.Title, 50)

		res := a.rate(ctx, deal.Title)
		deal.Rating = res.Rating
		if res.OK() {
			a.logger.Info("Rated '%s' as a %d/10", short, res.Rating)
		} else {
			a.logger.Error("Could not rate '%s': %v", short, res.Err)
			if res.Raw != "" {
				a.logger.Error("   Problematic AI response: %s", res.Raw)
			}
		}

		if err := a.limiter.Wait(ctx); err != nil {
			a.logger.Warn("Rate limit wait interrupted: %v", err)
		}
	}
	return deals
}

func (a *Annotator) rate(ctx context.Context, title string) models.RatingResult {
	raw, err := a.gen.Generate(ctx, BuildPrompt(title))
	if err != nil {
		return models.RatingResult{Err: err}
	}
	rating, err := ParseRating(raw)
	if err != nil {
		return models.RatingResult{Raw: raw, Err: err}
	}
	return models.RatingResult{Rating: rating, Raw: raw}
}

// BuildPrompt asks for a single 1-10 score for the deal title
func BuildPrompt(title string) string {
	return fmt.Sprintf("Analyze the following deal. On a scale of 1-10, how likely is this to be a price error or an amazing deal? Respond with ONLY a single number and nothing else. DEAL: \"%s\"", title)
}

// ParseRating reads the first run of digits in text. Values outside 0-10
// are rejected.
func ParseRating(text string) (int, error) {
	match := digitsRegex.FindString(text)
	if match == "" {
		return 0, ErrNoRating
	}
	rating, err := strconv.Atoi(match)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q: %w", match, err)
	}
	if rating < models.MinRating || rating > models.MaxRating {
		return 0, fmt.Errorf("rating %d out of range %d-%d", rating, models.MinRating, models.MaxRating)
	}
	return rating, nil
}
