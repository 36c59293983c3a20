package models

import (
	"cmp"
	"slices"
)

// Source identifies which collector produced a Deal
type Source string

const (
	SourceSlickdeals Source = "Slickdeals"
	SourceReddit     Source = "Reddit"
)

func (s Source) String() string {
	return string(s)
}

// NoPrice is used when a source carries no price information
const NoPrice = "N/A"

// Rating bounds. A zero rating means unrated or failed to rate.
const (
	MinRating = 0
	MaxRating = 10
)

// Deal is a normalized listing produced by a collector
type Deal struct {
	Title  string
	Price  string // free text, e.g. "$19.99" or "N/A"
	Link   string
	Source Source
	Rating int // 0-10, set once by the annotator
}

// RatingResult is the outcome of one scoring attempt
type RatingResult struct {
	Rating int
	Raw    string // raw model response, empty if the call itself failed
	Err    error
}

// OK reports whether the attempt produced a usable rating
func (r RatingResult) OK() bool {
	return r.Err == nil
}

// SortByRating returns a copy of deals ordered by rating, highest first.
// Deals with equal ratings keep their relative order.
func SortByRating(deals []Deal) []Deal {
	sorted := slices.Clone(deals)
	slices.SortStableFunc(sorted, func(a, b Deal) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return sorted
}
