package models

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSortByRating(t *testing.T) {
	deals := []Deal{
		{Title: "a", Source: SourceSlickdeals, Rating: 3},
		{Title: "b", Source: SourceSlickdeals, Rating: 7},
		{Title: "c", Source: SourceReddit, Rating: 3},
		{Title: "d", Source: SourceReddit, Rating: 10},
		{Title: "e", Source: SourceReddit, Rating: 0},
		{Title: "f", Source: SourceSlickdeals, Rating: 7},
	}

	sorted := SortByRating(deals)

	var titles []string
	for _, d := range sorted {
		titles = append(titles, d.Title)
	}
	if diff := cmp.Diff([]string{"d", "b", "f", "a", "c", "e"}, titles); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}

	// input untouched
	require.Equal(t, "a", deals[0].Title)
}

func TestSortByRatingEmpty(t *testing.T) {
	require.Empty(t, SortByRating(nil))
}

func TestRatingResultOK(t *testing.T) {
	require.True(t, RatingResult{Rating: 5}.OK())
	require.False(t, RatingResult{Err: errors.New("boom")}.OK())
}

