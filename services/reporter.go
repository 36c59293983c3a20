package services

import (
	"fmt"
	"io"
	"strings"

	"dealfinder/models"
	"dealfinder/utils"

	"github.com/jedib0t/go-pretty/v6/table"
)

const reportWidth = 55

// PrintReport writes the insight header and the rated deals, best first, to
// w. Nothing is written for an empty deal list.
func PrintReport(w io.Writer, report InsightReport, deals []models.Deal) {
	if len(deals) == 0 {
		return
	}
	printInsights(w, report)
	printDeals(w, deals)
}

func printInsights(w io.Writer, report InsightReport) {
	border := strings.Repeat("═", reportWidth)
	thin := strings.Repeat("─", reportWidth)

	fmt.Fprintf(w, "\n╔%s╗\n", border)
	fmt.Fprintf(w, "║%s║\n", center("AI-RATED DEALS (BEST FIRST)", reportWidth))
	fmt.Fprintf(w, "╚%s╝\n", border)

	fmt.Fprintf(w, "\n OVERVIEW\n%s\n", thin)
	fmt.Fprintf(w, "  Total Deals        : %d\n", report.TotalDeals)
	for _, src := range []models.Source{models.SourceSlickdeals, models.SourceReddit} {
		fmt.Fprintf(w, "  %-19s: %d\n", src.String()+" Deals", report.BySource[src])
	}
	fmt.Fprintf(w, "  Rated Deals        : %d\n", report.RatedDeals)
	if report.RatedDeals > 0 {
		fmt.Fprintf(w, "  Average Rating     : %.1f/10\n", report.AverageRating)
	}

	if report.Best != nil {
		fmt.Fprintf(w, "\n TOP DEAL\n%s\n", thin)
		fmt.Fprintf(w, "  Title  : %s\n", report.Best.Title)
		fmt.Fprintf(w, "  Rating : %d/10\n", report.Best.Rating)
		fmt.Fprintf(w, "  Link   : %s\n", report.Best.Link)
	}
	fmt.Fprintln(w)
}

func printDeals(w io.Writer, deals []models.Deal) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Source", "Rating", "Title", "Price", "Link"})
	for i, d := range deals {
		t.AppendRow(table.Row{
			i + 1,
			d.Source.String(),
			fmt.Sprintf("%d/10", d.Rating),
			utils.Truncate(d.Title, 60),
			d.Price,
			d.Link,
		})
	}
	t.Render()
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}
