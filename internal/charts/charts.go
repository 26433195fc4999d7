package charts

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ivanoskov/notes_app/internal/model"
)

// ChartGenerator renders overview charts for the notes screen.
type ChartGenerator struct{}

func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// GenerateCategoryChart renders a bar chart of note counts per category
// as a PNG. Blank categories count under "Uncategorized" and names whose
// category row was deleted still get a bar, since notes keep the name as
// plain text. Returns nil when there are no notes to chart.
func (g *ChartGenerator) GenerateCategoryChart(notes []model.Note) ([]byte, error) {
	if len(notes) == 0 {
		return nil, nil
	}

	counts := make(map[string]int)
	for i := range notes {
		counts[notes[i].DisplayCategory()]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	bars := make([]chart.Value, 0, len(names))
	maxCount := 0
	for _, name := range names {
		if counts[name] > maxCount {
			maxCount = counts[name]
		}
		bars = append(bars, chart.Value{
			Label: name,
			Value: float64(counts[name]),
		})
	}

	graph := chart.BarChart{
		Title:  "Notes by category",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
			FillColor: chart.ColorWhite,
		},
		BarWidth: 60,
		Bars:     bars,
		YAxis: chart.YAxis{
			// Fixed range: a flat data set would otherwise yield a
			// zero-width axis range and fail the render.
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buf.Bytes(), nil
}
