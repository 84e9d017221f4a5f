package engine

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
)

// RenderChart draws the compression ratio of every result as an SVG bar chart.
func RenderChart(path string, results []Result) error {
	if len(results) == 0 {
		return errors.New("no benchmark results to chart")
	}
	bars := make([]chart.Value, 0, len(results))
	top := 1.0
	for _, r := range results {
		bars = append(bars, chart.Value{
			Value: r.Ratio(),
			Label: filepath.Base(r.File) + " " + r.Engine,
		})
		top = max(top, r.Ratio())
	}

	const barWidth, barSpacing = 40, 20
	graph := chart.BarChart{
		Title:      "Compressed size (% of original)",
		Width:      max(640, len(bars)*(barWidth+barSpacing)+160),
		Height:     480,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Bars: bars,
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.SVG, fh); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
