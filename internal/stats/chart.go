package stats

import (
	"errors"
	"fmt"
	"io"

	"dorian-ca/internal/sims/emotion"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrTooFewSamples is returned when a chart would have fewer than two points.
var ErrTooFewSamples = errors.New("stats: need at least two samples to chart")

// WriteChart renders the active cell count and the population of every
// emotion over time as a PNG.
func (h *History) WriteChart(w io.Writer, width, height int) error {
	if len(h.samples) < 2 {
		return ErrTooFewSamples
	}
	xs := make([]float64, len(h.samples))
	active := make([]float64, len(h.samples))
	perKind := make([][]float64, emotion.NumKinds)
	for k := range perKind {
		perKind[k] = make([]float64, len(h.samples))
	}
	for i, s := range h.samples {
		xs[i] = float64(s.Generation)
		active[i] = float64(s.ActiveCells)
		for k, n := range s.Counts {
			perKind[k][i] = float64(n)
		}
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Active",
			XValues: xs,
			YValues: active,
			Style:   chart.Style{StrokeColor: drawing.ColorWhite, StrokeWidth: 3},
		},
	}
	for _, k := range emotion.Kinds() {
		c := k.Color()
		series = append(series, chart.ContinuousSeries{
			Name:    k.String(),
			XValues: xs,
			YValues: perKind[k],
			Style:   chart.Style{StrokeColor: drawing.Color{R: c.R, G: c.G, B: c.B, A: 255}, StrokeWidth: 1.5},
		})
	}

	graph := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{FillColor: drawing.ColorBlack},
		Canvas:     chart.Style{FillColor: drawing.Color{R: 16, G: 16, B: 20, A: 255}},
		XAxis: chart.XAxis{
			Name:  "Generation",
			Style: chart.Style{FontSize: 9, FontColor: drawing.ColorWhite, StrokeColor: drawing.ColorWhite},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "Cells",
			Style: chart.Style{FontSize: 9, FontColor: drawing.ColorWhite, StrokeColor: drawing.ColorWhite},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph, chart.Style{FontSize: 8})}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}
