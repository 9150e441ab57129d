package chart

import (
	"bytes"
	"strings"

	"cryptopulse-dashboard/internal/types"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	upColor   = drawing.Color{R: 0, G: 200, B: 81, A: 255}
	downColor = drawing.Color{R: 255, G: 68, B: 68, A: 255}
)

// RenderChangeOverview draws a PNG bar chart of each asset's 24h percentage
// change, green for gains and red for losses. Only the current snapshot is
// charted; there is no historical series.
func RenderChangeOverview(assets []types.Asset) ([]byte, error) {
	if len(assets) == 0 {
		return nil, errors.New("no assets to chart")
	}

	bars := make([]chart.Value, 0, len(assets))
	for _, asset := range assets {
		color := upColor
		if asset.Change24h < 0 {
			color = downColor
		}
		bars = append(bars, chart.Value{
			Label: strings.ToUpper(asset.Symbol),
			Value: asset.Change24h,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
			},
		})
	}

	graph := chart.BarChart{
		Title:        "24h price change (%)",
		Width:        1200,
		Height:       512,
		BarWidth:     80,
		UseBaseValue: true,
		BaseValue:    0,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "render change overview")
	}

	return buf.Bytes(), nil
}
