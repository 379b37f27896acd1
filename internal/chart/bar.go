package chart

import (
	"bytes"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"

	commonerrors "trends-dashboard/internal/api/common/errors"
)

const (
	barWidth      = 1500
	barHeight     = 800
	barSpacing    = 10
	barPlotWidth  = 1300
	minBarWidth   = 4
	barLabelAngle = 90.0
)

type Bar struct {
	Label string
	Value float64
}

type BarChart struct {
	Title  string
	YLabel string
	Bars   []Bar
}

// RenderBars draws c as a PNG bar chart in the order given.
func RenderBars(w io.Writer, c BarChart) error {
	if len(c.Bars) == 0 {
		return commonerrors.ErrNoData
	}

	var (
		values = make([]gochart.Value, len(c.Bars))
		max    float64
	)
	for i, bar := range c.Bars {
		values[i] = gochart.Value{Label: bar.Label, Value: bar.Value}
		if bar.Value > max {
			max = bar.Value
		}
	}
	if max <= 0 {
		max = 1
	}

	width := barPlotWidth/len(c.Bars) - barSpacing
	if width < minBarWidth {
		width = minBarWidth
	}

	graph := gochart.BarChart{
		Title:  c.Title,
		Width:  barWidth,
		Height: barHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 200},
		},
		BarWidth:   width,
		BarSpacing: barSpacing,
		XAxis:      gochart.Style{TextRotationDegrees: barLabelAngle},
		YAxis: gochart.YAxis{
			Name:  c.YLabel,
			Range: &gochart.ContinuousRange{Min: 0, Max: max},
		},
		Bars: values,
	}
	return graph.Render(gochart.PNG, w)
}

func BarsPNG(c BarChart) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderBars(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
