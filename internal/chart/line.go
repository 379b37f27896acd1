package chart

import (
	"bytes"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/series"
)

const (
	lineWidth  = 1200
	lineHeight = 600
)

var (
	volumeColor  = drawing.ColorFromHex("1f77b4")
	averageColor = drawing.ColorFromHex("ff7f0e")
)

type SearchVolumeChart struct {
	Title         string
	Series        series.TimeSeries
	MovingAverage []series.MovingAveragePoint
	// YAxis pins the value axis; nil lets the renderer fit the data.
	YAxis *series.AxisRange
}

// RenderSearchVolume draws the daily search volume, and the moving average when
// present, as a PNG line chart.
func RenderSearchVolume(w io.Writer, c SearchVolumeChart) error {
	if len(c.Series) == 0 {
		return commonerrors.ErrNoData
	}

	volume := gochart.TimeSeries{
		Name: "Search Volume",
		Style: gochart.Style{
			StrokeColor: volumeColor,
			StrokeWidth: 2,
		},
	}
	for _, point := range c.Series {
		volume.XValues = append(volume.XValues, point.Time)
		volume.YValues = append(volume.YValues, point.Value)
	}

	graph := gochart.Chart{
		Title:  c.Title,
		Width:  lineWidth,
		Height: lineHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:           "Date",
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006-01-02"),
			Style:          gochart.Style{TextRotationDegrees: 45.0},
		},
		YAxis: gochart.YAxis{
			Name: "Search Volume",
		},
		Series: []gochart.Series{volume},
	}

	if average, ok := movingAverageSeries(c.MovingAverage); ok {
		graph.Series = append(graph.Series, average)
	}

	if len(c.Series) == 1 {
		t := c.Series[0].Time
		graph.XAxis.Range = &gochart.ContinuousRange{
			Min: gochart.TimeToFloat64(t.AddDate(0, 0, -1)),
			Max: gochart.TimeToFloat64(t.AddDate(0, 0, 1)),
		}
	}
	graph.YAxis.Range = yRange(c.Series, c.YAxis)

	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	return graph.Render(gochart.PNG, w)
}

func movingAverageSeries(points []series.MovingAveragePoint) (gochart.TimeSeries, bool) {
	average := gochart.TimeSeries{
		Name: "Moving Average",
		Style: gochart.Style{
			StrokeColor: averageColor,
			StrokeWidth: 2,
		},
	}
	for _, point := range points {
		if point.Value == nil {
			continue
		}
		average.XValues = append(average.XValues, point.Time)
		average.YValues = append(average.YValues, *point.Value)
	}
	return average, len(average.XValues) > 0
}

// yRange returns nil to autoscale, except when the axis is pinned or the data
// is flat, which the renderer cannot scale on its own.
func yRange(ts series.TimeSeries, axis *series.AxisRange) gochart.Range {
	if axis != nil {
		max := axis.Max
		if max <= axis.Min {
			max = axis.Min + 1
		}
		return &gochart.ContinuousRange{Min: axis.Min, Max: max}
	}

	summary, err := ts.Summarize()
	if err != nil || summary.Max > summary.Min {
		return nil
	}
	return &gochart.ContinuousRange{Min: summary.Min - 1, Max: summary.Max + 1}
}

// SearchVolumePNG renders the chart into memory.
func SearchVolumePNG(c SearchVolumeChart) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderSearchVolume(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

