package chart_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/series"
	"trends-dashboard/internal/chart"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func testSeries(values ...float64) series.TimeSeries {
	day0 := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	ts := make(series.TimeSeries, len(values))
	for i, v := range values {
		ts[i] = series.Datapoint{Time: day0.AddDate(0, 0, i), Value: v}
	}
	return ts
}

func TestSearchVolumePNG(t *testing.T) {
	ts := testSeries(10, 20, 30, 40, 50, 60, 70, 65, 55)
	ma, err := ts.MovingAverage(series.DefaultWindow)
	require.NoError(t, err)
	axis, err := ts.DynamicYAxis()
	require.NoError(t, err)

	tests := []struct {
		name  string
		chart chart.SearchVolumeChart
	}{
		{name: "plain", chart: chart.SearchVolumeChart{Title: "golang", Series: ts}},
		{name: "moving average", chart: chart.SearchVolumeChart{Title: "golang", Series: ts, MovingAverage: ma}},
		{name: "dynamic y axis", chart: chart.SearchVolumeChart{Title: "golang", Series: ts, MovingAverage: ma, YAxis: &axis}},
		{name: "flat", chart: chart.SearchVolumeChart{Series: testSeries(5, 5, 5)}},
		{name: "single point", chart: chart.SearchVolumeChart{Series: testSeries(42)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := chart.SearchVolumePNG(tt.chart)
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(png, pngSignature))
		})
	}
}

func TestSearchVolumeEmpty(t *testing.T) {
	_, err := chart.SearchVolumePNG(chart.SearchVolumeChart{})
	require.ErrorIs(t, err, commonerrors.ErrNoData)
}

func TestBarsPNG(t *testing.T) {
	tests := []struct {
		name string
		bars []chart.Bar
	}{
		{name: "ranked", bars: []chart.Bar{
			{Label: "golang tutorial", Value: 100},
			{Label: "go generics", Value: 42},
			{Label: "go modules", Value: 7},
		}},
		{name: "single", bars: []chart.Bar{{Label: "golang", Value: 100}}},
		{name: "all zero", bars: []chart.Bar{
			{Label: "golang", Value: 0},
			{Label: "gopher", Value: 0},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			png, err := chart.BarsPNG(chart.BarChart{
				Title:  "Top Queries and their values",
				YLabel: "Top Query Value",
				Bars:   tt.bars,
			})
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(png, pngSignature))
		})
	}

	_, err := chart.BarsPNG(chart.BarChart{})
	require.ErrorIs(t, err, commonerrors.ErrNoData)
}
