package searchvolume

import (
	"context"
	"fmt"
	"time"

	"trends-dashboard/internal/api/common/query"
	"trends-dashboard/internal/api/common/series"
	"trends-dashboard/internal/chart"
	"trends-dashboard/internal/models"
	"trends-dashboard/internal/trends"
)

// Provider loads the stitched daily series for a keyword.
type Provider interface {
	DailyData(ctx context.Context, keyword string, start, end time.Time, geo string) ([]trends.DailyPoint, error)
}

type SearchVolumeRepository interface {
	Save(ctx context.Context, keyword, geo string, points []trends.DailyPoint) error
	Find(ctx context.Context, keyword, geo string, start, end time.Time) ([]models.SearchVolume, error)
}

type SearchVolumeService interface {
	GetSearchVolume(ctx context.Context, query query.Query) (*SearchVolume, error)
	GetHistory(ctx context.Context, query query.Query) (*SearchVolume, error)
	RenderChart(ctx context.Context, query query.Query) ([]byte, error)
}

type SearchVolume struct {
	Keyword   string    `json:"keyword"`
	Geo       string    `json:"geo"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	// daily search volume
	Series        series.TimeSeries           `json:"series"`
	MovingAverage []series.MovingAveragePoint `json:"moving_average,omitempty"`
	Window        int                         `json:"window,omitempty"`
	YAxis         *series.AxisRange           `json:"y_axis,omitempty"`
	Summary       series.Summary              `json:"summary"`
	Description   string                      `json:"description"`
}

// Chart returns the line chart input for sv.
func (sv *SearchVolume) Chart() chart.SearchVolumeChart {
	return chart.SearchVolumeChart{
		Title:         fmt.Sprintf("Search volume for '%s'", sv.Keyword),
		Series:        sv.Series,
		MovingAverage: sv.MovingAverage,
		YAxis:         sv.YAxis,
	}
}

// toSeries converts provider rows into a validated time series.
func toSeries(points []trends.DailyPoint) (series.TimeSeries, error) {
	datapoints := make([]series.Datapoint, len(points))
	for i, point := range points {
		datapoints[i] = series.Datapoint{
			Time:  point.Date,
			Value: point.Value,
		}
	}
	return series.New(datapoints)
}

func storedToSeries(rows []models.SearchVolume) (series.TimeSeries, error) {
	datapoints := make([]series.Datapoint, len(rows))
	for i, row := range rows {
		datapoints[i] = series.Datapoint{
			Time:  row.Date.UTC(),
			Value: row.Value,
		}
	}
	return series.New(datapoints)
}
