package series

import (
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	commonerrors "trends-dashboard/internal/api/common/errors"
)

type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
}

type AxisRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MovingAveragePoint holds a nil Value until the trailing window is full.
type MovingAveragePoint struct {
	Time  time.Time `json:"time"`
	Value *float64  `json:"value"`
}

func (ts TimeSeries) Summarize() (Summary, error) {
	if len(ts) == 0 {
		return Summary{}, commonerrors.ErrNoData
	}

	values := ts.Values()
	return Summary{
		Mean:   stat.Mean(values, nil),
		Median: median(values),
		Max:    floats.Max(values),
		Min:    floats.Min(values),
	}, nil
}

// MovingAverage computes the trailing arithmetic mean over window points.
func (ts TimeSeries) MovingAverage(window int) ([]MovingAveragePoint, error) {
	if window < 1 {
		return nil, fmt.Errorf("moving average window must be positive, got %d", window)
	}

	values := ts.Values()
	averages := make([]MovingAveragePoint, len(ts))
	for i, point := range ts {
		averages[i].Time = point.Time
		if i+1 < window {
			continue
		}
		mean := stat.Mean(values[i+1-window:i+1], nil)
		averages[i].Value = &mean
	}
	return averages, nil
}

// DynamicYAxis pins the y-axis to [0, max].
func (ts TimeSeries) DynamicYAxis() (AxisRange, error) {
	if len(ts) == 0 {
		return AxisRange{}, commonerrors.ErrNoData
	}
	return AxisRange{Min: 0, Max: floats.Max(ts.Values())}, nil
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
