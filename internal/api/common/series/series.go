package series

import (
	"fmt"
	"sort"
	"time"
)

const DefaultWindow = 7

type Datapoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// TimeSeries is ordered by strictly increasing Time.
type TimeSeries []Datapoint

// New sorts points by time and rejects duplicate dates.
func New(points []Datapoint) (TimeSeries, error) {
	ts := make(TimeSeries, len(points))
	copy(ts, points)

	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Time.Before(ts[j].Time)
	})
	for i := 1; i < len(ts); i++ {
		if !ts[i].Time.After(ts[i-1].Time) {
			return nil, fmt.Errorf("duplicate datapoint at %s", ts[i].Time.Format("2006-01-02"))
		}
	}
	return ts, nil
}

func (ts TimeSeries) Values() []float64 {
	values := make([]float64, len(ts))
	for i, point := range ts {
		values[i] = point.Value
	}
	return values
}

// Between returns the points whose time lies in [start, end].
func (ts TimeSeries) Between(start, end time.Time) TimeSeries {
	out := make(TimeSeries, 0, len(ts))
	for _, point := range ts {
		if point.Time.Before(start) || point.Time.After(end) {
			continue
		}
		out = append(out, point)
	}
	return out
}
