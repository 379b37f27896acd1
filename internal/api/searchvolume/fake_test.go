package searchvolume_test

import (
	"context"
	"sync"
	"time"

	"trends-dashboard/internal/models"
	"trends-dashboard/internal/trends"
)

type fakeProvider struct {
	mu     sync.Mutex
	points []trends.DailyPoint
	err    error
	calls  int
}

func (p *fakeProvider) DailyData(ctx context.Context, keyword string, start, end time.Time, geo string) ([]trends.DailyPoint, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.points, nil
}

func (p *fakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type fakeRepository struct {
	mu   sync.Mutex
	rows map[string][]models.SearchVolume
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{rows: make(map[string][]models.SearchVolume)}
}

func (r *fakeRepository) Save(ctx context.Context, keyword, geo string, points []trends.DailyPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, point := range points {
		r.rows[keyword+"|"+geo] = append(r.rows[keyword+"|"+geo], models.SearchVolume{
			Keyword: keyword,
			Geo:     geo,
			Date:    point.Date,
			Value:   point.Value,
		})
	}
	return nil
}

func (r *fakeRepository) Find(ctx context.Context, keyword, geo string, start, end time.Time) ([]models.SearchVolume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.SearchVolume
	for _, row := range r.rows[keyword+"|"+geo] {
		if row.Date.Before(start) || row.Date.After(end) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

var october = time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)

// dailyPoints returns one point per day starting on October 1st 2023.
func dailyPoints(values ...float64) []trends.DailyPoint {
	points := make([]trends.DailyPoint, len(values))
	for i, v := range values {
		points[i] = trends.DailyPoint{
			Date:     october.AddDate(0, 0, i),
			Unscaled: v,
			Monthly:  100,
			Scale:    1,
			Value:    v,
		}
	}
	return points
}
