package searchvolume

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trends-dashboard/internal/models"
	"trends-dashboard/internal/trends"
)

type searchVolumeRepository struct {
	db *gorm.DB
}

var _ SearchVolumeRepository = (*searchVolumeRepository)(nil)

func NewSearchVolumeRepository(db *gorm.DB) SearchVolumeRepository {
	return &searchVolumeRepository{
		db: db,
	}
}

// Save upserts points, so refetching a range refreshes the stored values.
func (r *searchVolumeRepository) Save(ctx context.Context, keyword, geo string, points []trends.DailyPoint) error {
	if len(points) == 0 {
		return nil
	}

	fetchedAt := time.Now().UTC()
	rows := make([]models.SearchVolume, len(points))
	for i, point := range points {
		rows[i] = models.SearchVolume{
			Keyword:   keyword,
			Geo:       geo,
			Date:      point.Date,
			Unscaled:  point.Unscaled,
			Monthly:   point.Monthly,
			Scale:     point.Scale,
			Value:     point.Value,
			IsPartial: point.IsPartial,
			FetchedAt: fetchedAt,
		}
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "keyword"}, {Name: "geo"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"unscaled", "monthly", "scale", "value", "is_partial", "fetched_at"}),
		}).
		CreateInBatches(rows, 100).
		Error
}

func (r *searchVolumeRepository) Find(ctx context.Context, keyword, geo string, start, end time.Time) ([]models.SearchVolume, error) {
	var rows []models.SearchVolume
	err := r.db.WithContext(ctx).
		Where("keyword = ? AND geo = ?", keyword, geo).
		Where("date >= ? AND date <= ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("date").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
