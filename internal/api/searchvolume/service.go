package searchvolume

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/query"
	"trends-dashboard/internal/api/common/series"
	"trends-dashboard/internal/cache"
	"trends-dashboard/internal/chart"
	"trends-dashboard/internal/trends"
	"trends-dashboard/internal/utils"
)

const cacheKind = "search-volume"

type searchVolumeService struct {
	cache    *cache.Cache
	provider Provider
	// nil when persistence is disabled
	repository SearchVolumeRepository
	logger     *zap.Logger
}

var _ SearchVolumeService = (*searchVolumeService)(nil)

func NewSearchVolumeService(
	cache *cache.Cache,
	provider Provider,
	r SearchVolumeRepository,
	logger *zap.Logger) SearchVolumeService {
	return &searchVolumeService{
		cache:      cache,
		provider:   provider,
		repository: r,
		logger:     logger,
	}
}

func (s *searchVolumeService) GetSearchVolume(ctx context.Context, query query.Query) (*SearchVolume, error) {
	s.logger.Debug("search volume",
		zap.String("id", query.ID),
		zap.String("keyword", query.Keyword),
		zap.String("geo", query.Geo),
		zap.Time("start_time", query.StartTime),
		zap.Time("end_time", query.EndTime))

	ts, err := s.loadSeries(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.view(query, ts)
}

func (s *searchVolumeService) GetHistory(ctx context.Context, query query.Query) (*SearchVolume, error) {
	if s.repository == nil {
		return nil, commonerrors.NotFoundErr("search volume", "history store")
	}

	rows, err := s.repository.Find(ctx, query.Keyword, query.Geo, query.StartTime, query.EndTime)
	if err != nil {
		s.logger.Error("failed to get search volume from database", zap.Error(err))
		return nil, err
	}

	ts, err := storedToSeries(rows)
	if err != nil {
		return nil, err
	}
	return s.view(query, ts)
}

func (s *searchVolumeService) RenderChart(ctx context.Context, query query.Query) ([]byte, error) {
	sv, err := s.GetSearchVolume(ctx, query)
	if err != nil {
		return nil, err
	}

	png, err := chart.SearchVolumePNG(sv.Chart())
	if err != nil {
		s.logger.Error("failed to render search volume chart", zap.Error(err))
		return nil, err
	}
	return png, nil
}

// loadSeries returns the daily series for the requested dates, from the cache
// when an identical query ran recently.
func (s *searchVolumeService) loadSeries(ctx context.Context, query query.Query) (series.TimeSeries, error) {
	key := query.CacheKey(cacheKind)
	if item, exist := s.cache.Get(key); exist {
		return item.(series.TimeSeries), nil
	}

	points, err := s.provider.DailyData(ctx, query.Keyword, query.StartTime, query.EndTime, query.Geo)
	if err != nil {
		s.logger.Error("failed to fetch daily data", zap.String("keyword", query.Keyword), zap.Error(err))
		return nil, commonerrors.ProviderErr("daily data", err)
	}

	if s.repository != nil {
		// a failed write only loses history
		if err := s.repository.Save(ctx, query.Keyword, query.Geo, points); err != nil {
			s.logger.Warn("failed to store search volume", zap.String("keyword", query.Keyword), zap.Error(err))
		}
	}

	ts, err := toSeries(points)
	if err != nil {
		return nil, err
	}
	ts = ts.Between(query.StartTime, query.EndTime)

	s.cache.Set(key, ts)
	return ts, nil
}

func (s *searchVolumeService) view(query query.Query, ts series.TimeSeries) (*SearchVolume, error) {
	summary, err := ts.Summarize()
	if errors.Is(err, commonerrors.ErrNoData) {
		return nil, commonerrors.NoDataErr("search volume", query.Keyword)
	}
	if err != nil {
		return nil, err
	}

	sv := &SearchVolume{
		Keyword:     query.Keyword,
		Geo:         query.Geo,
		StartDate:   query.StartTime,
		EndDate:     query.EndTime,
		Series:      ts,
		Summary:     summary,
		Description: Describe(query),
	}

	if query.MovingAverage {
		ma, err := ts.MovingAverage(query.Window)
		if err != nil {
			return nil, commonerrors.ValidationErr("window", err.Error())
		}
		sv.MovingAverage = ma
		sv.Window = query.Window
	}

	if query.DynamicYAxis {
		axis, err := ts.DynamicYAxis()
		if err != nil {
			return nil, err
		}
		sv.YAxis = &axis
	}
	return sv, nil
}

func Describe(query query.Query) string {
	return fmt.Sprintf("This chart shows the daily search volume for '%s' in %s from %s to %s.",
		query.Keyword,
		trends.Region(query.Geo),
		query.StartTime.Format(utils.DateLayout),
		query.EndTime.Format(utils.DateLayout))
}
