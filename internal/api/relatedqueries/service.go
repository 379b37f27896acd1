package relatedqueries

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/query"
	"trends-dashboard/internal/cache"
	"trends-dashboard/internal/chart"
	"trends-dashboard/internal/trends"
	"trends-dashboard/internal/utils"
)

const cacheKind = "related-queries"

type relatedQueriesService struct {
	cache    *cache.Cache
	provider Provider
	logger   *zap.Logger
}

var _ RelatedQueriesService = (*relatedQueriesService)(nil)

func NewRelatedQueriesService(cache *cache.Cache, provider Provider, logger *zap.Logger) RelatedQueriesService {
	return &relatedQueriesService{
		cache:    cache,
		provider: provider,
		logger:   logger,
	}
}

func (s *relatedQueriesService) GetRelatedQueries(ctx context.Context, query query.Query) (*RelatedQueries, error) {
	s.logger.Debug("related queries",
		zap.String("id", query.ID),
		zap.String("keyword", query.Keyword),
		zap.String("geo", query.Geo))

	ranked, err := s.load(ctx, query)
	if err != nil {
		return nil, err
	}

	return &RelatedQueries{
		Keyword:       query.Keyword,
		Geo:           query.Geo,
		StartDate:     query.StartTime,
		EndDate:       query.EndTime,
		RankedQueries: ranked,
		Description:   Describe(query),
	}, nil
}

func (s *relatedQueriesService) RenderChart(ctx context.Context, query query.Query) ([]byte, error) {
	ranked, err := s.load(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(ranked.Top) == 0 {
		return nil, commonerrors.NoDataErr("top related queries", query.Keyword)
	}

	png, err := chart.BarsPNG(ranked.Chart())
	if err != nil {
		s.logger.Error("failed to render related queries chart", zap.Error(err))
		return nil, err
	}
	return png, nil
}

func (s *relatedQueriesService) load(ctx context.Context, query query.Query) (RankedQueries, error) {
	key := query.CacheKey(cacheKind)
	if item, exist := s.cache.Get(key); exist {
		return item.(RankedQueries), nil
	}

	rq, err := s.provider.RelatedQueries(ctx, trends.Payload{
		Keyword:   query.Keyword,
		Timeframe: trends.Timeframe(query.StartTime, query.EndTime),
		Geo:       query.Geo,
	})
	if err != nil {
		s.logger.Error("failed to fetch related queries", zap.String("keyword", query.Keyword), zap.Error(err))
		return RankedQueries{}, commonerrors.ProviderErr("related queries", err)
	}

	ranked := Rank(toQuerySet(rq))
	s.cache.Set(key, ranked)
	return ranked, nil
}

func Describe(query query.Query) string {
	return fmt.Sprintf("This chart shows the top queries related to '%s' in %s from %s to %s.",
		query.Keyword,
		trends.Region(query.Geo),
		query.StartTime.Format(utils.DateLayout),
		query.EndTime.Format(utils.DateLayout))
}
