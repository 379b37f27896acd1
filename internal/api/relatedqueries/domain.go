package relatedqueries

import (
	"context"
	"time"

	"trends-dashboard/internal/api/common/query"
	"trends-dashboard/internal/trends"
)

// Provider returns the top and rising queries for a keyword.
type Provider interface {
	RelatedQueries(ctx context.Context, payload trends.Payload) (*trends.RelatedQueries, error)
}

type RelatedQueriesService interface {
	GetRelatedQueries(ctx context.Context, query query.Query) (*RelatedQueries, error)
	RenderChart(ctx context.Context, query query.Query) ([]byte, error)
}

// RelatedQuery is one row of a related-query table. Rising rows may carry a
// growth label such as "Breakout" in FormattedValue instead of a usable score.
type RelatedQuery struct {
	Query          string  `json:"query"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formatted_value"`
	Link           string  `json:"link,omitempty"`
}

// RelatedQuerySet holds the two tables as returned by the provider.
// A nil collection is absent.
type RelatedQuerySet struct {
	Top    []RelatedQuery
	Rising []RelatedQuery
}

type RankedQueries struct {
	Top    []RelatedQuery `json:"top"`
	Rising []RelatedQuery `json:"rising"`
}

type RelatedQueries struct {
	Keyword   string    `json:"keyword"`
	Geo       string    `json:"geo"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	RankedQueries
	Description string `json:"description"`
}

func toQuerySet(rq *trends.RelatedQueries) *RelatedQuerySet {
	if rq == nil {
		return nil
	}
	return &RelatedQuerySet{
		Top:    toQueries(rq.Top),
		Rising: toQueries(rq.Rising),
	}
}

func toQueries(keywords []trends.RankedKeyword) []RelatedQuery {
	if keywords == nil {
		return nil
	}
	queries := make([]RelatedQuery, len(keywords))
	for i, k := range keywords {
		queries[i] = RelatedQuery{
			Query:          k.Query,
			Value:          k.Value,
			FormattedValue: k.FormattedValue,
			Link:           k.Link,
		}
	}
	return queries
}
