package dashboard_test

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/query"
	"trends-dashboard/internal/api/common/series"
	"trends-dashboard/internal/api/dashboard"
	"trends-dashboard/internal/api/relatedqueries"
	"trends-dashboard/internal/api/searchvolume"
)

type fakeSearchVolume struct {
	queries []query.Query
	err     error
}

func (f *fakeSearchVolume) GetSearchVolume(ctx context.Context, q query.Query) (*searchvolume.SearchVolume, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}

	start := time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)
	ts, err := series.New([]series.Datapoint{
		{Time: start, Value: 10},
		{Time: start.AddDate(0, 0, 1), Value: 20},
		{Time: start.AddDate(0, 0, 2), Value: 30},
	})
	if err != nil {
		return nil, err
	}
	summary, err := ts.Summarize()
	if err != nil {
		return nil, err
	}
	return &searchvolume.SearchVolume{
		Keyword:     q.Keyword,
		Geo:         q.Geo,
		Series:      ts,
		Summary:     summary,
		Description: searchvolume.Describe(q),
	}, nil
}

func (f *fakeSearchVolume) GetHistory(ctx context.Context, q query.Query) (*searchvolume.SearchVolume, error) {
	return f.GetSearchVolume(ctx, q)
}

func (f *fakeSearchVolume) RenderChart(ctx context.Context, q query.Query) ([]byte, error) {
	return nil, commonerrors.ErrNoData
}

type fakeRelatedQueries struct {
	ranked relatedqueries.RankedQueries
}

func (f *fakeRelatedQueries) GetRelatedQueries(ctx context.Context, q query.Query) (*relatedqueries.RelatedQueries, error) {
	return &relatedqueries.RelatedQueries{
		Keyword:       q.Keyword,
		Geo:           q.Geo,
		RankedQueries: f.ranked,
		Description:   relatedqueries.Describe(q),
	}, nil
}

func (f *fakeRelatedQueries) RenderChart(ctx context.Context, q query.Query) ([]byte, error) {
	return nil, commonerrors.ErrNoData
}

func newApp(svs searchvolume.SearchVolumeService, rqs relatedqueries.RelatedQueriesService) *fiber.App {
	app := fiber.New()
	dashboard.DashboardRouter(app, svs, rqs, "ID", zap.NewNop())
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRootRedirects(t *testing.T) {
	app := newApp(&fakeSearchVolume{}, &fakeRelatedQueries{})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.Equal(t, "/search-volume", resp.Header.Get("Location"))
}

func TestSearchVolumePageDefaults(t *testing.T) {
	svs := &fakeSearchVolume{}
	app := newApp(svs, &fakeRelatedQueries{})

	status, body := get(t, app, "/search-volume")
	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body, `value="Prabowo Gibran"`)
	require.Contains(t, body, `value="2023-10-01"`)
	require.Contains(t, body, `value="2023-11-30"`)
	require.Contains(t, body, "Show Moving Average")
	require.Contains(t, body, "Dynamic Y-Axis Scaling")
	require.Contains(t, body, "data:image/png;base64,")
	require.Contains(t, body, `download="search_volume_Prabowo_Gibran.png"`)
	require.Contains(t, body, "Mean Search Volume: 20")
	require.Contains(t, body, "Median Search Volume: 20")
	require.Contains(t, body, "Maximum Search Volume: 30")
	require.Contains(t, body, "Minimum Search Volume: 10")
	require.Contains(t, body, "in Indonesia from 2023-10-01 to 2023-11-30")

	require.Len(t, svs.queries, 1)
	require.Equal(t, "Prabowo Gibran", svs.queries[0].Keyword)
	require.False(t, svs.queries[0].MovingAverage)
}

func TestSearchVolumePageCheckboxes(t *testing.T) {
	svs := &fakeSearchVolume{}
	app := newApp(svs, &fakeRelatedQueries{})

	status, body := get(t, app, "/search-volume?keyword=golang&start=2023-10-01&end=2023-10-03&moving_average=on&dynamic_y_axis=on")
	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body, "checked")
	require.True(t, svs.queries[0].MovingAverage)
	require.True(t, svs.queries[0].DynamicYAxis)
}

func TestSearchVolumePageInvalidRange(t *testing.T) {
	svs := &fakeSearchVolume{}
	app := newApp(svs, &fakeRelatedQueries{})

	status, body := get(t, app, "/search-volume?keyword=golang&start=2023-11-30&end=2023-10-01")
	require.Equal(t, fiber.StatusBadRequest, status)
	require.Contains(t, body, "the end time should be after the start time")
	require.Empty(t, svs.queries)
}

func TestSearchVolumePageNoData(t *testing.T) {
	app := newApp(&fakeSearchVolume{err: commonerrors.NoDataErr("search volume", "golang")}, &fakeRelatedQueries{})

	status, body := get(t, app, "/search-volume?keyword=golang")
	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body, "No data for 'golang' in the selected date range.")
	require.NotContains(t, body, "data:image/png")
}

func TestSearchVolumePageProviderError(t *testing.T) {
	app := newApp(&fakeSearchVolume{err: commonerrors.ProviderErr("daily data", io.ErrUnexpectedEOF)}, &fakeRelatedQueries{})

	status, body := get(t, app, "/search-volume?keyword=golang")
	require.Equal(t, fiber.StatusBadGateway, status)
	require.Contains(t, body, `class="error"`)
}

func TestRelatedQueriesPage(t *testing.T) {
	rqs := &fakeRelatedQueries{ranked: relatedqueries.Rank(&relatedqueries.RelatedQuerySet{
		Top: []relatedqueries.RelatedQuery{
			{Query: "prabowo", Value: 100, FormattedValue: "100"},
		},
		Rising: []relatedqueries.RelatedQuery{
			{Query: "debat capres", Value: 4150, FormattedValue: "Breakout"},
		},
	})}
	app := newApp(&fakeSearchVolume{}, rqs)

	status, body := get(t, app, "/related-queries")
	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body, "Top Related Queries:")
	require.Contains(t, body, "Rising Related Queries:")
	require.Contains(t, body, "Breakout")
	require.Contains(t, body, "data:image/png;base64,")
	require.NotContains(t, body, "Show Moving Average")
}

func TestRelatedQueriesPageWithoutTop(t *testing.T) {
	app := newApp(&fakeSearchVolume{}, &fakeRelatedQueries{ranked: relatedqueries.Rank(nil)})

	status, body := get(t, app, "/related-queries?keyword=golang")
	require.Equal(t, fiber.StatusOK, status)
	require.Contains(t, body, "No top related queries.")
	require.Contains(t, body, "No rising related queries.")
	require.NotContains(t, body, "data:image/png")
}
