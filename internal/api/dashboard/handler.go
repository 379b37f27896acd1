package dashboard

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"trends-dashboard/internal/api/common/download"
	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/query"
	"trends-dashboard/internal/api/relatedqueries"
	"trends-dashboard/internal/api/searchvolume"
	"trends-dashboard/internal/chart"
	"trends-dashboard/internal/utils"
)

type DashboardHandler struct {
	svs        searchvolume.SearchVolumeService
	rqs        relatedqueries.RelatedQueriesService
	defaultGeo string
	logger     *zap.Logger
}

func DashboardRouter(
	route fiber.Router,
	svs searchvolume.SearchVolumeService,
	rqs relatedqueries.RelatedQueriesService,
	defaultGeo string,
	logger *zap.Logger) {
	handler := &DashboardHandler{
		svs:        svs,
		rqs:        rqs,
		defaultGeo: defaultGeo,
		logger:     logger,
	}

	route.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(searchVolumePath)
	})
	route.Get(searchVolumePath, handler.searchVolumePage)
	route.Get(relatedQueriesPath, handler.relatedQueriesPage)
}

// withDefaults fills the form inputs that were not submitted.
func withDefaults(c *fiber.Ctx) {
	args := c.Context().QueryArgs()
	if !args.Has("keyword") {
		args.Set("keyword", DefaultKeyword)
	}
	if !args.Has("start") {
		args.Set("start", DefaultStart)
	}
	if !args.Has("end") {
		args.Set("end", DefaultEnd)
	}
}

func (h *DashboardHandler) formOf(c *fiber.Ctx) form {
	geo := c.Query("geo")
	if geo == "" {
		geo = h.defaultGeo
	}
	return form{
		Keyword: c.Query("keyword"),
		Start:   c.Query("start"),
		End:     c.Query("end"),
		Geo:     geo,
	}
}

// fail renders err in p. Missing data is not an error for the dashboard.
func (h *DashboardHandler) fail(c *fiber.Ctx, p *page, err error) error {
	if errors.Is(err, commonerrors.ErrNoData) {
		p.NoData = true
		return render(c, fiber.StatusOK, p)
	}
	h.logger.Debug("dashboard error", zap.String("page", p.Path), zap.Error(err))
	p.Error = err.Error()
	return render(c, commonerrors.StatusCode(err), p)
}

func (h *DashboardHandler) searchVolumePage(c *fiber.Ctx) error {
	withDefaults(c)
	f := h.formOf(c)
	f.ShowOptions = true
	p := newPage("Search Volume Visualization", searchVolumePath, f)

	q, err := query.ParseAndValidate(c, h.defaultGeo)
	if err != nil {
		return h.fail(c, p, err)
	}
	p.Form.MovingAverage = q.MovingAverage
	p.Form.DynamicYAxis = q.DynamicYAxis
	// the date pickers show the parsed dates
	p.Form.Start = q.StartTime.Format(utils.DateLayout)
	p.Form.End = q.EndTime.Format(utils.DateLayout)

	sv, err := h.svs.GetSearchVolume(c.UserContext(), q)
	if err != nil {
		return h.fail(c, p, err)
	}
	p.SearchVolume = sv
	p.Rows = rows(sv)

	png, err := chart.SearchVolumePNG(sv.Chart())
	if err != nil {
		return h.fail(c, p, err)
	}
	p.Image = imageURL(png)
	p.Download = download.Link(png, download.Filename("search_volume", q.Keyword), "Download Plot")
	return render(c, fiber.StatusOK, p)
}

func (h *DashboardHandler) relatedQueriesPage(c *fiber.Ctx) error {
	withDefaults(c)
	p := newPage("Related Queries", relatedQueriesPath, h.formOf(c))

	q, err := query.ParseAndValidate(c, h.defaultGeo)
	if err != nil {
		return h.fail(c, p, err)
	}
	p.Form.Start = q.StartTime.Format(utils.DateLayout)
	p.Form.End = q.EndTime.Format(utils.DateLayout)

	rq, err := h.rqs.GetRelatedQueries(c.UserContext(), q)
	if err != nil {
		return h.fail(c, p, err)
	}
	p.RelatedQueries = rq

	// an empty top table only hides the chart
	if len(rq.Top) > 0 {
		png, err := chart.BarsPNG(rq.Chart())
		if err != nil {
			return h.fail(c, p, err)
		}
		p.Image = imageURL(png)
		p.Download = download.Link(png, download.Filename("related_queries", q.Keyword), "Download Plot")
	}
	return render(c, fiber.StatusOK, p)
}

func rows(sv *searchvolume.SearchVolume) []row {
	out := make([]row, len(sv.Series))
	for i, point := range sv.Series {
		out[i] = row{
			Date:  point.Time.Format(utils.DateLayout),
			Value: strconv.FormatFloat(point.Value, 'f', -1, 64),
		}
		if i < len(sv.MovingAverage) && sv.MovingAverage[i].Value != nil {
			out[i].Average = strconv.FormatFloat(*sv.MovingAverage[i].Value, 'f', 2, 64)
		}
	}
	return out
}
