package relatedqueries

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"trends-dashboard/internal/api/common/download"
	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/query"
)

type RelatedQueriesHandler struct {
	rqs        RelatedQueriesService
	defaultGeo string
	logger     *zap.Logger
}

func RelatedQueriesRouter(route fiber.Router, rqs RelatedQueriesService, defaultGeo string, logger *zap.Logger) {
	handler := &RelatedQueriesHandler{
		rqs:        rqs,
		defaultGeo: defaultGeo,
		logger:     logger,
	}

	route.Get("/related-queries", handler.getRelatedQueries)
	route.Get("/related-queries/chart", handler.getChart)
}

// @Summary Related queries of a keyword
// @Description Top related queries sorted by descending value and rising related queries as returned.
// @Accept  json
// @Produce json
// @Param keyword query string true  "search keyword"
// @Param start   query string false "start date"
// @Param end     query string false "end date"
// @Param geo     query string false "geo code of the region"
// @Success 200 {object} RelatedQueries
// @Failure 400 {object} nil
// @Failure 502 {object} nil
// @Router /api/v1/related-queries [get]
func (h *RelatedQueriesHandler) getRelatedQueries(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c, h.defaultGeo)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return commonerrors.Response(c, err)
	}

	rq, err := h.rqs.GetRelatedQueries(c.UserContext(), query)
	if err != nil {
		return commonerrors.Response(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(rq)
}

// @Summary Top related queries bar chart
// @Description PNG bar chart of the top related queries. download=true sends it as an attachment.
// @Produce png
// @Param keyword  query string true  "search keyword"
// @Param start    query string false "start date"
// @Param end      query string false "end date"
// @Param geo      query string false "geo code of the region"
// @Param download query bool   false "send as attachment"
// @Success 200 {file} binary
// @Failure 400 {object} nil
// @Failure 404 {object} nil
// @Failure 502 {object} nil
// @Router /api/v1/related-queries/chart [get]
func (h *RelatedQueriesHandler) getChart(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c, h.defaultGeo)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return commonerrors.Response(c, err)
	}

	png, err := h.rqs.RenderChart(c.UserContext(), query)
	if err != nil {
		return commonerrors.Response(c, err)
	}

	if query.Download {
		c.Attachment(download.Filename("related_queries", query.Keyword))
	}
	c.Type("png")
	return c.Status(fiber.StatusOK).Send(png)
}
