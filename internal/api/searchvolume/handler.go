package searchvolume

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"trends-dashboard/internal/api/common/download"
	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/query"
)

type SearchVolumeHandler struct {
	svs        SearchVolumeService
	defaultGeo string
	logger     *zap.Logger
}

func SearchVolumeRouter(route fiber.Router, svs SearchVolumeService, defaultGeo string, logger *zap.Logger) {
	handler := &SearchVolumeHandler{
		svs:        svs,
		defaultGeo: defaultGeo,
		logger:     logger,
	}

	route.Get("/search-volume", handler.getSearchVolume)

	rg := route.Group("/search-volume")
	rg.Get("/chart", handler.getChart)
	rg.Get("/history", handler.getHistory)
}

// @Summary Daily search volume of a keyword
// @Description Daily search volume with summary statistics, and optionally the trailing moving average
// and a y-axis range pinned to [0, max].
// @Accept  json
// @Produce json
// @Param keyword        query string true  "search keyword"
// @Param start          query string false "start date"
// @Param end            query string false "end date"
// @Param geo            query string false "geo code of the region"
// @Param moving_average query bool   false "add the moving average"
// @Param window         query int    false "moving average window (default 7)"
// @Param dynamic_y_axis query bool   false "pin the y-axis to [0, max]"
// @Success 200 {object} SearchVolume
// @Failure 400 {object} nil
// @Failure 404 {object} nil
// @Failure 502 {object} nil
// @Router /api/v1/search-volume [get]
func (h *SearchVolumeHandler) getSearchVolume(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c, h.defaultGeo)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return commonerrors.Response(c, err)
	}

	sv, err := h.svs.GetSearchVolume(c.UserContext(), query)
	if err != nil {
		return commonerrors.Response(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sv)
}

// @Summary Search volume line chart
// @Description PNG line chart of the daily search volume. download=true sends it as an attachment.
// @Produce png
// @Param keyword        query string true  "search keyword"
// @Param start          query string false "start date"
// @Param end            query string false "end date"
// @Param geo            query string false "geo code of the region"
// @Param moving_average query bool   false "add the moving average"
// @Param window         query int    false "moving average window (default 7)"
// @Param dynamic_y_axis query bool   false "pin the y-axis to [0, max]"
// @Param download       query bool   false "send as attachment"
// @Success 200 {file} binary
// @Failure 400 {object} nil
// @Failure 404 {object} nil
// @Failure 502 {object} nil
// @Router /api/v1/search-volume/chart [get]
func (h *SearchVolumeHandler) getChart(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c, h.defaultGeo)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return commonerrors.Response(c, err)
	}

	png, err := h.svs.RenderChart(c.UserContext(), query)
	if err != nil {
		return commonerrors.Response(c, err)
	}

	if query.Download {
		c.Attachment(download.Filename("search_volume", query.Keyword))
	}
	c.Type("png")
	return c.Status(fiber.StatusOK).Send(png)
}

// @Summary Stored search volume of a keyword
// @Description Same view as /search-volume computed from previously fetched values only.
// @Accept  json
// @Produce json
// @Param keyword query string true  "search keyword"
// @Param start   query string false "start date"
// @Param end     query string false "end date"
// @Param geo     query string false "geo code of the region"
// @Success 200 {object} SearchVolume
// @Failure 400 {object} nil
// @Failure 404 {object} nil
// @Router /api/v1/search-volume/history [get]
func (h *SearchVolumeHandler) getHistory(c *fiber.Ctx) error {
	query, err := query.ParseAndValidate(c, h.defaultGeo)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return commonerrors.Response(c, err)
	}

	sv, err := h.svs.GetHistory(c.UserContext(), query)
	if err != nil {
		return commonerrors.Response(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sv)
}
