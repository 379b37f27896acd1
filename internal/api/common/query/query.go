package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	commonerrors "trends-dashboard/internal/api/common/errors"
	"trends-dashboard/internal/api/common/series"
	"trends-dashboard/internal/utils"
)

// Query 파라미터들 parsing 하기 위해 사용함
type parseQuery struct {
	Keyword       string `query:"keyword,omitempty" description:"the search keyword"`
	Geo           string `query:"geo,omitempty" description:"geo code of the region"`
	StartTime     string `query:"start,omitempty" json:"-"`
	EndTime       string `query:"end,omitempty" json:"-"`
	MovingAverage string `query:"moving_average,omitempty" json:"-"`
	Window        string `query:"window,omitempty" json:"-"`
	DynamicYAxis  string `query:"dynamic_y_axis,omitempty" json:"-"`
	Download      string `query:"download,omitempty" json:"-"`
}

type Query struct {
	ID            string
	Keyword       string
	Geo           string
	StartTime     time.Time
	EndTime       time.Time
	MovingAverage bool
	Window        int
	DynamicYAxis  bool
	Download      bool
}

func (q parseQuery) ParseAndValidate(c *fiber.Ctx, defaultGeo string) (Query, error) {
	id, _ := c.Locals("requestid").(string)
	return q.validate(id, defaultGeo)
}

func (q parseQuery) validate(id, defaultGeo string) (Query, error) {
	keyword := strings.TrimSpace(q.Keyword)
	if keyword == "" {
		return Query{}, commonerrors.ValidationErr("keyword", "must not be empty")
	}

	startTime, endTime, err := utils.ParseQueryTime(q.StartTime, q.EndTime)
	if err != nil {
		return Query{}, commonerrors.ValidationErr("date", err.Error())
	}

	if startTime.After(endTime) {
		return Query{}, commonerrors.ValidationErr("", "the end time should be after the start time")
	}

	window := series.DefaultWindow
	if q.Window != "" {
		window, err = strconv.Atoi(q.Window)
		if err != nil || window < 1 {
			return Query{}, commonerrors.ValidationErr("window", "must be a positive integer")
		}
	}

	geo := strings.ToUpper(strings.TrimSpace(q.Geo))
	if geo == "" {
		geo = defaultGeo
	}

	return Query{
		ID:            id,
		Keyword:       keyword,
		Geo:           geo,
		StartTime:     startTime,
		EndTime:       endTime,
		MovingAverage: isSet(q.MovingAverage),
		Window:        window,
		DynamicYAxis:  isSet(q.DynamicYAxis),
		Download:      isSet(q.Download),
	}, nil
}

func ParseAndValidate(c *fiber.Ctx, defaultGeo string) (Query, error) {
	query := &parseQuery{}
	if err := c.QueryParser(query); err != nil {
		return Query{}, commonerrors.ValidationErr("query", err.Error())
	}
	return query.ParseAndValidate(c, defaultGeo)
}

// FromValues builds a Query from parameters keyed like the HTTP query string,
// for callers outside a request.
func FromValues(values map[string]string, defaultGeo string) (Query, error) {
	query := parseQuery{
		Keyword:       values["keyword"],
		Geo:           values["geo"],
		StartTime:     values["start"],
		EndTime:       values["end"],
		MovingAverage: values["moving_average"],
		Window:        values["window"],
		DynamicYAxis:  values["dynamic_y_axis"],
		Download:      values["download"],
	}
	return query.validate("", defaultGeo)
}

// isSet accepts the values browsers and scripts send for a checked flag.
func isSet(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func (q Query) CacheKey(kind string) string {
	return strings.Join([]string{
		kind,
		strings.ToLower(q.Keyword),
		q.Geo,
		q.StartTime.Format(utils.DateLayout),
		q.EndTime.Format(utils.DateLayout),
	}, "|")
}
