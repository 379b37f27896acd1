package trends

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"trends-dashboard/internal/utils"
)

// DailyData fetches daily interest for keyword from the first day of start's
// month to the last day of end's month.
//
// The provider normalises every request to its own peak, so each month is
// fetched at daily resolution and then scaled by that month's weight from a
// single request over the whole range: value = unscaled * monthly / 100.
// Days before the first weight are dropped.
func (c *Client) DailyData(ctx context.Context, keyword string, start, end time.Time, geo string) ([]DailyPoint, error) {
	var (
		startDate = utils.FirstDayOfMonth(start)
		stopDate  = utils.LastDayOfMonth(end)
	)

	monthly, err := c.InterestOverTime(ctx, Payload{
		Keyword:   keyword,
		Timeframe: Timeframe(startDate, stopDate),
		Geo:       geo,
	})
	if err != nil {
		return nil, err
	}

	var daily []TimelinePoint
	for current := startDate; current.Before(stopDate); {
		lastDate := utils.LastDayOfMonth(current)
		points, err := c.InterestOverTime(ctx, Payload{
			Keyword:   keyword,
			Timeframe: Timeframe(current, lastDate),
			Geo:       geo,
		})
		if err != nil {
			return nil, err
		}
		c.logger.Debug("fetched daily month",
			zap.String("keyword", keyword),
			zap.Time("month", current),
			zap.Int("points", len(points)))

		daily = append(daily, points...)
		current = lastDate.AddDate(0, 0, 1)
	}

	return stitch(daily, monthly), nil
}

func stitch(daily, monthly []TimelinePoint) []DailyPoint {
	sort.SliceStable(daily, func(i, j int) bool { return daily[i].Time.Before(daily[j].Time) })
	sort.SliceStable(monthly, func(i, j int) bool { return monthly[i].Time.Before(monthly[j].Time) })

	var (
		out      = make([]DailyPoint, 0, len(daily))
		weight   float64
		weighted bool
		m        int
		last     time.Time
	)
	for _, point := range daily {
		date := utils.Date(point.Time)
		if len(out) > 0 && !date.After(last) {
			continue
		}
		for m < len(monthly) && !utils.Date(monthly[m].Time).After(date) {
			weight = monthly[m].Value
			weighted = true
			m++
		}
		if !weighted {
			continue
		}

		scale := weight / 100
		out = append(out, DailyPoint{
			Date:      date,
			Unscaled:  point.Value,
			Monthly:   weight,
			Scale:     scale,
			Value:     point.Value * scale,
			IsPartial: point.IsPartial,
		})
		last = date
	}
	return out
}
