package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	explorePath         = "/trends/api/explore"
	multilinePath       = "/trends/api/widgetdata/multiline"
	relatedSearchesPath = "/trends/api/widgetdata/relatedsearches"
)

// Explore returns the widgets the provider builds for payload.
func (c *Client) Explore(ctx context.Context, payload Payload) ([]Widget, error) {
	req, err := json.Marshal(exploreRequest{
		ComparisonItem: []comparisonItem{{
			Keyword: payload.Keyword,
			Time:    payload.Timeframe,
			Geo:     payload.Geo,
		}},
		Category: 0,
		Property: "",
	})
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("req", string(req))

	var resp exploreResponse
	if err := c.get(ctx, http.MethodPost, explorePath, query, &resp); err != nil {
		return nil, fmt.Errorf("explore %q: %w", payload.Keyword, err)
	}
	return resp.Widgets, nil
}

func findWidget(widgets []Widget, id string) (Widget, bool) {
	for _, widget := range widgets {
		if widget.ID == id {
			return widget, true
		}
	}
	return Widget{}, false
}

func widgetQuery(widget Widget) url.Values {
	query := url.Values{}
	query.Set("req", string(widget.Request))
	query.Set("token", widget.Token)
	return query
}

// InterestOverTime returns the timeline for payload at the provider's granularity.
// Points flagged without data are dropped.
func (c *Client) InterestOverTime(ctx context.Context, payload Payload) ([]TimelinePoint, error) {
	widgets, err := c.Explore(ctx, payload)
	if err != nil {
		return nil, err
	}
	widget, ok := findWidget(widgets, widgetTimeseries)
	if !ok {
		return nil, nil
	}

	var resp multilineResponse
	if err := c.get(ctx, http.MethodGet, multilinePath, widgetQuery(widget), &resp); err != nil {
		return nil, fmt.Errorf("interest over time %q: %w", payload.Keyword, err)
	}

	points := make([]TimelinePoint, 0, len(resp.Default.TimelineData))
	for _, row := range resp.Default.TimelineData {
		if len(row.Value) == 0 || (len(row.HasData) > 0 && !row.HasData[0]) {
			continue
		}
		sec, err := strconv.ParseInt(row.Time, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse timeline time %q: %w", row.Time, err)
		}
		points = append(points, TimelinePoint{
			Time:      time.Unix(sec, 0).UTC(),
			Value:     row.Value[0],
			IsPartial: row.IsPartial,
		})
	}
	return points, nil
}

// RelatedQueries returns the top and rising queries for payload.
func (c *Client) RelatedQueries(ctx context.Context, payload Payload) (*RelatedQueries, error) {
	widgets, err := c.Explore(ctx, payload)
	if err != nil {
		return nil, err
	}
	result := &RelatedQueries{}
	widget, ok := findWidget(widgets, widgetRelatedQueries)
	if !ok {
		return result, nil
	}

	var resp relatedSearchesResponse
	if err := c.get(ctx, http.MethodGet, relatedSearchesPath, widgetQuery(widget), &resp); err != nil {
		return nil, fmt.Errorf("related queries %q: %w", payload.Keyword, err)
	}

	lists := resp.Default.RankedList
	if len(lists) > 0 {
		result.Top = lists[0].RankedKeyword
	}
	if len(lists) > 1 {
		result.Rising = lists[1].RankedKeyword
	}
	return result, nil
}
