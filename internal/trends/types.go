package trends

import (
	"encoding/json"
	"time"
)

const (
	widgetTimeseries     = "TIMESERIES"
	widgetRelatedQueries = "RELATED_QUERIES"
)

// Payload describes one keyword query.
type Payload struct {
	Keyword   string
	Timeframe string
	Geo       string
}

type Widget struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

type TimelinePoint struct {
	Time      time.Time
	Value     float64
	IsPartial bool
}

// DailyPoint mirrors one row of the stitched daily table.
type DailyPoint struct {
	Date      time.Time `json:"date"`
	Unscaled  float64   `json:"unscaled"`
	Monthly   float64   `json:"monthly"`
	Scale     float64   `json:"scale"`
	Value     float64   `json:"value"`
	IsPartial bool      `json:"is_partial"`
}

type RankedKeyword struct {
	Query          string  `json:"query"`
	Value          float64 `json:"value"`
	FormattedValue string  `json:"formattedValue"`
	Link           string  `json:"link"`
}

// RelatedQueries leaves a list nil when the provider did not return it.
type RelatedQueries struct {
	Top    []RankedKeyword
	Rising []RankedKeyword
}

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Time    string `json:"time"`
	Geo     string `json:"geo"`
}

type exploreResponse struct {
	Widgets []Widget `json:"widgets"`
}

type multilineResponse struct {
	Default struct {
		TimelineData []struct {
			Time      string    `json:"time"`
			Value     []float64 `json:"value"`
			HasData   []bool    `json:"hasData"`
			IsPartial bool      `json:"isPartial"`
		} `json:"timelineData"`
	} `json:"default"`
}

type relatedSearchesResponse struct {
	Default struct {
		RankedList []struct {
			RankedKeyword []RankedKeyword `json:"rankedKeyword"`
		} `json:"rankedList"`
	} `json:"default"`
}

// Timeframe formats the provider's "YYYY-MM-DD YYYY-MM-DD" range.
func Timeframe(start, end time.Time) string {
	return start.Format("2006-01-02") + " " + end.Format("2006-01-02")
}
