package trends_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"trends-dashboard/internal/trends"
)

// fakeTrends serves the widget API for tests. Ranges spanning more than one
// month answer with one point per month (weight from monthly), single-month
// ranges answer with one point per day whose value is the day of the month.
type fakeTrends struct {
	monthly        map[time.Month]float64
	missing        map[string]bool
	withoutRelated bool
	top            []trends.RankedKeyword
	rising         []trends.RankedKeyword
	failStatus     int

	cookieHits  int32
	exploreHits int32
}

func (f *fakeTrends) serve(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.cookieHits, 1)
		http.SetCookie(w, &http.Cookie{Name: "NID", Value: "session"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/trends/api/explore", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.exploreHits, 1)
		if f.failStatus != 0 {
			w.WriteHeader(f.failStatus)
			return
		}
		if _, err := r.Cookie("NID"); err != nil || r.URL.Query().Get("hl") == "" || r.URL.Query().Get("tz") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var req struct {
			ComparisonItem []struct {
				Keyword string `json:"keyword"`
				Time    string `json:"time"`
				Geo     string `json:"geo"`
			} `json:"comparisonItem"`
		}
		if err := json.Unmarshal([]byte(r.URL.Query().Get("req")), &req); err != nil || len(req.ComparisonItem) != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		item, _ := json.Marshal(req.ComparisonItem[0])
		widgets := []map[string]interface{}{
			{"id": "TIMESERIES", "token": "ts-token", "request": json.RawMessage(item)},
		}
		if !f.withoutRelated {
			widgets = append(widgets, map[string]interface{}{"id": "RELATED_QUERIES", "token": "rq-token", "request": json.RawMessage(item)})
		}
		body, _ := json.Marshal(map[string]interface{}{"widgets": widgets})
		fmt.Fprintf(w, ")]}'\n%s", body)
	})
	mux.HandleFunc("/trends/api/widgetdata/multiline", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "ts-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var item struct {
			Time string `json:"time"`
		}
		if err := json.Unmarshal([]byte(r.URL.Query().Get("req")), &item); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		bounds := strings.Fields(item.Time)
		start, _ := time.Parse("2006-01-02", bounds[0])
		end, _ := time.Parse("2006-01-02", bounds[1])

		var rows []map[string]interface{}
		if start.Month() != end.Month() || start.Year() != end.Year() {
			for d := start; !d.After(end); d = d.AddDate(0, 1, 0) {
				rows = append(rows, f.row(d, f.monthly[d.Month()]))
			}
		} else {
			for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
				rows = append(rows, f.row(d, float64(d.Day())))
			}
		}
		body, _ := json.Marshal(map[string]interface{}{
			"default": map[string]interface{}{"timelineData": rows},
		})
		fmt.Fprintf(w, ")]}',\n%s", body)
	})
	mux.HandleFunc("/trends/api/widgetdata/relatedsearches", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("token") != "rq-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		lists := []map[string]interface{}{
			{"rankedKeyword": f.top},
			{"rankedKeyword": f.rising},
		}
		body, _ := json.Marshal(map[string]interface{}{
			"default": map[string]interface{}{"rankedList": lists},
		})
		fmt.Fprintf(w, ")]}',\n%s", body)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeTrends) row(d time.Time, value float64) map[string]interface{} {
	date := d.Format("2006-01-02")
	return map[string]interface{}{
		"time":          fmt.Sprintf("%d", d.Unix()),
		"formattedTime": date,
		"value":         []float64{value},
		"hasData":       []bool{!f.missing[date]},
		"isPartial":     false,
	}
}

func newClient(srv *httptest.Server) *trends.Client {
	return trends.NewClient(trends.Config{
		BaseURL:        srv.URL,
		HostLanguage:   "en-US",
		TimezoneOffset: 360,
		Timeout:        5 * time.Second,
	})
}
