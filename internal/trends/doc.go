// Package trends is a client for the Google Trends widget API.
//
// A query runs in two steps: the explore endpoint returns one widget per view
// (interest over time, related queries, ...) carrying a request document and a
// token, and the widgetdata endpoints then return the data for a widget.
// DailyData stitches monthly daily-resolution fetches into one comparable series.
package trends
