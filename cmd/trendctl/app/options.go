package app

import (
	"strconv"

	"github.com/akamensky/argparse"

	"trends-dashboard/internal/api/common/series"
)

type Options struct {
	Keyword       *string
	Start         *string
	End           *string
	Geo           *string
	MovingAverage *bool
	Window        *int
	DynamicYAxis  *bool
	Related       *bool
	Chart         *string
	RelatedChart  *string
	Verbose       *bool
	parser        *argparse.Parser
}

func Parse(args []string) (*Options, error) {
	option := &Options{}

	parser := argparse.NewParser("trendctl", "Print the daily search volume and related queries of a keyword")
	option.parser = parser

	option.Keyword = parser.String("k", "keyword", &argparse.Options{
		Required: true,
		Help:     "search keyword",
	})
	option.Start = parser.String("s", "start", &argparse.Options{
		Help: "start date (default 30 days before end)",
	})
	option.End = parser.String("e", "end", &argparse.Options{
		Help: "end date (default today)",
	})
	option.Geo = parser.String("g", "geo", &argparse.Options{
		Help: "geo code of the region (default TRENDS_GEO)",
	})
	option.MovingAverage = parser.Flag("", "moving-average", &argparse.Options{
		Help: "add the trailing moving average",
	})
	option.Window = parser.Int("w", "window", &argparse.Options{
		Help:    "moving average window",
		Default: series.DefaultWindow,
	})
	option.DynamicYAxis = parser.Flag("", "dynamic-y-axis", &argparse.Options{
		Help: "pin the chart y-axis to [0, max]",
	})
	option.Related = parser.Flag("r", "related", &argparse.Options{
		Help: "also print the related queries",
	})
	option.Chart = parser.String("c", "chart", &argparse.Options{
		Help: "write the search volume chart to this PNG file",
	})
	option.RelatedChart = parser.String("", "related-chart", &argparse.Options{
		Help: "write the top related queries chart to this PNG file",
	})
	option.Verbose = parser.Flag("v", "verbose", &argparse.Options{
		Help: "debug logging",
	})

	if err := parser.Parse(args); err != nil {
		return option, err
	}
	return option, nil
}

// Values returns the options keyed like the api-server query string.
func (o *Options) Values() map[string]string {
	return map[string]string{
		"keyword":        *o.Keyword,
		"start":          *o.Start,
		"end":            *o.End,
		"geo":            *o.Geo,
		"moving_average": strconv.FormatBool(*o.MovingAverage),
		"window":         strconv.Itoa(*o.Window),
		"dynamic_y_axis": strconv.FormatBool(*o.DynamicYAxis),
	}
}

func (o *Options) Usage(err error) string {
	return o.parser.Usage(err)
}
