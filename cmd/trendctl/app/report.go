package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/sirupsen/logrus"

	"trends-dashboard/internal/api/common/query"
	"trends-dashboard/internal/api/relatedqueries"
	"trends-dashboard/internal/api/searchvolume"
	"trends-dashboard/internal/chart"
	"trends-dashboard/internal/utils"
)

type Reporter struct {
	svs searchvolume.SearchVolumeService
	rqs relatedqueries.RelatedQueriesService
	out io.Writer
	log *logrus.Logger
}

func NewReporter(svs searchvolume.SearchVolumeService, rqs relatedqueries.RelatedQueriesService, out io.Writer, log *logrus.Logger) *Reporter {
	return &Reporter{
		svs: svs,
		rqs: rqs,
		out: out,
		log: log,
	}
}

// Run prints the report for opts.
func (r *Reporter) Run(ctx context.Context, opts *Options, defaultGeo string) error {
	q, err := query.FromValues(opts.Values(), defaultGeo)
	if err != nil {
		return err
	}

	r.log.WithFields(logrus.Fields{
		"keyword": q.Keyword,
		"geo":     q.Geo,
		"start":   q.StartTime.Format(utils.DateLayout),
		"end":     q.EndTime.Format(utils.DateLayout),
	}).Info("fetching search volume")

	sv, err := r.svs.GetSearchVolume(ctx, q)
	if err != nil {
		return err
	}
	r.printSearchVolume(sv)

	if *opts.Chart != "" {
		png, err := chart.SearchVolumePNG(sv.Chart())
		if err != nil {
			return err
		}
		if err := writeFile(*opts.Chart, png); err != nil {
			return err
		}
		r.log.WithField("file", *opts.Chart).Info("wrote search volume chart")
	}

	if !*opts.Related && *opts.RelatedChart == "" {
		return nil
	}

	r.log.WithField("keyword", q.Keyword).Info("fetching related queries")
	rq, err := r.rqs.GetRelatedQueries(ctx, q)
	if err != nil {
		return err
	}
	r.printRelatedQueries(rq)

	if *opts.RelatedChart != "" {
		if len(rq.Top) == 0 {
			r.log.Warn("no top related queries to chart")
			return nil
		}
		png, err := chart.BarsPNG(rq.Chart())
		if err != nil {
			return err
		}
		if err := writeFile(*opts.RelatedChart, png); err != nil {
			return err
		}
		r.log.WithField("file", *opts.RelatedChart).Info("wrote related queries chart")
	}
	return nil
}

func (r *Reporter) printSearchVolume(sv *searchvolume.SearchVolume) {
	fmt.Fprintln(r.out, sv.Description)
	fmt.Fprintln(r.out)

	header := []string{"Date", "Search Volume"}
	if sv.MovingAverage != nil {
		header = append(header, "Moving Average")
	}
	rows := make([][]string, len(sv.Series))
	for i, point := range sv.Series {
		rows[i] = []string{point.Time.Format(utils.DateLayout), formatFloat(point.Value)}
		if sv.MovingAverage != nil {
			average := ""
			if v := sv.MovingAverage[i].Value; v != nil {
				average = formatFloat(*v)
			}
			rows[i] = append(rows[i], average)
		}
	}
	r.render(header, rows)
	fmt.Fprintln(r.out)

	r.render([]string{"Statistic", "Search Volume"}, [][]string{
		{"Mean", formatFloat(sv.Summary.Mean)},
		{"Median", formatFloat(sv.Summary.Median)},
		{"Maximum", formatFloat(sv.Summary.Max)},
		{"Minimum", formatFloat(sv.Summary.Min)},
	})
}

func (r *Reporter) printRelatedQueries(rq *relatedqueries.RelatedQueries) {
	for _, table := range []struct {
		title   string
		queries []relatedqueries.RelatedQuery
	}{
		{title: "Top Related Queries:", queries: rq.Top},
		{title: "Rising Related Queries:", queries: rq.Rising},
	} {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, table.title)
		if len(table.queries) == 0 {
			fmt.Fprintln(r.out, "(none)")
			continue
		}
		rows := make([][]string, len(table.queries))
		for i, q := range table.queries {
			rows[i] = []string{q.Query, q.FormattedValue}
		}
		r.render([]string{"Query", "Value"}, rows)
	}
}

func (r *Reporter) render(header []string, rows [][]string) {
	table := tablewriter.NewTable(r.out,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignRight,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.Off,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
		}),
	)
	table.Header(header)
	table.Bulk(rows)
	table.Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
