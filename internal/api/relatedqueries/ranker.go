package relatedqueries

import (
	"sort"

	"trends-dashboard/internal/chart"
)

// Rank orders the top queries by descending score, keeping the provider's
// order between equal scores. Rising queries are left as they are.
func Rank(set *RelatedQuerySet) RankedQueries {
	ranked := RankedQueries{
		Top:    []RelatedQuery{},
		Rising: []RelatedQuery{},
	}
	if set == nil {
		return ranked
	}

	ranked.Top = append(ranked.Top, set.Top...)
	sort.SliceStable(ranked.Top, func(i, j int) bool {
		return ranked.Top[i].Value > ranked.Top[j].Value
	})

	ranked.Rising = append(ranked.Rising, set.Rising...)
	return ranked
}

// Bars returns the top queries in rank order for the bar chart.
func (r RankedQueries) Bars() []chart.Bar {
	bars := make([]chart.Bar, len(r.Top))
	for i, q := range r.Top {
		bars[i] = chart.Bar{
			Label: q.Query,
			Value: q.Value,
		}
	}
	return bars
}

// Chart returns the bar chart of every top query.
func (r RankedQueries) Chart() chart.BarChart {
	return chart.BarChart{
		Title:  "Top Queries and their values",
		YLabel: "Top Query Value",
		Bars:   r.Bars(),
	}
}
