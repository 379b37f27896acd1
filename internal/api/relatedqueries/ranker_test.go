package relatedqueries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankSortsTopDescending(t *testing.T) {
	set := &RelatedQuerySet{
		Top: []RelatedQuery{
			{Query: "a", Value: 20},
			{Query: "b", Value: 100},
			{Query: "c", Value: 55},
		},
	}

	ranked := Rank(set)
	require.Len(t, ranked.Top, 3)
	assert.Equal(t, "b", ranked.Top[0].Query)
	assert.Equal(t, "c", ranked.Top[1].Query)
	assert.Equal(t, "a", ranked.Top[2].Query)

	// input untouched
	assert.Equal(t, "a", set.Top[0].Query)
}

func TestRankKeepsTieOrder(t *testing.T) {
	set := &RelatedQuerySet{
		Top: []RelatedQuery{
			{Query: "first", Value: 50},
			{Query: "top", Value: 100},
			{Query: "second", Value: 50},
			{Query: "third", Value: 50},
		},
	}

	ranked := Rank(set)
	queries := make([]string, len(ranked.Top))
	for i, q := range ranked.Top {
		queries[i] = q.Query
	}
	assert.Equal(t, []string{"top", "first", "second", "third"}, queries)
}

func TestRankPassesRisingThrough(t *testing.T) {
	rising := []RelatedQuery{
		{Query: "x", Value: 250, FormattedValue: "+250%"},
		{Query: "y", Value: 5000, FormattedValue: "Breakout"},
		{Query: "z", Value: 40, FormattedValue: "+40%"},
	}

	ranked := Rank(&RelatedQuerySet{Rising: rising})
	assert.Equal(t, rising, ranked.Rising)
	assert.NotNil(t, ranked.Top)
	assert.Empty(t, ranked.Top)
}

func TestRankAbsentCollections(t *testing.T) {
	for name, set := range map[string]*RelatedQuerySet{
		"nil set":     nil,
		"empty set":   {},
		"empty lists": {Top: []RelatedQuery{}, Rising: []RelatedQuery{}},
	} {
		t.Run(name, func(t *testing.T) {
			ranked := Rank(set)
			assert.NotNil(t, ranked.Top)
			assert.NotNil(t, ranked.Rising)
			assert.Empty(t, ranked.Top)
			assert.Empty(t, ranked.Rising)
		})
	}
}

func TestBars(t *testing.T) {
	ranked := Rank(&RelatedQuerySet{
		Top: []RelatedQuery{
			{Query: "a", Value: 10},
			{Query: "b", Value: 30},
			{Query: "c", Value: 20},
		},
	})

	bars := ranked.Bars()
	require.Len(t, bars, 3)
	assert.Equal(t, "b", bars[0].Label)
	assert.Equal(t, 30.0, bars[0].Value)
	assert.Equal(t, "c", bars[1].Label)
	assert.Equal(t, "a", bars[2].Label)

	assert.Empty(t, Rank(nil).Bars())
	assert.Equal(t, bars, ranked.Chart().Bars)
}
