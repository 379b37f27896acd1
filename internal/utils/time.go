package utils

import (
	"time"

	"github.com/araddon/dateparse"
)

const DateLayout = "2006-01-02"

func TimeParser(datestr string) (time.Time, error) {
	t, err := dateparse.ParseAny(datestr)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// DateParser parses datestr and truncates it to a UTC calendar date.
func DateParser(datestr string) (time.Time, error) {
	t, err := TimeParser(datestr)
	if err != nil {
		return time.Time{}, err
	}
	return Date(t), nil
}

func ParseQueryTime(startstr, endstr string) (time.Time, time.Time, error) {
	// start: default a month ago
	var end = Date(time.Now())
	var start = end.AddDate(0, 0, -30)
	var err error

	if startstr != "" {
		if start, err = DateParser(startstr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if endstr != "" {
		if end, err = DateParser(endstr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

// Date drops the clock part of t, keeping its calendar date in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func LastDayOfMonth(t time.Time) time.Time {
	return FirstDayOfMonth(t).AddDate(0, 1, -1)
}
