// Package timerange computes the half-open date intervals used to filter
// dated articles (daily news, monthly digests, yearly reviews).
package timerange

import (
	"errors"
	"time"
)

type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
	Yearly  Granularity = "yearly"
)

var (
	ErrInvalidDate        = errors.New("invalid date format")
	ErrInvalidGranularity = errors.New("invalid granularity: use 'daily', 'monthly', or 'yearly'")
)

// ParseGranularity checks a raw type tag against the three allowed values.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case Daily, Monthly, Yearly:
		return g, nil
	default:
		return "", ErrInvalidGranularity
	}
}

// Range is a half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// ParseDate accepts a plain "2006-01-02" date or a full RFC 3339 timestamp
// and normalizes it to midnight UTC.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		t, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return time.Time{}, ErrInvalidDate
		}
	}
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ForDate computes the filter interval for one dated-article query.
//
// The daily interval is expressed in explicit UTC timestamps, while the
// monthly and yearly intervals are built from calendar components of the
// normalized UTC-midnight instant as seen in loc, with boundaries at loc
// midnight. In zones west of UTC this shifts a date near a month or year
// boundary into the previous period, which does not match the daily case.
// The mismatch is inherited behavior; callers pass time.Local to keep it.
func ForDate(date string, g Granularity, loc *time.Location) (Range, error) {
	day, err := ParseDate(date)
	if err != nil {
		return Range{}, err
	}

	switch g {
	case Daily:
		return Range{
			Start: day,
			End:   day.Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond),
		}, nil
	case Monthly:
		local := day.In(loc)
		y, m := local.Year(), local.Month()
		return Range{
			Start: time.Date(y, m, 1, 0, 0, 0, 0, loc),
			End:   time.Date(y, m+1, 1, 0, 0, 0, 0, loc),
		}, nil
	case Yearly:
		y := day.In(loc).Year()
		return Range{
			Start: time.Date(y, 1, 1, 0, 0, 0, 0, loc),
			End:   time.Date(y+1, 1, 1, 0, 0, 0, 0, loc),
		}, nil
	default:
		return Range{}, ErrInvalidGranularity
	}
}
