// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "time"

// dateFmt is the calendar date layout used everywhere the digest displays
// or compares dates.
const dateFmt = "2006-01-02"

// Window is the inclusive publication date range a digest run accepts.
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow returns the window [now - daysAgo, now], truncated to calendar
// days. Negative daysAgo is treated as 0, so From never exceeds To.
func NewWindow(now time.Time, daysAgo int) Window {
	if daysAgo < 0 {
		daysAgo = 0
	}
	to := truncateToDay(now)
	return Window{
		From: to.AddDate(0, 0, -daysAgo),
		To:   to,
	}
}

// Contains reports whether t falls within the window, inclusive on both
// ends. Comparison is by calendar date in each value's own location: feed
// timestamps are UTC while the window comes from local time, and a paper
// published at any time on the boundary days is kept regardless of zone.
func (w Window) Contains(t time.Time) bool {
	day := t.Format(dateFmt)
	return day >= w.FromDate() && day <= w.ToDate()
}

// FromDate returns the window start formatted as YYYY-MM-DD.
func (w Window) FromDate() string { return w.From.Format(dateFmt) }

// ToDate returns the window end formatted as YYYY-MM-DD.
func (w Window) ToDate() string { return w.To.Format(dateFmt) }

// Range returns the display form "YYYY-MM-DD - YYYY-MM-DD".
func (w Window) Range() string { return w.FromDate() + " - " + w.ToDate() }

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
