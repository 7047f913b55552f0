package timeutil

import (
	"fmt"
	"time"
)

// StartOfDay returns 00:00:00 on t's civil date in t's location.
//
// The wall-clock hour/minute/second components are subtracted first and
// the result is passed through midnight normalization: plain instant
// subtraction lands one hour off midnight whenever a DST transition
// sits between midnight and t.
func StartOfDay(t time.Time) time.Time {
	wall := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	return normalizeMidnight(t.Add(-wall))
}

// StartOfWeek returns StartOfDay of the Monday on or before t's civil
// date. Days are subtracted as calendar days, so month and year
// boundaries are handled by the calendar, not by raw seconds.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return StartOfDay(t.AddDate(0, 0, -offset))
}

// StartOfMonth returns StartOfDay of day 1 of t's civil month.
// Day-of-month is replaced as a calendar field; subtracting mday-1 raw
// days would drift across DST transitions.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := StartOfDay(t).Date()
	return startOfCivilDate(y, m, t.Location())
}

// StartOfQuarter returns StartOfDay of the first day of t's civil
// quarter (January, April, July or October).
func StartOfQuarter(t time.Time) time.Time {
	y, m, _ := StartOfDay(t).Date()
	return startOfCivilDate(y, m-(m-1)%3, t.Location())
}

func startOfCivilDate(y int, m time.Month, loc *time.Location) time.Time {
	return normalizeMidnight(time.Date(y, m, 1, 0, 0, 0, 0, loc))
}

// normalizeMidnight corrects the one-hour skew a DST transition
// introduces into a timestamp intended to be midnight.
//
//	hour 0  — already midnight, keep.
//	hour 1  — spring forward overshot; step back one hour, unless the
//	          zone skips midnight itself on that date (then 01:00 is
//	          the first instant of the civil day and is the canonical
//	          day start).
//	hour 23 — fall back undershot into the previous day; step forward.
//
// Any other hour cannot result from a whole-unit subtraction and means
// the caller's arithmetic is broken.
func normalizeMidnight(t time.Time) time.Time {
	switch t.Hour() {
	case 0:
		return t
	case 1:
		back := t.Add(-time.Hour)
		if back.Hour() == 0 {
			return back
		}
		return t
	case 23:
		return t.Add(time.Hour)
	default:
		panic(fmt.Sprintf("timeutil: midnight normalization saw hour %d at %s", t.Hour(), t.Format(time.RFC3339)))
	}
}
