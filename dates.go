package main

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

const weekdayNames = "(monday|tuesday|wednesday|thursday|friday|saturday|sunday)"

var (
	nextWeekdayRe = regexp.MustCompile("next " + weekdayNames)
	bareWeekdayRe = regexp.MustCompile("^" + weekdayNames + "$")
	inOffsetRe    = regexp.MustCompile(`in (\d+)\s*(day|days|week|weeks)`)
)

// resolveDeadline turns an informal deadline phrase into a concrete calendar
// date relative to ref. The boolean is false when the phrase cannot be
// resolved; callers fall back to displaying the raw string.
func resolveDeadline(value string, ref time.Time) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return time.Time{}, false
	}
	base := startOfDay(ref)

	switch {
	case lower == "today":
		return base, true
	case lower == "tomorrow":
		return addDays(base, 1), true
	case strings.Contains(lower, "end of week"):
		return nextWeekday(base, time.Friday, false), true
	case strings.Contains(lower, "next week"):
		return addDays(base, 7), true
	case strings.Contains(lower, "end of month"):
		// Day 0 of the following month normalizes to the last day of this one.
		return time.Date(base.Year(), base.Month()+1, 0, 0, 0, 0, 0, base.Location()), true
	}

	if m := nextWeekdayRe.FindStringSubmatch(lower); m != nil {
		return nextWeekday(base, weekdayIndex[m[1]], false), true
	}
	if m := bareWeekdayRe.FindStringSubmatch(lower); m != nil {
		return nextWeekday(base, weekdayIndex[m[1]], true), true
	}
	if m := inOffsetRe.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "week") {
			amount *= 7
		}
		return addDays(base, amount), true
	}

	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, base.Location()), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// nextWeekday returns the next occurrence of weekday at or after t.
// A same-day match only counts when allowSameDay is set; otherwise it wraps
// to the following week.
func nextWeekday(t time.Time, weekday time.Weekday, allowSameDay bool) time.Time {
	diff := (int(weekday) - int(t.Weekday()) + 7) % 7
	if diff == 0 && !allowSameDay {
		diff = 7
	}
	return addDays(t, diff)
}

// daysBetween counts whole days from start to end, rounding partial days up.
// Negative when end is in the past.
func daysBetween(start, end time.Time) int {
	const day = 24 * time.Hour
	diff := end.Sub(start)
	days := diff / day
	if diff%day > 0 {
		days++
	}
	return int(days)
}

// pickSoonestDeadline reduces candidate dates to the single most relevant
// one: the earliest date that is today or later, or, when everything is in
// the past, the latest past date.
func pickSoonestDeadline(dates []time.Time, now time.Time) (time.Time, bool) {
	if len(dates) == 0 {
		return time.Time{}, false
	}
	today := startOfDay(now)

	var soonest, latest time.Time
	haveFuture := false
	for _, d := range dates {
		if !d.Before(today) {
			if !haveFuture || d.Before(soonest) {
				soonest = d
			}
			haveFuture = true
		}
		if latest.IsZero() || d.After(latest) {
			latest = d
		}
	}
	if haveFuture {
		return soonest, true
	}
	return latest, true
}
