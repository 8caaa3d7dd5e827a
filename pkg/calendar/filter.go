package calendar

import (
	"strings"
	"time"
)

// FilterMonth narrows a listed event set to those starting in the given
// year/month and, when tags are supplied, to those whose description carries
// at least one tag.
//
// The month re-check is needed because calendar services bounded by
// [first day, last day 23:59:59] still return events that start on the first
// day of the following month. Descriptions are compared with full-width
// spaces normalized, matching how the extractor writes them.
func FilterMonth(events []Event, year, month int, tags []string) []Event {
	var sameMonth []Event
	for _, e := range events {
		start, ok := startTime(e)
		if !ok {
			continue
		}
		if start.Year() == year && int(start.Month()) == month {
			sameMonth = append(sameMonth, e)
		}
	}
	if len(tags) == 0 {
		return sameMonth
	}

	normalized := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			normalized = append(normalized, t)
		}
	}

	var filtered []Event
	for _, e := range sameMonth {
		desc := strings.TrimSpace(strings.ReplaceAll(e.Description, "　", " "))
		for _, tag := range normalized {
			if strings.Contains(desc, tag) {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered
}

// startTime parses the start of an event, treating all-day dates as midnight.
func startTime(e Event) (time.Time, bool) {
	if e.Start.DateTime != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, e.Start.DateTime); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	}
	if e.Start.Date != "" {
		t, err := time.Parse("2006-01-02", e.Start.Date)
		return t, err == nil
	}
	return time.Time{}, false
}
