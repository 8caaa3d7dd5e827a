package schedule

import (
	"fmt"
	"time"

	"golang.org/x/text/width"

	"github.com/kintai-tools/shiftcal/pkg/calendar"
)

// Mark is the work/leave category a roster cell denotes for one day.
type Mark int

const (
	MarkUnknown Mark = iota
	MarkFirstOnCall
	MarkSecondOnCall
	MarkSubstituteHoliday
	MarkAnnualLeave
	MarkCompensatoryLeave
	MarkUnavailable
	MarkNightDuty
	MarkMorningLeave   // ＡＭ休: morning off, works 13:22:30-17:15
	MarkAfternoonLeave // ＰＭ休: afternoon off, works 08:30-12:22:30
	MarkPostDuty       // 明: rest until 08:30 after night duty
)

// ParseMark resolves a cell's text to a mark. Text is width-folded first so
// full-width variants (ＡＭ休, １) match their half-width spellings. Anything
// outside the rule table is MarkUnknown, which maps to no event.
func ParseMark(text string) Mark {
	switch width.Fold.String(text) {
	case "1":
		return MarkFirstOnCall
	case "2":
		return MarkSecondOnCall
	case "代休":
		return MarkSubstituteHoliday
	case "年休":
		return MarkAnnualLeave
	case "振休":
		return MarkCompensatoryLeave
	case "×":
		return MarkUnavailable
	case "⑯":
		return MarkNightDuty
	case "AM休":
		return MarkMorningLeave
	case "PM休":
		return MarkAfternoonLeave
	case "明":
		return MarkPostDuty
	}
	return MarkUnknown
}

// span is the time-span policy of one mark kind: a whole calendar day, or a
// fixed window of offsets from local midnight.
type span struct {
	allDay     bool
	start, end time.Duration
}

func allDay() span {
	return span{allDay: true}
}

func window(start, end time.Duration) span {
	return span{start: start, end: end}
}

// markRules is the fixed rule table translating marks into draft summaries
// and spans. Summaries follow the wording the roster's staff already use on
// their calendars.
var markRules = map[Mark]struct {
	summary string
	span    span
}{
	MarkFirstOnCall:       {"1st on call", allDay()},
	MarkSecondOnCall:      {"2nd on call", allDay()},
	MarkSubstituteHoliday: {"代替休日", allDay()},
	MarkAnnualLeave:       {"年次休暇", allDay()},
	MarkCompensatoryLeave: {"振替休日", allDay()},
	MarkUnavailable:       {"業務対応不可", allDay()},
	MarkNightDuty:         {"当直", allDay()},
	MarkMorningLeave:      {"午後出勤（午前休）", window(13*time.Hour+22*time.Minute+30*time.Second, 17*time.Hour+15*time.Minute)},
	MarkAfternoonLeave:    {"午前出勤（午後休）", window(8*time.Hour+30*time.Minute, 12*time.Hour+22*time.Minute+30*time.Second)},
	MarkPostDuty:          {"当直明け", window(0, 8*time.Hour+30*time.Minute)},
}

// Summary returns the calendar summary for the mark, or "" for MarkUnknown.
func (m Mark) Summary() string {
	return markRules[m].summary
}

// Draft builds the calendar-event draft for this mark on the given day of the
// period. ok is false for MarkUnknown: unrecognized cells produce no event by
// design, not an error. All-day drafts span [date, date+1) with the end date
// exclusive; windowed drafts carry local timestamps in the given time zone.
// The description embeds the schedule tag and the person's full name so the
// calendar service can filter the events later.
func (m Mark) Draft(day int, p Period, person, timeZone, tag string) (calendar.EventDraft, bool) {
	rule, ok := markRules[m]
	if !ok {
		return calendar.EventDraft{}, false
	}

	date := time.Date(p.Year, time.Month(p.Month), day, 0, 0, 0, 0, time.UTC)
	description := fmt.Sprintf("%s:MAIN 職員:%s", tag, person)

	if rule.span.allDay {
		return calendar.EventDraft{
			Start:       calendar.EventTime{Date: date.Format("2006-01-02"), TimeZone: timeZone},
			End:         calendar.EventTime{Date: date.AddDate(0, 0, 1).Format("2006-01-02"), TimeZone: timeZone},
			Summary:     rule.summary,
			Description: description,
		}, true
	}

	const layout = "2006-01-02T15:04:05"
	return calendar.EventDraft{
		Start:       calendar.EventTime{DateTime: date.Add(rule.span.start).Format(layout), TimeZone: timeZone},
		End:         calendar.EventTime{DateTime: date.Add(rule.span.end).Format(layout), TimeZone: timeZone},
		Summary:     rule.summary,
		Description: description,
	}, true
}
