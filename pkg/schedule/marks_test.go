package schedule

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kintai-tools/shiftcal/pkg/calendar"
)

func TestParseMark(t *testing.T) {
	tests := []struct {
		text string
		want Mark
	}{
		{"1", MarkFirstOnCall},
		{"１", MarkFirstOnCall}, // full-width digit
		{"2", MarkSecondOnCall},
		{"代休", MarkSubstituteHoliday},
		{"年休", MarkAnnualLeave},
		{"振休", MarkCompensatoryLeave},
		{"×", MarkUnavailable},
		{"⑯", MarkNightDuty},
		{"ＡＭ休", MarkMorningLeave},
		{"AM休", MarkMorningLeave},
		{"ＰＭ休", MarkAfternoonLeave},
		{"明", MarkPostDuty},
		{"休", MarkUnknown},
		{"", MarkUnknown},
	}
	for _, tt := range tests {
		if got := ParseMark(tt.text); got != tt.want {
			t.Errorf("ParseMark(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDraftAllDay(t *testing.T) {
	p := Period{Year: 2025, Month: 8}

	draft, ok := MarkFirstOnCall.Draft(10, p, "大江　直義", "Asia/Tokyo", "勤務表")
	if !ok {
		t.Fatal("expected a draft")
	}

	want := calendar.EventDraft{
		Start:       calendar.EventTime{Date: "2025-08-10", TimeZone: "Asia/Tokyo"},
		End:         calendar.EventTime{Date: "2025-08-11", TimeZone: "Asia/Tokyo"},
		Summary:     "1st on call",
		Description: "勤務表:MAIN 職員:大江　直義",
	}
	if diff := cmp.Diff(want, draft); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestDraftAllDayMonthBoundary(t *testing.T) {
	draft, ok := MarkNightDuty.Draft(31, Period{Year: 2025, Month: 8}, "大江　直義", "Asia/Tokyo", "勤務表")
	if !ok {
		t.Fatal("expected a draft")
	}
	if draft.End.Date != "2025-09-01" {
		t.Errorf("end-exclusive day after Aug 31 should be Sep 1, got %s", draft.End.Date)
	}
}

func TestDraftPostDutyWindow(t *testing.T) {
	draft, ok := MarkPostDuty.Draft(5, Period{Year: 2025, Month: 8}, "大江　直義", "Asia/Tokyo", "勤務表")
	if !ok {
		t.Fatal("expected a draft")
	}
	if draft.Start.DateTime != "2025-08-05T00:00:00" {
		t.Errorf("start = %s", draft.Start.DateTime)
	}
	if draft.End.DateTime != "2025-08-05T08:30:00" {
		t.Errorf("end = %s", draft.End.DateTime)
	}
	if draft.Start.Date != "" || draft.End.Date != "" {
		t.Error("timed drafts must not carry all-day dates")
	}
	if draft.Summary != "当直明け" {
		t.Errorf("summary = %s", draft.Summary)
	}
}

func TestDraftLeaveWindows(t *testing.T) {
	p := Period{Year: 2025, Month: 8}

	am, _ := MarkMorningLeave.Draft(5, p, "大江　直義", "Asia/Tokyo", "勤務表")
	if am.Start.DateTime != "2025-08-05T13:22:30" || am.End.DateTime != "2025-08-05T17:15:00" {
		t.Errorf("AM休 window = %s - %s", am.Start.DateTime, am.End.DateTime)
	}

	pm, _ := MarkAfternoonLeave.Draft(5, p, "大江　直義", "Asia/Tokyo", "勤務表")
	if pm.Start.DateTime != "2025-08-05T08:30:00" || pm.End.DateTime != "2025-08-05T12:22:30" {
		t.Errorf("PM休 window = %s - %s", pm.Start.DateTime, pm.End.DateTime)
	}
}

func TestDraftSummaries(t *testing.T) {
	want := map[Mark]string{
		MarkFirstOnCall:       "1st on call",
		MarkSecondOnCall:      "2nd on call",
		MarkSubstituteHoliday: "代替休日",
		MarkAnnualLeave:       "年次休暇",
		MarkCompensatoryLeave: "振替休日",
		MarkUnavailable:       "業務対応不可",
		MarkNightDuty:         "当直",
		MarkMorningLeave:      "午後出勤（午前休）",
		MarkAfternoonLeave:    "午前出勤（午後休）",
		MarkPostDuty:          "当直明け",
	}
	for mark, summary := range want {
		draft, ok := mark.Draft(1, Period{Year: 2025, Month: 8}, "x", "Asia/Tokyo", "勤務表")
		if !ok {
			t.Errorf("%v: expected a draft", mark)
			continue
		}
		if draft.Summary != summary {
			t.Errorf("%v summary = %q, want %q", mark, draft.Summary, summary)
		}
	}
}

func TestDraftUnknownIsNoEvent(t *testing.T) {
	if _, ok := MarkUnknown.Draft(1, Period{Year: 2025, Month: 8}, "x", "Asia/Tokyo", "勤務表"); ok {
		t.Error("unknown marks must map to no event")
	}
}
