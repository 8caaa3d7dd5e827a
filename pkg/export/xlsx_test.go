package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/kintai-tools/shiftcal/pkg/calendar"
	"github.com/kintai-tools/shiftcal/pkg/name"
	"github.com/kintai-tools/shiftcal/pkg/schedule"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	results := []schedule.PersonResult{
		{
			Person: name.PersonName{Full: "大江　直義", Surname: "大江", Given: "直義"},
			Drafts: []calendar.EventDraft{
				{
					Start:       calendar.EventTime{Date: "2025-08-10", TimeZone: "Asia/Tokyo"},
					End:         calendar.EventTime{Date: "2025-08-11", TimeZone: "Asia/Tokyo"},
					Summary:     "1st on call",
					Description: "勤務表:MAIN 職員:大江　直義",
				},
				{
					Start:       calendar.EventTime{DateTime: "2025-08-05T00:00:00", TimeZone: "Asia/Tokyo"},
					End:         calendar.EventTime{DateTime: "2025-08-05T08:30:00", TimeZone: "Asia/Tokyo"},
					Summary:     "当直明け",
					Description: "勤務表:MAIN 職員:大江　直義",
				},
			},
		},
		{
			Person: name.PersonName{Full: "佐藤　次郎", Surname: "佐藤", Given: "次郎"},
			Err:    errors.New("schedule: malformed row"),
		},
	}

	if err := WriteXLSX(path, results); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %v", sheets)
	}

	got, err := f.GetCellValue(sheets[0], "C2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "1st on call" {
		t.Errorf("C2 = %q, want summary of the first draft", got)
	}

	start, err := f.GetCellValue(sheets[0], "A3")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if start != "2025-08-05T00:00:00" {
		t.Errorf("A3 = %q, want the timed start", start)
	}

	errCell, err := f.GetCellValue(sheets[1], "B1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if errCell != "schedule: malformed row" {
		t.Errorf("B1 = %q, want the error text", errCell)
	}
}
