// Package export writes extraction results to office formats for manual
// review before anything reaches the calendar service.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kintai-tools/shiftcal/pkg/calendar"
	"github.com/kintai-tools/shiftcal/pkg/schedule"
)

// sheetNameForbidden are the characters Excel rejects in sheet names.
var sheetNameForbidden = strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "")

// WriteXLSX writes one worksheet per person, a header row followed by one row
// per draft. Failed persons get a sheet carrying the error text so a batch
// report stays complete.
func WriteXLSX(path string, results []schedule.PersonResult) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, r := range results {
		sheet := sheetName(r.Person.Full, i)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("export: renaming sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("export: adding sheet %s: %w", sheet, err)
		}

		if r.Err != nil {
			row := []interface{}{"error", r.Err.Error()}
			if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
				return fmt.Errorf("export: writing sheet %s: %w", sheet, err)
			}
			continue
		}

		header := []interface{}{"start", "end", "summary", "description"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("export: writing sheet %s: %w", sheet, err)
		}
		for j, d := range r.Drafts {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return fmt.Errorf("export: cell name: %w", err)
			}
			row := []interface{}{eventTime(d.Start), eventTime(d.End), d.Summary, d.Description}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("export: writing sheet %s: %w", sheet, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: saving %s: %w", path, err)
	}
	return nil
}

// sheetName sanitizes a person's name into a valid, unique sheet name.
func sheetName(full string, index int) string {
	s := sheetNameForbidden.Replace(full)
	if s == "" {
		s = fmt.Sprintf("person%d", index+1)
	}
	if len([]rune(s)) > 31 {
		s = string([]rune(s)[:31])
	}
	return s
}

func eventTime(t calendar.EventTime) string {
	if t.DateTime != "" {
		return t.DateTime
	}
	return t.Date
}
