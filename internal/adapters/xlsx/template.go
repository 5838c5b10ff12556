// Package xlsx adapts the scheduling core to spreadsheet I/O, grounded on
// the teacher's internal/excel styling conventions and the original
// dashboard's checkbox-template workflow (template_generator.py /
// file_processor.py). Nothing here is part of the core's documented
// external interfaces (§6) — it is one concrete adapter over them.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const availabilitySheet = "Referee Availability"

// basicInfoColumns mirrors the original template's Name/Shirt/Phone/Email/
// Team Name columns; only Name round-trips into the domain model today, the rest
// are carried for human fill-in just as the original left them.
var basicInfoColumns = []string{"Name", "Shirt", "Phone", "Email", "Team Name/Time Playing"}

// GenerateAvailabilityTemplate builds the checkbox availability workbook
// the original dashboard's create_custom_template produced: one merged
// day header per column group, one time-label row beneath it, and one
// row per referee name with a blank cell per (day, time) slot. A
// non-empty cell in a slot column means "available", matching
// file_processor.py's convention.
func GenerateAvailabilityTemplate(days, times []string, refNames []string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")
	sheet := availabilitySheet
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, fmt.Errorf("creating availability sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 12, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#881C1C"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("building header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 12, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("building data style: %w", err)
	}

	for col, header := range basicInfoColumns {
		top := cellRef(col+1, 1)
		bottom := cellRef(col+1, 2)
		f.SetCellValue(sheet, top, header)
		f.SetCellStyle(sheet, top, bottom, headerStyle)
		if err := f.MergeCell(sheet, top, bottom); err != nil {
			return nil, fmt.Errorf("merging header %q: %w", header, err)
		}
	}

	slotStart := len(basicInfoColumns) + 1
	col := slotStart
	for _, day := range days {
		dayStartCol := col
		for range times {
			col++
		}
		dayEndCol := col - 1
		if dayEndCol < dayStartCol {
			continue
		}
		if err := f.MergeCell(sheet, cellRef(dayStartCol, 1), cellRef(dayEndCol, 1)); err != nil {
			return nil, fmt.Errorf("merging day header %q: %w", day, err)
		}
		f.SetCellValue(sheet, cellRef(dayStartCol, 1), day)
		f.SetCellStyle(sheet, cellRef(dayStartCol, 1), cellRef(dayEndCol, 1), headerStyle)
	}

	col = slotStart
	for range days {
		for _, t := range times {
			f.SetCellValue(sheet, cellRef(col, 2), t)
			f.SetCellStyle(sheet, cellRef(col, 2), cellRef(col, 2), headerStyle)
			col++
		}
	}

	lastCol := slotStart + len(days)*len(times) - 1
	for i, name := range refNames {
		row := 3 + i
		f.SetCellValue(sheet, cellRef(1, row), name)
		f.SetCellStyle(sheet, cellRef(1, row), cellRef(lastCol, row), dataStyle)
	}

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 8)
	f.SetColWidth(sheet, "C", "E", 20)
	if lastCol >= slotStart {
		f.SetColWidth(sheet, colLetter(slotStart), colLetter(lastCol), 10)
	}

	return f, nil
}

// ParseAvailabilityTemplate reads a filled-in availability workbook back
// into a map of referee name -> 0/1 availability vector, indexed in the
// same (day, time) order GenerateAvailabilityTemplate wrote the columns
// in. A non-empty, non-"0"/"FALSE" cell counts as available, matching
// file_processor.py's "non-empty means available" rule, with FALSE/0
// recognized explicitly since Excel renders an unchecked checkbox cell
// as literal "FALSE" once re-saved by older Excel versions.
func ParseAvailabilityTemplate(f *excelize.File, days, times []string) (map[string][]int, error) {
	sheet := availabilitySheet
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", sheet, err)
	}
	if len(rows) < 3 {
		return map[string][]int{}, nil
	}

	slotStart := len(basicInfoColumns)
	width := len(days) * len(times)

	result := make(map[string][]int)
	for _, row := range rows[2:] {
		if len(row) == 0 {
			continue
		}
		name := row[0]
		if name == "" || name == "DONE" {
			continue
		}
		avail := make([]int, width)
		for i := 0; i < width; i++ {
			col := slotStart + i
			if col >= len(row) {
				continue
			}
			if isAvailableCell(row[col]) {
				avail[i] = 1
			}
		}
		result[name] = avail
	}
	return result, nil
}

func isAvailableCell(v string) bool {
	switch v {
	case "", "0", "FALSE", "false", "False":
		return false
	default:
		return true
	}
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
