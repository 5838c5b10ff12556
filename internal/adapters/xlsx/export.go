package xlsx

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/refsched/internal/scheduler"
	"github.com/derekprior/refsched/internal/slotindex"
)

var weekOrder = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

const scheduleSheet = "Schedule"

// ExportSchedule writes one sheet listing every assignment, grouped and
// sorted by day (fixed week order) then time, mirroring the original
// schedule_to_excel.py's output but styled the way the teacher's
// internal/excel.Generate styles its Master Schedule sheet.
func ExportSchedule(result scheduler.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return nil, fmt.Errorf("creating schedule sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headers := []string{"Day", "Time", "Location", "Game #", "Difficulty", "Referee"}
	for i, h := range headers {
		f.SetCellValue(scheduleSheet, cellRef(i+1, 1), h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 12, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("building header style: %w", err)
	}
	for i := range headers {
		f.SetCellStyle(scheduleSheet, cellRef(i+1, 1), cellRef(i+1, 1), headerStyle)
	}

	rows := append([]scheduler.Assignment(nil), result.Assignments...)
	sort.Slice(rows, func(i, j int) bool {
		di, dj := weekOrder[rows[i].Day], weekOrder[rows[j].Day]
		if di != dj {
			return di < dj
		}
		if rows[i].Time != rows[j].Time {
			ti := slotindex.ParseTimeMinutesWithMeridiemHeuristic(rows[i].Time, slotindex.DefaultMeridiemHeuristic)
			tj := slotindex.ParseTimeMinutesWithMeridiemHeuristic(rows[j].Time, slotindex.DefaultMeridiemHeuristic)
			if ti != tj {
				return ti < tj
			}
			return rows[i].Time < rows[j].Time
		}
		return rows[i].GameNumber < rows[j].GameNumber
	})

	cellStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 12, Family: "Arial"}})
	if err != nil {
		return nil, fmt.Errorf("building cell style: %w", err)
	}

	for i, a := range rows {
		row := i + 2
		f.SetCellValue(scheduleSheet, cellRef(1, row), a.Day)
		f.SetCellValue(scheduleSheet, cellRef(2, row), a.Time)
		f.SetCellValue(scheduleSheet, cellRef(3, row), a.Location)
		f.SetCellValue(scheduleSheet, cellRef(4, row), a.GameNumber)
		f.SetCellValue(scheduleSheet, cellRef(5, row), a.Difficulty)
		f.SetCellValue(scheduleSheet, cellRef(6, row), a.RefName)
		f.SetCellStyle(scheduleSheet, cellRef(1, row), cellRef(6, row), cellStyle)
	}

	f.SetColWidth(scheduleSheet, "A", "A", 14)
	f.SetColWidth(scheduleSheet, "B", "B", 12)
	f.SetColWidth(scheduleSheet, "C", "C", 20)
	f.SetColWidth(scheduleSheet, "D", "D", 10)
	f.SetColWidth(scheduleSheet, "E", "E", 18)
	f.SetColWidth(scheduleSheet, "F", "F", 20)

	return f, nil
}
