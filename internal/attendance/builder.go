package attendance

import (
	"fmt"
	"regexp"
	"strings"
)

// Record is one employee's attendance for one calendar day.
type Record struct {
	Day          int         `json:"day"`
	Date         string      `json:"date"` // "5/Mar/2025" display form
	DayOfWeek    string      `json:"dayOfWeek"`
	WeekOfMonth  int         `json:"weekOfMonth"`
	InTime       string      `json:"inTime"`  // "HH:MM" or "-"
	OutTime      string      `json:"outTime"` // "HH:MM" or "-"
	WorkingHours string      `json:"workingHours"`
	Status       string      `json:"status"`
	StatusLabel  string      `json:"statusLabel"`
	TimeStatus   *TimeStatus `json:"timeStatus,omitempty"`
	IsSunday     bool        `json:"isSunday"`
}

// Employee is one person's block from the export: metadata plus one Record
// per day of the reporting month, in day order.
type Employee struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Designation string   `json:"designation"`
	Department  string   `json:"department"`
	Attendance  []Record `json:"attendance"`
}

// Metadata field patterns. The export packs all employee fields into a single
// free-text cell ("Employee ID : 42; Employee Name : X; ..."), each field
// delimited by its label, a separator, and the next semicolon.
var (
	idPattern    = regexp.MustCompile(`(?i)Employee ID\s*[:|\-]\s*([^;]+)`)
	namePattern  = regexp.MustCompile(`(?i)Employee Name\s*[:|\-]\s*([^;]+)`)
	desigPattern = regexp.MustCompile(`(?i)Designation\s*[:|\-]\s*([^;]+)`)
	deptPattern  = regexp.MustCompile(`(?i)Department\s*[:|\-]\s*([^;]+)`)
)

// ParseSheet walks the row matrix and emits one Employee per block found.
//
// The layout is recognised by first-cell labels, as a two-state machine:
// a cell containing "Employee ID" opens an employee block; a later cell
// containing "in_time" carries that employee's in-punches for columns
// 1..daysInMonth (column index = day number) with the out-punches on the
// immediately following row. Rows between triggers are ignored, so arbitrary
// headers and blank rows are fine. Employees appear in source order.
//
// The month and year come from DetectPeriod (or the caller's stored key);
// every employee gets exactly DaysInMonth(month, year) records.
func ParseSheet(rows [][]string, month string, year int) ([]Employee, error) {
	daysInMonth := DaysInMonth(month, year)
	if daysInMonth == 0 {
		return nil, fmt.Errorf("unknown month %q", month)
	}

	employees := []Employee{}
	var current *Employee // nil = seeking the next employee block

	for i := 0; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}
		firstCell := strings.TrimSpace(row[0])

		if strings.Contains(firstCell, "Employee ID") {
			current = &Employee{
				ID:          matchOr(idPattern, firstCell, "Unknown"),
				Name:        matchOr(namePattern, firstCell, "Unknown"),
				Designation: matchOr(desigPattern, firstCell, ""),
				Department:  matchOr(deptPattern, firstCell, ""),
				Attendance:  make([]Record, 0, daysInMonth),
			}
			continue
		}

		if current != nil && strings.Contains(strings.ToLower(firstCell), "in_time") {
			inRow := row
			var outRow []string
			if i+1 < len(rows) {
				outRow = rows[i+1]
			}

			for day := 1; day <= daysInMonth; day++ {
				// Column index matches the day number (col 1 = day 1).
				inTime := SerialToTime(cellAt(inRow, day))
				outTime := SerialToTime(cellAt(outRow, day))
				dayOfWeek := DayOfWeek(day, month, year)
				status, label := Classify(inTime, outTime)

				current.Attendance = append(current.Attendance, Record{
					Day:          day,
					Date:         fmt.Sprintf("%d/%s/%d", day, month[:3], year),
					DayOfWeek:    dayOfWeek,
					WeekOfMonth:  WeekOfMonth(day, month, year),
					InTime:       inTime,
					OutTime:      outTime,
					WorkingHours: WorkingHours(inTime, outTime),
					Status:       status,
					StatusLabel:  label,
					TimeStatus:   ComputeTimeStatus(inTime, outTime),
					IsSunday:     dayOfWeek == "Sun",
				})
			}

			employees = append(employees, *current)
			current = nil
		}
	}

	return employees, nil
}

// cellAt returns the cell at idx or "" when the row is too short.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func matchOr(re *regexp.Regexp, s, fallback string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return fallback
}
