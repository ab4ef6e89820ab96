// Package attendance reconstructs structured daily attendance records from
// loosely-structured biometric spreadsheet exports. Everything here is a pure
// function over an in-memory row matrix; workbook I/O lives in the
// spreadsheet package and persistence in the handlers.
package attendance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// monthIndex maps full English month names to time.Month.
var monthIndex = map[string]time.Month{
	"January": time.January, "February": time.February, "March": time.March,
	"April": time.April, "May": time.May, "June": time.June,
	"July": time.July, "August": time.August, "September": time.September,
	"October": time.October, "November": time.November, "December": time.December,
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// SerialToTime normalizes a raw spreadsheet cell into a "HH:MM" string.
// Biometric exports store times as day-fraction serials (0.5 = noon); those
// arrive here as numeric strings when the sheet is read with raw cell values.
// Text cells are trimmed and passed through; empty or "nan" cells become "-".
func SerialToTime(cell string) string {
	s := strings.TrimSpace(cell)
	if s == "" || s == "nan" {
		return "-"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	total := int(math.Round(v * 24 * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// To12Hour converts a 24-hour "HH:MM" string to "hh:mm AM/PM" for display.
// "-" passes through and anything unparseable is returned unchanged.
func To12Hour(time24 string) string {
	if time24 == "" || time24 == "-" || time24 == "nan" {
		return "-"
	}
	h, m, ok := splitClock(time24)
	if !ok {
		return time24
	}
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, period)
}

// DaysInMonth returns the number of calendar days in the named month.
// Day 0 of the following month is its last day, which handles leap years.
func DaysInMonth(month string, year int) int {
	m, ok := monthIndex[month]
	if !ok {
		return 0
	}
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayOfWeek returns the 3-letter weekday abbreviation for a day of the month.
func DayOfWeek(day int, month string, year int) string {
	m, ok := monthIndex[month]
	if !ok {
		return ""
	}
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC).Format("Mon")
}

// WeekOfMonth returns the 1-based week index under the "week starts Sunday,
// week 1 contains the 1st" convention.
func WeekOfMonth(day int, month string, year int) int {
	m, ok := monthIndex[month]
	if !ok {
		return 0
	}
	firstWeekday := int(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC).Weekday()) // 0 = Sun
	pastDays := day - 1
	return int(math.Ceil(float64(pastDays+firstWeekday+1) / 7.0))
}

// WorkingHours returns the elapsed "HH:MM" between in and out times, or "-"
// when either side is missing. An out time numerically before the in time is
// treated as an overnight shift and wraps by 24 hours.
func WorkingHours(inTime, outTime string) string {
	if isMissing(inTime) || isMissing(outTime) {
		return "-"
	}
	inH, inM, inOK := splitClock(inTime)
	outH, outM, outOK := splitClock(outTime)
	if !inOK || !outOK {
		return "-"
	}

	total := outH*60 + outM - (inH*60 + inM)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// splitClock parses "HH:MM" into hour and minute components.
func splitClock(s string) (h, m int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errH != nil || errM != nil {
		return 0, 0, false
	}
	return h, m, true
}

func isMissing(s string) bool {
	return s == "" || s == "-" || s == "nan"
}
