package attendance

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Period is the reporting month and year of an attendance export.
type Period struct {
	Month string `json:"month"` // full English month name
	Year  int    `json:"year"`
}

// datePattern matches D/M/YYYY-shaped tokens with / or - separators.
// Group 2 is the month, group 3 the year (exports use day-first dates).
var datePattern = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)

// periodScanWindow bounds how many header rows are searched. Payroll exports
// put the period line near the top; rows beyond that are attendance data.
const periodScanWindow = 20

// DetectPeriod locates the reporting month and year in the first rows of a
// spreadsheet. Rows containing the literal "Period" label are authoritative
// and searched first; other dates nearby (run or print timestamps) are a less
// reliable fallback. When nothing matches, the current month and year at now
// are assumed.
func DetectPeriod(rows [][]string, now time.Time) Period {
	limit := len(rows)
	if limit > periodScanWindow {
		limit = periodScanWindow
	}

	// Pass 1: rows carrying the "Period" label.
	for i := 0; i < limit; i++ {
		rowStr := strings.Join(rows[i], " ")
		if !strings.Contains(rowStr, "Period") {
			continue
		}
		if p, ok := extractPeriod(rowStr); ok {
			return p
		}
	}

	// Pass 2: any date-shaped token in the same window.
	for i := 0; i < limit; i++ {
		if p, ok := extractPeriod(strings.Join(rows[i], " ")); ok {
			return p
		}
	}

	return Period{Month: monthNames[now.Month()-1], Year: now.Year()}
}

// extractPeriod pulls the first date token with a valid month out of a row.
// Candidates with a month outside 1–12 are skipped, not fatal.
func extractPeriod(rowStr string) (Period, bool) {
	for _, match := range datePattern.FindAllStringSubmatch(rowStr, -1) {
		m, _ := strconv.Atoi(match[2])
		if m < 1 || m > 12 {
			continue
		}
		y, _ := strconv.Atoi(match[3])
		return Period{Month: monthNames[m-1], Year: y}, true
	}
	return Period{}, false
}
