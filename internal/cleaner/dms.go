package cleaner

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DMSResult is the cleaned three-column ledger plus a count of names that
// actually had a code stripped.
type DMSResult struct {
	Rows    [][]string `json:"-"`
	Cleaned int        `json:"cleanedRows"`
}

var (
	dateHeader  = regexp.MustCompile(`(?i)date`)
	nameHeader  = regexp.MustCompile(`(?i)particular`)
	debitHeader = regexp.MustCompile(`(?i)debit`)
)

// CleanDMSLedger reduces a DMS day-book export to a Date/Name/Debit sheet
// with account codes stripped from the names.
//
// Exports start with a variable number of junk banner rows, so the real
// header is located by content: the first row mentioning date, particulars
// and debit together. Serial-number dates are rendered as YYYY-MM-DD; rows
// without a name are dropped.
func CleanDMSLedger(rows [][]string) (*DMSResult, error) {
	headerIdx := -1
	for i, row := range rows {
		rowStr := strings.ToLower(strings.Join(row, " "))
		if strings.Contains(rowStr, "date") &&
			strings.Contains(rowStr, "particular") &&
			strings.Contains(rowStr, "debit") {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, fmt.Errorf("could not find header row (Date / Particulars / Debit)")
	}

	header := rows[headerIdx]
	dateCol := findColumn(header, dateHeader)
	nameCol := findColumn(header, nameHeader)
	debitCol := findColumn(header, debitHeader)
	if dateCol == -1 || nameCol == -1 || debitCol == -1 {
		return nil, fmt.Errorf("found header row but could not detect Date / Particulars / Debit columns")
	}

	res := &DMSResult{Rows: [][]string{{"Date", "Name", "Debit"}}}

	for _, row := range rows[headerIdx+1:] {
		if len(row) == 0 {
			continue
		}
		rawName := cellOrEmpty(row, nameCol)
		if rawName == "" {
			continue
		}

		date := normalizeSerialDate(cellOrEmpty(row, dateCol))
		name := StripAccountCode(rawName)
		if name != rawName {
			res.Cleaned++
		}

		res.Rows = append(res.Rows, []string{date, name, cellOrEmpty(row, debitCol)})
	}

	return res, nil
}

// normalizeSerialDate converts a spreadsheet day-serial (days since
// 1899-12-30) into YYYY-MM-DD. Non-numeric values pass through untouched.
func normalizeSerialDate(cell string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || v <= 0 {
		return cell
	}
	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	return epoch.AddDate(0, 0, int(math.Floor(v))).Format("2006-01-02")
}

func findColumn(header []string, re *regexp.Regexp) int {
	for i, h := range header {
		if re.MatchString(h) {
			return i
		}
	}
	return -1
}

func cellOrEmpty(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
