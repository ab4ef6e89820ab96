// Package cleaner holds the two spreadsheet-reconciliation utilities: filling
// customer names into VAHAN portal exports from the vehicle master, and
// stripping account codes out of DMS ledger exports. Both operate on plain
// row matrices and return new matrices; workbook I/O happens elsewhere.
package cleaner

import (
	"regexp"
	"strings"
)

// VAHAN export column layout (0-based): the chassis number sits in column 6
// and the owner-name column to fill is column 12.
const (
	vahanChassisCol = 6
	vahanNameCol    = 12
)

// VahanResult reports what FillVahanNames changed.
type VahanResult struct {
	Rows    [][]string `json:"-"`
	Total   int        `json:"totalRows"`   // rows with a chassis number
	Updated int        `json:"updatedRows"` // rows whose name was filled
}

// CleanChassis normalizes a chassis number for matching: whitespace removed,
// uppercased. VAHAN and dealer systems disagree on spacing and case.
func CleanChassis(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// BuildChassisIndex maps cleaned chassis numbers to customer names from
// vehicle-master rows of the form [chassis, name, ...]. Rows missing either
// field are skipped.
func BuildChassisIndex(rows [][]string) map[string]string {
	index := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		chassis := CleanChassis(row[0])
		name := strings.TrimSpace(row[1])
		if chassis != "" && name != "" {
			index[chassis] = name
		}
	}
	return index
}

// FillVahanNames writes customer names into the VAHAN export wherever the
// chassis column matches the index. Row 0 is the export's header and is left
// alone. The input matrix is modified in place and returned with counts.
func FillVahanNames(rows [][]string, chassisToName map[string]string) VahanResult {
	res := VahanResult{Rows: rows}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if vahanChassisCol >= len(row) {
			continue
		}
		chassis := CleanChassis(row[vahanChassisCol])
		if chassis == "" {
			continue
		}
		res.Total++

		name, ok := chassisToName[chassis]
		if !ok {
			continue
		}
		// Pad short rows so the name column exists.
		for len(row) <= vahanNameCol {
			row = append(row, "")
		}
		row[vahanNameCol] = name
		rows[i] = row
		res.Updated++
	}

	return res
}

// accountCode matches the numeric DMS account codes appended to names,
// e.g. "RAMESH KUMAR (10234)".
var accountCode = regexp.MustCompile(`\(\d+\)`)

// StripAccountCode removes "(12345)" style codes from a ledger name.
func StripAccountCode(name string) string {
	return strings.TrimSpace(accountCode.ReplaceAllString(name, ""))
}
