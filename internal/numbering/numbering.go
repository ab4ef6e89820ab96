// Package numbering provides pure functions for minting sequential document
// numbers. These functions have ZERO dependencies on HTTP or database
// infrastructure; callers read the current maximum inside a transaction and
// must insert the returned number in that same transaction, otherwise two
// concurrent saves can mint the same value.
package numbering

import (
	"strconv"
	"time"
)

// ── Sequence Floors ──────────────────────────────────────────────
// Floors seed each series so numbers continue from the pre-digitisation
// paper books rather than starting at 1.

const (
	GatePassFloor  = 1000
	ReceiptFloor   = 707
	DPReceiptFloor = 712
)

// NextSimple returns the next number in a plain sequence.
// currentMax is the stored maximum for the series, or nil when the table is
// empty, in which case the sequence starts at floor+1.
func NextSimple(currentMax *int64, floor int64) int64 {
	if currentMax == nil {
		return floor + 1
	}
	return *currentMax + 1
}

// ── Financial-Year-Prefixed Sequence ─────────────────────────────
// General receipt numbers carry a two-digit financial-year prefix so they
// sort and group by FY. The Indian financial year runs April 1 – March 31:
// FY2025-26 spans Apr 2025 – Mar 2026 and yields prefix "25".

// FYPrefix returns the two-digit prefix of the financial year containing now.
// January–March belong to the financial year that started the previous April.
func FYPrefix(now time.Time) string {
	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	s := strconv.Itoa(year)
	return s[len(s)-2:]
}

// NextFY returns the next number in a financial-year-prefixed sequence.
// maxForPrefix is the maximum existing number that begins with prefix, or nil
// when no number for this FY exists yet, in which case the series starts at
// prefix followed by 00001 (e.g. "25" → 2500001). Because prefixes differ
// across years, a fresh series can never collide with the prior year's range.
func NextFY(maxForPrefix *int64, prefix string) int64 {
	if maxForPrefix != nil {
		return *maxForPrefix + 1
	}
	p, _ := strconv.ParseInt(prefix, 10, 64)
	return p*100000 + 1
}

// HasFYPrefix reports whether a receipt number belongs to the given FY series.
func HasFYPrefix(n int64, prefix string) bool {
	s := strconv.FormatInt(n, 10)
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
