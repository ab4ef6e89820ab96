// Package retention defines how long each document type is kept before the
// write path deletes it. Sweeps run as a DELETE inside the same transaction
// as the insert they follow: a failed sweep aborts the insert too, trading
// write availability for a deterministic bound on storage growth.
package retention

import (
	"strconv"
	"time"
)

// Window is a retention duration for a document type.
type Window time.Duration

// Retention windows per document type. Gate passes and both receipt books
// are operational paperwork; general receipts are accounting records and
// attendance exports are payroll evidence, so those are kept longer.
const (
	GatePasses      = Window(45 * 24 * time.Hour)
	Receipts        = Window(45 * 24 * time.Hour)
	DPReceipts      = Window(45 * 24 * time.Hour)
	AttendanceBlobs = Window(365 * 24 * time.Hour)
	GeneralReceipts = Window(2 * 365 * 24 * time.Hour)
)

// Cutoff returns the oldest date a record may carry and survive a sweep at
// time now. Rows dated strictly before the cutoff are deleted.
func (w Window) Cutoff(now time.Time) time.Time {
	return now.Add(-time.Duration(w))
}

// Interval returns the window as a PostgreSQL interval literal, for use in
// `date < NOW() - $n::interval` sweep statements.
func (w Window) Interval() string {
	days := int(time.Duration(w).Hours() / 24)
	switch days {
	case 365:
		return "1 year"
	case 730:
		return "2 years"
	default:
		return strconv.Itoa(days) + " days"
	}
}
