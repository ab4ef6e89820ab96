package models

import "time"

// isISODate reports whether s is a calendar date in YYYY-MM-DD form. Month
// filters and retention sweeps compare these values, so the shape is enforced
// at validation time.
func isISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
