package models

import (
	"encoding/json"
	"time"
)

// AttendanceMonth is one stored biometric export, keyed by (month, year).
// Data holds the raw parsed row matrix so the dashboard can re-render a past
// month without the original file. Re-uploading the same month replaces the
// blob wholesale (delete then insert), never merges.
type AttendanceMonth struct {
	ID        string          `json:"id"`
	Month     string          `json:"month"` // full English month name
	Year      int             `json:"year"`
	FileName  string          `json:"fileName"`
	Data      json.RawMessage `json:"data"` // [][]string row matrix
	CreatedAt time.Time       `json:"createdAt"`
}

// AttendanceMonthKey identifies a stored export in month lists.
type AttendanceMonthKey struct {
	Month string `json:"month"`
	Year  int    `json:"year"`
}
