package attendance

import "fmt"

// Attendance status codes as shown on the dashboard.
const (
	StatusPresent = "P"
	StatusAbsent  = "A"
	StatusHalfDay = "HLF"
)

// Shift timing in minutes since midnight. The nominal day runs 9:00–19:00,
// but a grace window applies on both ends: arriving up to 9:20 or leaving
// from 18:50 still counts as a full day. Lateness and earliness are measured
// against the nominal times, not the thresholds.
const (
	nominalStart   = 9 * 60     // 9:00
	nominalEnd     = 19 * 60    // 19:00
	lateThreshold  = 9*60 + 20  // 9:20
	earlyThreshold = 18*60 + 50 // 18:50
	halfDayMinutes = 4 * 60     // under 4h worked is a half day
)

// TimeStatus carries the human-readable lateness/earliness of a day's
// punches. Nil fields mean the corresponding side was within grace.
type TimeStatus struct {
	Late  string `json:"late,omitempty"`  // e.g. "1h 5m" past 9:00
	Early string `json:"early,omitempty"` // e.g. "0h 40m" before 19:00
}

// Classify decides the attendance status for a day from its in/out punches.
// A missing in time is an absence; a missing out time, a late arrival, an
// early departure or under 4 hours worked all reduce the day to a half day.
func Classify(inTime, outTime string) (status, label string) {
	if isMissing(inTime) {
		return StatusAbsent, "Absent"
	}
	if isMissing(outTime) {
		return StatusHalfDay, "Half Day"
	}

	inMin, okIn := clockMinutes(inTime)
	outMin, okOut := clockMinutes(outTime)
	if !okIn || !okOut {
		return StatusHalfDay, "Half Day"
	}

	if inMin > lateThreshold || outMin < earlyThreshold {
		return StatusHalfDay, "Half Day"
	}
	if outMin-inMin < halfDayMinutes {
		return StatusHalfDay, "Half Day"
	}
	return StatusPresent, "Present"
}

// ComputeTimeStatus measures how late an arrival or how early a departure
// was. Lateness is counted from the 9:00 nominal start but only reported
// past the 9:20 grace threshold; earliness from the 19:00 nominal end but
// only reported before 18:50. Returns nil when both sides are within grace
// or the in time is missing.
func ComputeTimeStatus(inTime, outTime string) *TimeStatus {
	if isMissing(inTime) {
		return nil
	}
	inMin, ok := clockMinutes(inTime)
	if !ok {
		return nil
	}

	var ts TimeStatus
	if inMin > lateThreshold {
		ts.Late = formatDelta(inMin - nominalStart)
	}

	if !isMissing(outTime) {
		if outMin, ok := clockMinutes(outTime); ok && outMin < earlyThreshold {
			ts.Early = formatDelta(nominalEnd - outMin)
		}
	}

	if ts.Late == "" && ts.Early == "" {
		return nil
	}
	return &ts
}

// clockMinutes converts "HH:MM" to minutes since midnight.
func clockMinutes(s string) (int, bool) {
	h, m, ok := splitClock(s)
	if !ok {
		return 0, false
	}
	return h*60 + m, true
}

func formatDelta(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
