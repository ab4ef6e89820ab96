package attendance

// Stats aggregates one employee's month. Always recomputed from the
// attendance sequence, never stored.
type Stats struct {
	TotalPresent int `json:"totalPresent"` // Present + Half Day
	OnTime       int `json:"onTime"`
	HalfDay      int `json:"halfDay"`
	Absent       int `json:"absent"`
	Late         int `json:"late"`
	EarlyLeave   int `json:"earlyLeave"`
	TotalDays    int `json:"totalDays"`
}

// ComputeStats tallies an employee's attendance sequence.
func ComputeStats(emp *Employee) Stats {
	stats := Stats{TotalDays: len(emp.Attendance)}

	for _, rec := range emp.Attendance {
		switch rec.Status {
		case StatusPresent:
			stats.TotalPresent++
			if rec.TimeStatus == nil || rec.TimeStatus.Late == "" {
				stats.OnTime++
			}
		case StatusAbsent:
			stats.Absent++
		case StatusHalfDay:
			stats.HalfDay++
			stats.TotalPresent++
		}
		if rec.TimeStatus != nil {
			if rec.TimeStatus.Late != "" {
				stats.Late++
			}
			if rec.TimeStatus.Early != "" {
				stats.EarlyLeave++
			}
		}
	}

	return stats
}
