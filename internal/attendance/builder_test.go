package attendance

import (
	"reflect"
	"testing"
)

// marchSheet builds a March 2025 export for one employee: 09:00–19:00 every
// day, except day 2 (no punches) and day 3 (clocked in at 09:25).
func marchSheet() [][]string {
	in := make([]string, 32)
	out := make([]string, 32)
	in[0] = "In_Time"
	out[0] = "Out_Time"
	for d := 1; d <= 31; d++ {
		in[d] = "0.375"      // 09:00
		out[d] = "0.7916667" // 19:00
	}
	in[2], out[2] = "", ""
	in[3] = "0.3923611" // 09:25

	return [][]string{
		{"Monthly Attendance Report"},
		{"Period: 01/03/2025"},
		{"Employee ID : 42; Employee Name : Ravi Kumar; Designation : Mechanic; Department : Service"},
		in,
		out,
	}
}

func TestParseSheet(t *testing.T) {
	employees, err := ParseSheet(marchSheet(), "March", 2025)
	if err != nil {
		t.Fatalf("ParseSheet: %v", err)
	}
	if len(employees) != 1 {
		t.Fatalf("got %d employees, want 1", len(employees))
	}

	emp := employees[0]
	if emp.ID != "42" || emp.Name != "Ravi Kumar" ||
		emp.Designation != "Mechanic" || emp.Department != "Service" {
		t.Errorf("metadata = %q/%q/%q/%q", emp.ID, emp.Name, emp.Designation, emp.Department)
	}

	if len(emp.Attendance) != 31 {
		t.Fatalf("got %d records, want 31", len(emp.Attendance))
	}
	for i, rec := range emp.Attendance {
		if rec.Day != i+1 {
			t.Fatalf("record %d has day %d, want %d", i, rec.Day, i+1)
		}
	}

	day1 := emp.Attendance[0]
	if day1.Date != "1/Mar/2025" {
		t.Errorf("day 1 date = %q", day1.Date)
	}
	if day1.InTime != "09:00" || day1.OutTime != "19:00" {
		t.Errorf("day 1 punches = %q/%q", day1.InTime, day1.OutTime)
	}
	if day1.Status != StatusPresent || day1.WorkingHours != "10:00" {
		t.Errorf("day 1 status = %q hours = %q", day1.Status, day1.WorkingHours)
	}

	day2 := emp.Attendance[1]
	if day2.Status != StatusAbsent {
		t.Errorf("day 2 status = %q, want %q", day2.Status, StatusAbsent)
	}
	if !day2.IsSunday {
		t.Error("March 2, 2025 should be flagged as a Sunday")
	}

	day3 := emp.Attendance[2]
	if day3.Status != StatusHalfDay {
		t.Errorf("day 3 status = %q, want %q", day3.Status, StatusHalfDay)
	}
	if day3.TimeStatus == nil || day3.TimeStatus.Late != "0h 25m" {
		t.Errorf("day 3 time status = %+v, want late 0h 25m", day3.TimeStatus)
	}
}

func TestParseSheetIdempotent(t *testing.T) {
	rows := marchSheet()
	first, err := ParseSheet(rows, "March", 2025)
	if err != nil {
		t.Fatal(err)
	}
	second, err := ParseSheet(rows, "March", 2025)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("re-parsing the same matrix produced different employees")
	}
}

func TestParseSheetLeapFebruary(t *testing.T) {
	in := make([]string, 30)
	out := make([]string, 30)
	in[0] = "in_time"
	out[0] = "out_time"

	rows := [][]string{
		{"Employee ID : 7; Employee Name : Sita"},
		in,
		out,
	}

	employees, err := ParseSheet(rows, "February", 2024)
	if err != nil {
		t.Fatal(err)
	}
	if len(employees) != 1 {
		t.Fatalf("got %d employees, want 1", len(employees))
	}

	att := employees[0].Attendance
	if len(att) != 29 {
		t.Fatalf("got %d records, want 29", len(att))
	}
	if att[28].DayOfWeek != "Thu" {
		t.Errorf("Feb 29, 2024 weekday = %q, want Thu", att[28].DayOfWeek)
	}
	for _, rec := range att {
		if rec.Status != StatusAbsent {
			t.Fatalf("day %d with no punches classified %q", rec.Day, rec.Status)
		}
	}
}

func TestParseSheetDefaults(t *testing.T) {
	rows := [][]string{
		{"Employee ID"}, // label with no parseable fields
		{"in_time"},
		{},
	}

	employees, err := ParseSheet(rows, "April", 2025)
	if err != nil {
		t.Fatal(err)
	}
	if len(employees) != 1 {
		t.Fatalf("got %d employees, want 1", len(employees))
	}
	if employees[0].ID != "Unknown" || employees[0].Name != "Unknown" {
		t.Errorf("defaults = %q/%q, want Unknown/Unknown", employees[0].ID, employees[0].Name)
	}
	if employees[0].Designation != "" || employees[0].Department != "" {
		t.Errorf("designation/department should default to empty")
	}
}

func TestParseSheetUnknownMonth(t *testing.T) {
	if _, err := ParseSheet(marchSheet(), "Smarch", 2025); err == nil {
		t.Fatal("expected error for unknown month")
	}
}

func TestParseSheetNoEmployeeBlocks(t *testing.T) {
	rows := [][]string{
		{"just a header"},
		{"in_time"}, // punch row with no preceding employee block
	}
	employees, err := ParseSheet(rows, "March", 2025)
	if err != nil {
		t.Fatal(err)
	}
	if len(employees) != 0 {
		t.Fatalf("got %d employees, want 0", len(employees))
	}
}

func TestComputeStats(t *testing.T) {
	employees, err := ParseSheet(marchSheet(), "March", 2025)
	if err != nil {
		t.Fatal(err)
	}
	stats := ComputeStats(&employees[0])

	if stats.TotalDays != 31 {
		t.Errorf("TotalDays = %d, want 31", stats.TotalDays)
	}
	if stats.Absent != 1 {
		t.Errorf("Absent = %d, want 1", stats.Absent)
	}
	if stats.HalfDay != 1 {
		t.Errorf("HalfDay = %d, want 1", stats.HalfDay)
	}
	// Present and half days both count toward attendance.
	if stats.TotalPresent != 30 {
		t.Errorf("TotalPresent = %d, want 30", stats.TotalPresent)
	}
	if stats.TotalPresent+stats.Absent != stats.TotalDays {
		t.Errorf("TotalPresent(%d) + Absent(%d) != TotalDays(%d)",
			stats.TotalPresent, stats.Absent, stats.TotalDays)
	}
	if stats.Late != 1 {
		t.Errorf("Late = %d, want 1", stats.Late)
	}
	if stats.OnTime != 29 {
		t.Errorf("OnTime = %d, want 29", stats.OnTime)
	}
	if stats.EarlyLeave != 0 {
		t.Errorf("EarlyLeave = %d, want 0", stats.EarlyLeave)
	}
}
