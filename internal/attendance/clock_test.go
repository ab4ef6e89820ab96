package attendance

import "testing"

func TestSerialToTime(t *testing.T) {
	tests := []struct {
		cell string
		want string
	}{
		{"0.5", "12:00"},
		{"0.8125", "19:30"},
		{"0.375", "09:00"},
		{" 0.375 ", "09:00"},
		{"", "-"},
		{"nan", "-"},
		{"09:15", "09:15"}, // already formatted, passes through
		{"garbage", "garbage"},
	}

	for _, tt := range tests {
		if got := SerialToTime(tt.cell); got != tt.want {
			t.Errorf("SerialToTime(%q) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"19:30", "07:30 PM"},
		{"12:00", "12:00 PM"},
		{"00:05", "12:05 AM"},
		{"09:15", "09:15 AM"},
		{"-", "-"},
		{"", "-"},
		{"notatime", "notatime"},
	}

	for _, tt := range tests {
		if got := To12Hour(tt.in); got != tt.want {
			t.Errorf("To12Hour(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month string
		year  int
		want  int
	}{
		{"February", 2024, 29}, // leap year
		{"February", 2025, 28},
		{"March", 2025, 31},
		{"April", 2025, 30},
		{"December", 2025, 31},
		{"Smarch", 2025, 0},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.month, tt.year); got != tt.want {
			t.Errorf("DaysInMonth(%q, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		day   int
		month string
		year  int
		want  string
	}{
		{29, "February", 2024, "Thu"},
		{1, "March", 2025, "Sat"},
		{2, "March", 2025, "Sun"},
		{15, "August", 2025, "Fri"},
	}

	for _, tt := range tests {
		if got := DayOfWeek(tt.day, tt.month, tt.year); got != tt.want {
			t.Errorf("DayOfWeek(%d, %q, %d) = %q, want %q", tt.day, tt.month, tt.year, got, tt.want)
		}
	}
}

func TestWeekOfMonth(t *testing.T) {
	// March 2025 starts on a Saturday, so day 2 (Sunday) opens week 2.
	tests := []struct {
		day  int
		want int
	}{
		{1, 1},
		{2, 2},
		{8, 2},
		{9, 3},
		{31, 6},
	}

	for _, tt := range tests {
		if got := WeekOfMonth(tt.day, "March", 2025); got != tt.want {
			t.Errorf("WeekOfMonth(%d, March 2025) = %d, want %d", tt.day, got, tt.want)
		}
	}
}

func TestWorkingHours(t *testing.T) {
	tests := []struct {
		in, out string
		want    string
	}{
		{"09:00", "18:00", "09:00"},
		{"22:00", "02:00", "04:00"}, // overnight shift wraps
		{"09:00", "19:30", "10:30"},
		{"-", "18:00", "-"},
		{"09:00", "-", "-"},
		{"nan", "nan", "-"},
	}

	for _, tt := range tests {
		if got := WorkingHours(tt.in, tt.out); got != tt.want {
			t.Errorf("WorkingHours(%q, %q) = %q, want %q", tt.in, tt.out, got, tt.want)
		}
	}
}
