package retention

import (
	"testing"
	"time"
)

func TestCutoff(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	want := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	if got := GatePasses.Cutoff(now); !got.Equal(want) {
		t.Errorf("Cutoff = %v, want %v", got, want)
	}
}

// Document books are swept by the date the document carries, not by when the
// row was inserted, so a backdated entry saved today still ages out.
func TestCutoffByDocumentDate(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	cutoff := GatePasses.Cutoff(now).Format("2006-01-02")

	tests := []struct {
		name    string
		ageDays int
		swept   bool
	}{
		{"46 days old is swept", 46, true},
		{"44 days old survives", 44, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docDate := now.AddDate(0, 0, -tt.ageDays).Format("2006-01-02")
			if got := docDate < cutoff; got != tt.swept {
				t.Errorf("date %s vs cutoff %s: swept = %v, want %v", docDate, cutoff, got, tt.swept)
			}
		})
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		window Window
		want   string
	}{
		{GatePasses, "45 days"},
		{Receipts, "45 days"},
		{DPReceipts, "45 days"},
		{AttendanceBlobs, "1 year"},
		{GeneralReceipts, "2 years"},
	}

	for _, tt := range tests {
		if got := tt.window.Interval(); got != tt.want {
			t.Errorf("Interval() = %q, want %q", got, tt.want)
		}
	}
}
