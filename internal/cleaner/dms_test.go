package cleaner

import (
	"reflect"
	"testing"
)

func TestCleanDMSLedger(t *testing.T) {
	rows := [][]string{
		{"SHREE MOTORS PVT LTD"},
		{"Day Book Report"},
		{},
		{"Sr", "Date", "Particulars", "Vch", "Debit Amt", "Credit Amt"},
		{"1", "45000", "RAMESH KUMAR (10234)", "PMT", "1500", ""},
		{"2", "2023-04-01", "SITA DEVI", "PMT", "250", ""},
		{"3", "45001", "", "PMT", "999", ""}, // nameless rows are dropped
		{},
	}

	res, err := CleanDMSLedger(rows)
	if err != nil {
		t.Fatalf("CleanDMSLedger: %v", err)
	}

	want := [][]string{
		{"Date", "Name", "Debit"},
		{"2023-03-15", "RAMESH KUMAR", "1500"}, // serial 45000
		{"2023-04-01", "SITA DEVI", "250"},     // text date passes through
	}
	if !reflect.DeepEqual(res.Rows, want) {
		t.Errorf("Rows = %v, want %v", res.Rows, want)
	}
	if res.Cleaned != 1 {
		t.Errorf("Cleaned = %d, want 1", res.Cleaned)
	}
}

func TestCleanDMSLedgerMissingHeader(t *testing.T) {
	rows := [][]string{
		{"SHREE MOTORS PVT LTD"},
		{"totally unrelated content"},
	}
	if _, err := CleanDMSLedger(rows); err == nil {
		t.Fatal("expected error when no header row exists")
	}
}

func TestNormalizeSerialDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"45000", "2023-03-15"},
		{"44927", "2023-01-01"},
		{"2023-05-05", "2023-05-05"}, // already a date
		{"", ""},
		{"-5", "-5"}, // negative serials pass through
	}

	for _, tt := range tests {
		if got := normalizeSerialDate(tt.in); got != tt.want {
			t.Errorf("normalizeSerialDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
