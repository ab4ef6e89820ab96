package spreadsheet

import (
	"bytes"
	"reflect"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	rows := [][]string{
		{"Date", "Name", "Debit"},
		{"2023-03-15", "RAMESH KUMAR", "1500"},
		{"2023-04-01", "SITA DEVI", "250"},
	}

	data, err := WriteMatrix("Ledger", rows)
	if err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}

	got, err := ReadMatrix(bytes.NewReader(data), "Ledger")
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("round trip = %v, want %v", got, rows)
	}
}

func TestReadMatrixDefaultsToFirstSheet(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"c", "d"}}

	data, err := WriteMatrix("", rows)
	if err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}

	got, err := ReadMatrix(bytes.NewReader(data), "")
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("first-sheet read = %v, want %v", got, rows)
	}
}

func TestReadMatrixUnknownSheet(t *testing.T) {
	data, err := WriteMatrix("Sheet1", [][]string{{"x"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ReadMatrix(bytes.NewReader(data), "Nope"); err == nil {
		t.Fatal("expected error for unknown sheet name")
	}
}

func TestReadMatrixGarbage(t *testing.T) {
	if _, err := ReadMatrix(bytes.NewReader([]byte("not a workbook")), ""); err == nil {
		t.Fatal("expected error for non-workbook input")
	}
}
