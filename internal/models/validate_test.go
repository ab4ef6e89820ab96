package models

import "testing"

func TestGatePassRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     GatePassRequest
		wantKey string
	}{
		{"valid", GatePassRequest{Date: "2025-06-15", CustomerName: "Ravi"}, ""},
		{"missing date", GatePassRequest{CustomerName: "Ravi"}, "date"},
		{"malformed date", GatePassRequest{Date: "15/06/2025", CustomerName: "Ravi"}, "date"},
		{"impossible date", GatePassRequest{Date: "2025-02-30", CustomerName: "Ravi"}, "date"},
		{"missing customer", GatePassRequest{Date: "2025-06-15"}, "customerName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if tt.wantKey == "" {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if _, ok := errs[tt.wantKey]; !ok {
				t.Errorf("Validate() = %v, want error for %q", errs, tt.wantKey)
			}
		})
	}
}

func TestReceiptRequestValidateDate(t *testing.T) {
	req := ReceiptRequest{Date: "June 15", CustomerName: "Sita"}
	if errs := req.Validate(); errs["date"] == "" {
		t.Errorf("Validate() = %v, want date format error", errs)
	}

	req.Date = "2025-06-15"
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}

func TestGeneralReceiptRequestValidate(t *testing.T) {
	req := GeneralReceiptRequest{ReceiptNo: 2500001, Date: "2025-06-15", CustomerName: "Ravi"}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}

	req.ReceiptNo = 0
	req.Date = "junk"
	errs := req.Validate()
	if errs["receiptNo"] == "" {
		t.Errorf("Validate() = %v, want receiptNo error", errs)
	}
	if errs["date"] == "" {
		t.Errorf("Validate() = %v, want date format error", errs)
	}
}

func TestGeneralReceiptUpdateValidate(t *testing.T) {
	upd := GeneralReceiptUpdate{Date: "2025-13-01", CustomerName: "Ravi"}
	if errs := upd.Validate(); errs["date"] == "" {
		t.Errorf("Validate() = %v, want date format error", errs)
	}

	upd.Date = "2025-06-15"
	if errs := upd.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors", errs)
	}
}
