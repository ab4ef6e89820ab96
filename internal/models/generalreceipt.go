package models

import "time"

// GeneralReceipt is an accounting receipt whose number carries a two-digit
// financial-year prefix (e.g. 2500001 for FY2025-26). Unlike the other
// books, the client fetches the next number first and sends it back with the
// save, so an edit form can show the number before committing.
type GeneralReceipt struct {
	ReceiptNo    int64     `json:"receiptNo"`
	Date         string    `json:"date"` // YYYY-MM-DD
	CustomerName string    `json:"customerName"`
	Mobile       string    `json:"mobile"`
	GSTNo        string    `json:"gstNo"`
	FileNo       string    `json:"fileNo"`
	HPFinancier  string    `json:"hpFinancier"`
	Model        string    `json:"model"`
	Amount       float64   `json:"amount"`
	PaymentType  string    `json:"paymentType"`
	PaymentMode  string    `json:"paymentMode"`
	PaymentDate  string    `json:"paymentDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GeneralReceiptRequest holds the fields for creating a general receipt.
type GeneralReceiptRequest struct {
	ReceiptNo    int64         `json:"receiptNo"`
	Date         string        `json:"date"`
	CustomerName string        `json:"customerName"`
	Mobile       string        `json:"mobile"`
	GSTNo        string        `json:"gstNo"`
	FileNo       string        `json:"fileNo"`
	HPFinancier  string        `json:"hpFinancier"`
	Model        string        `json:"model"`
	Amount       LenientAmount `json:"amount"`
	PaymentType  string        `json:"paymentType"`
	PaymentMode  string        `json:"paymentMode"`
	PaymentDate  string        `json:"paymentDate"`
}

// Validate checks the required general receipt fields.
func (r *GeneralReceiptRequest) Validate() map[string]string {
	errors := map[string]string{}

	if r.ReceiptNo <= 0 {
		errors["receiptNo"] = "Receipt number is required"
	}
	if r.Date == "" {
		errors["date"] = "Date is required"
	} else if !isISODate(r.Date) {
		errors["date"] = "Date must be in YYYY-MM-DD format"
	}
	if r.CustomerName == "" {
		errors["customerName"] = "Customer name is required"
	}

	return errors
}

// GeneralReceiptUpdate holds the editable fields for an update-by-number.
// The receipt number itself is immutable once minted.
type GeneralReceiptUpdate struct {
	Date         string        `json:"date"`
	CustomerName string        `json:"customerName"`
	Mobile       string        `json:"mobile"`
	GSTNo        string        `json:"gstNo"`
	FileNo       string        `json:"fileNo"`
	HPFinancier  string        `json:"hpFinancier"`
	Model        string        `json:"model"`
	Amount       LenientAmount `json:"amount"`
	PaymentType  string        `json:"paymentType"`
	PaymentMode  string        `json:"paymentMode"`
	PaymentDate  string        `json:"paymentDate"`
}

// Validate checks the editable general receipt fields.
func (r *GeneralReceiptUpdate) Validate() map[string]string {
	errors := map[string]string{}

	if r.Date == "" {
		errors["date"] = "Date is required"
	} else if !isISODate(r.Date) {
		errors["date"] = "Date must be in YYYY-MM-DD format"
	}
	if r.CustomerName == "" {
		errors["customerName"] = "Customer name is required"
	}

	return errors
}
