package models

import "time"

// Receipt is a payment receipt. The same shape backs two books: the plain
// receipt book and the down-payment (DP) receipt book, which differ only in
// their table and sequence floor.
type Receipt struct {
	ReceiptNo    int64     `json:"receiptNo"`
	Date         string    `json:"date"` // YYYY-MM-DD
	CustomerName string    `json:"customerName"`
	Amount       float64   `json:"amount"`
	PaymentMode  string    `json:"paymentMode"`
	HPFinancier  string    `json:"hpFinancier"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReceiptRequest holds the fields for creating or updating a receipt.
// A blank amount is accepted and recorded as zero.
type ReceiptRequest struct {
	Date         string        `json:"date"`
	CustomerName string        `json:"customerName"`
	Amount       LenientAmount `json:"amount"`
	PaymentMode  string        `json:"paymentMode"`
	HPFinancier  string        `json:"hpFinancier"`
	Model        string        `json:"model"`
}

// Validate checks the required receipt fields.
func (r *ReceiptRequest) Validate() map[string]string {
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
