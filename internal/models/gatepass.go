package models

import "time"

// GatePass is a vehicle delivery gate pass. pass_no is the primary identity,
// minted from the shared sequence at save time.
type GatePass struct {
	PassNo        int64     `json:"passNo"`
	Date          string    `json:"date"` // YYYY-MM-DD
	CustomerName  string    `json:"customerName"`
	Model         string    `json:"model"`
	Color         string    `json:"color"`
	RegnNo        string    `json:"regnNo"`
	ChassisNo     string    `json:"chassisNo"`
	SalesBillNo   string    `json:"salesBillNo"`
	SparesBillNo  string    `json:"sparesBillNo"`
	ServiceBillNo string    `json:"serviceBillNo"`
	Narration     string    `json:"narration"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GatePassRequest holds the fields for creating or updating a gate pass.
// The number is never client-supplied on create.
type GatePassRequest struct {
	Date          string `json:"date"`
	CustomerName  string `json:"customerName"`
	Model         string `json:"model"`
	Color         string `json:"color"`
	RegnNo        string `json:"regnNo"`
	ChassisNo     string `json:"chassisNo"`
	SalesBillNo   string `json:"salesBillNo"`
	SparesBillNo  string `json:"sparesBillNo"`
	ServiceBillNo string `json:"serviceBillNo"`
	Narration     string `json:"narration"`
}

// Validate checks the required gate pass fields.
func (r *GatePassRequest) Validate() map[string]string {
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
