package models

// Vehicle is one row of the vehicle master (the Form 22 register). The
// register is replaced wholesale on every upload, so there is no update
// path, only search.
type Vehicle struct {
	ID           int64  `json:"id"`
	ChassisNo    string `json:"chassisNo"` // cleaned: no whitespace, uppercase
	CustomerName string `json:"customerName"`
	Model        string `json:"model"`
	Color        string `json:"color"`
}
