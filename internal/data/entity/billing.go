package entity

import "time"

// Billing is created upstream in response to a generate-bill call. At most
// one meaningful billing exists per in-progress checkout.
type Billing struct {
	BillingID     int64     `json:"billingID"`
	Booking       Booking   `json:"booking"`
	TotalAmount   float64   `json:"totalAmount"`
	BillingStatus string    `json:"billingStatus"`
	BillingDate   time.Time `json:"billingDate"`
}
