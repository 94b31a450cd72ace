package models

import "time"

// PaymentRequest describes a charge for the contents of a cart.
type PaymentRequest struct {
	UserID      string
	AmountCents int64
	Currency    string
	Description string
	Metadata    map[string]string
}

// Invoice is returned once a payment intent has been created for a cart.
type Invoice struct {
	InvoiceID    string    `json:"invoiceId"`
	UserID       string    `json:"userId"`
	Amount       string    `json:"amount"` // e.g. "1250.00"
	Currency     string    `json:"currency"`
	PaymentID    string    `json:"paymentId"`
	ClientSecret string    `json:"clientSecret,omitempty"`
	Status       string    `json:"status"`
	Items        []Service `json:"items"`
	CreatedAt    time.Time `json:"createdAt"`
}
