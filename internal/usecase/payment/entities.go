package payment

import "time"

type RecordPaymentInput struct {
	LoanID string  `json:"loan_id"`
	Amount float64 `json:"amount"`
}

type PaymentDTO struct {
	PaymentID string    `json:"payment_id"`
	LoanID    string    `json:"loan_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Month     int       `json:"month"`
}

// RecordResult reports the applied payment plus the loan snapshot after it.
type RecordResult struct {
	Payment    PaymentDTO `json:"payment"`
	LoanStatus string     `json:"loan_status"`
	PaidAmount float64    `json:"paid_amount"`
	Remaining  float64    `json:"remaining"`
}
