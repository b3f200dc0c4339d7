package loan

import "time"

type ApplyInput struct {
	LenderID     string  `json:"lender_id"`
	BorrowerID   string  `json:"borrower_id"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	TenureMonths int     `json:"tenure_months"`
	Purpose      string  `json:"purpose"`
	OfferID      string  `json:"offer_id,omitempty"`
	SuretyID     string  `json:"surety_id,omitempty"`
	SuretyName   string  `json:"surety_name,omitempty"`
}

type LoanDTO struct {
	LoanID            string     `json:"loan_id"`
	LenderID          string     `json:"lender_id"`
	BorrowerID        string     `json:"borrower_id"`
	SuretyID          string     `json:"surety_id,omitempty"`
	SuretyName        string     `json:"surety_name,omitempty"`
	OfferID           string     `json:"offer_id,omitempty"`
	Amount            float64    `json:"amount"`
	InterestRate      float64    `json:"interest_rate"`
	TenureMonths      int        `json:"tenure_months"`
	MonthlyPayment    float64    `json:"monthly_payment"`
	TotalPayable      float64    `json:"total_payable"`
	PaidAmount        float64    `json:"paid_amount"`
	Purpose           string     `json:"purpose"`
	Status            string     `json:"status"`
	ApprovedAt        *time.Time `json:"approved_at,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	NextPaymentDate   *time.Time `json:"next_payment_date,omitempty"`
	NextPaymentAmount *float64   `json:"next_payment_amount,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}
