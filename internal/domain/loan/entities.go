package loan

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("loan is not pending")
	ErrNotActive         = errors.New("loan is not active")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
)

// Loan is the ledger record for one borrowing. MonthlyPayment and TotalPayable
// are derived once at application time; PaidAmount only grows and never exceeds
// TotalPayable. NextPaymentDate/NextPaymentAmount are set while active and
// cleared on completion.
type Loan struct {
	ID                uint64     `gorm:"primaryKey;column:id" json:"-"`
	LoanID            string     `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	LenderID          string     `gorm:"size:32;index:idx_loans_lender" json:"lender_id"`
	BorrowerID        string     `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	SuretyID          string     `gorm:"size:32" json:"surety_id,omitempty"`
	SuretyName        string     `gorm:"size:128" json:"surety_name,omitempty"`
	OfferID           string     `gorm:"size:32;index:idx_loans_offer" json:"offer_id,omitempty"`
	Amount            float64    `gorm:"type:decimal(18,2)" json:"amount"`
	InterestRate      float64    `gorm:"type:decimal(6,2)" json:"interest_rate"`
	TenureMonths      int        `gorm:"column:tenure_months" json:"tenure_months"`
	MonthlyPayment    float64    `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	TotalPayable      float64    `gorm:"type:decimal(18,2)" json:"total_payable"`
	PaidAmount        float64    `gorm:"type:decimal(18,2)" json:"paid_amount"`
	Purpose           string     `gorm:"type:text" json:"purpose"`
	Status            Status     `gorm:"type:enum('pending','active','rejected','completed');default:'pending';index:idx_loans_status" json:"status"`
	ApprovedAt        *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	StartDate         *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	NextPaymentDate   *time.Time `gorm:"column:next_payment_date" json:"next_payment_date,omitempty"`
	NextPaymentAmount *float64   `gorm:"column:next_payment_amount;type:decimal(18,2)" json:"next_payment_amount,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Remaining is the outstanding balance against the full payable.
func (l *Loan) Remaining() float64 { return l.TotalPayable - l.PaidAmount }

// Progress is the repaid fraction in [0, 1]; zero while TotalPayable is unset.
func (l *Loan) Progress() float64 {
	if l.TotalPayable <= 0 {
		return 0
	}
	return l.PaidAmount / l.TotalPayable
}
