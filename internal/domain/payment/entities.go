package payment

import "time"

type Type string

const (
	// TypeFull settles the remaining balance.
	TypeFull Type = "full"
	// TypeMonthly covers at least one installment.
	TypeMonthly Type = "monthly"
	// TypePartial is anything below a full installment.
	TypePartial Type = "partial"
)

type Status string

const StatusCompleted Status = "completed"

// Payment is an append-only ledger entry. Type and Month are derived when the
// payment is applied and never edited; Month is the 1-based installment period
// the payment primarily covers.
type Payment struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string    `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID    string    `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	Amount    float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Date      time.Time `gorm:"column:paid_at" json:"date"`
	Type      Type      `gorm:"type:enum('full','monthly','partial')" json:"type"`
	Status    Status    `gorm:"type:enum('completed');default:'completed'" json:"status"`
	Month     int       `gorm:"column:month" json:"month"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
