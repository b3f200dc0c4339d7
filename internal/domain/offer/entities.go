package offer

import (
	"errors"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var (
	ErrNotFound            = errors.New("offer not found")
	ErrNotOwner            = errors.New("offer belongs to another lender")
	ErrConstraintViolation = errors.New("application violates offer constraints")
)

// LoanOffer is a lender-published template borrowers apply against.
// Immutable once created except Status.
type LoanOffer struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	OfferID      string    `gorm:"size:32;uniqueIndex:ux_offers_offer_id" json:"offer_id"`
	LenderID     string    `gorm:"size:32;index:idx_offers_lender" json:"lender_id"`
	LenderName   string    `gorm:"size:128" json:"lender_name"`
	Amount       float64   `gorm:"type:decimal(18,2)" json:"amount"`
	InterestRate float64   `gorm:"type:decimal(6,2)" json:"interest_rate"`
	MinTenure    int       `gorm:"column:min_tenure" json:"min_tenure"`
	MaxTenure    int       `gorm:"column:max_tenure" json:"max_tenure"`
	Description  string    `gorm:"type:text" json:"description"`
	Requirements string    `gorm:"type:text" json:"requirements"`
	Status       Status    `gorm:"type:enum('active','inactive');default:'active';index:idx_offers_status" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanOffer) TableName() string { return "loan_offers" }
