package message

import (
	"errors"
	"time"
)

type Role string

const (
	RoleLender   Role = "lender"
	RoleBorrower Role = "borrower"
)

var ErrInvalidRole = errors.New("sender role must be lender or borrower")

// Message is one entry in a loan's chat thread. Append-only: no edits, no deletes.
type Message struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	MessageID  string    `gorm:"size:32;uniqueIndex:ux_messages_message_id" json:"message_id"`
	LoanID     string    `gorm:"size:32;index:idx_messages_loan" json:"loan_id"`
	SenderID   string    `gorm:"size:32" json:"sender_id"`
	SenderName string    `gorm:"size:128" json:"sender_name"`
	SenderRole Role      `gorm:"type:enum('lender','borrower')" json:"sender_role"`
	Text       string    `gorm:"type:text" json:"text"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string { return "messages" }
