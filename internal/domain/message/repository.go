package message

import "context"

type Repository interface {
	Create(ctx context.Context, m *Message) error
	// ListByLoanID returns the thread oldest first.
	ListByLoanID(ctx context.Context, loanID string) ([]Message, error)
}
