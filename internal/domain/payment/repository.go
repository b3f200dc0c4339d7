package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByLoanID returns payments oldest first.
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
}
