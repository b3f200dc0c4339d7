package messagemock

import (
	"context"

	domain "peerlend-backend/internal/domain/message"
)

// Repo is a function-backed mock that satisfies message.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, m *domain.Message) error
	ListByLoanIDFn func(ctx context.Context, loanID string) ([]domain.Message, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, msg *domain.Message) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, msg)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Message, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
