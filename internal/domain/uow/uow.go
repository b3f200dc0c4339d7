package uow

import (
	"context"

	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/offer"
	"peerlend-backend/internal/domain/payment"
)

type Repos struct {
	Loans    loan.Repository
	Offers   offer.Repository
	Payments payment.Repository
}

// UnitOfWork scopes repository work to a single transaction. Loan and offer
// variants lock the target row up-front so per-entity mutations serialize.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
	WithinOfferTx(ctx context.Context, offerID string, fn func(r Repos, o *offer.LoanOffer) error) error
}
