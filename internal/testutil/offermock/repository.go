package offermock

import (
	"context"

	domain "peerlend-backend/internal/domain/offer"
)

// Repo is a function-backed mock that satisfies offer.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, o *domain.LoanOffer) error
	GetByOfferIDFn          func(ctx context.Context, offerID string) (*domain.LoanOffer, error)
	GetByOfferIDForUpdateFn func(ctx context.Context, offerID string) (*domain.LoanOffer, error)
	SaveFn                  func(ctx context.Context, o *domain.LoanOffer) error
	ListActiveFn            func(ctx context.Context) ([]domain.LoanOffer, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, o *domain.LoanOffer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetByOfferID(ctx context.Context, offerID string) (*domain.LoanOffer, error) {
	if m.GetByOfferIDFn != nil {
		return m.GetByOfferIDFn(ctx, offerID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByOfferIDForUpdate(ctx context.Context, offerID string) (*domain.LoanOffer, error) {
	if m.GetByOfferIDForUpdateFn != nil {
		return m.GetByOfferIDForUpdateFn(ctx, offerID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, o *domain.LoanOffer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, o)
	}
	return nil
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.LoanOffer, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, context.Canceled
}
