package offer

import "context"

type Repository interface {
	Create(ctx context.Context, o *LoanOffer) error
	GetByOfferID(ctx context.Context, offerID string) (*LoanOffer, error)
	// GetByOfferIDForUpdate locks the offer row for the surrounding transaction.
	GetByOfferIDForUpdate(ctx context.Context, offerID string) (*LoanOffer, error)
	Save(ctx context.Context, o *LoanOffer) error
	// ListActive returns active offers, most recently created first.
	ListActive(ctx context.Context) ([]LoanOffer, error)
}
