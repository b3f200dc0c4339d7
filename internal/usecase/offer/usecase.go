package offer

import (
	"context"
	"errors"

	domain "peerlend-backend/internal/domain/offer"
	"peerlend-backend/internal/domain/uow"
	"peerlend-backend/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in CreateOfferInput) (*OfferDTO, error) {
	if in.LenderID == "" || in.Amount <= 0 || in.InterestRate < 0 {
		return nil, errors.New("invalid offer terms")
	}
	if in.MinTenure <= 0 || in.MinTenure > in.MaxTenure {
		return nil, errors.New("invalid tenure range")
	}

	o := &domain.LoanOffer{
		OfferID:      id.NewID32(),
		LenderID:     in.LenderID,
		LenderName:   in.LenderName,
		Amount:       in.Amount,
		InterestRate: in.InterestRate,
		MinTenure:    in.MinTenure,
		MaxTenure:    in.MaxTenure,
		Description:  in.Description,
		Requirements: in.Requirements,
		Status:       domain.StatusActive,
	}
	if err := u.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return toDTO(o), nil
}

// Deactivate marks an offer inactive. Only the owning lender may do so;
// deactivating an already-inactive offer is a no-op.
func (u *Usecase) Deactivate(ctx context.Context, offerID, actorID string) (*OfferDTO, error) {
	var dto *OfferDTO
	err := u.uow.WithinOfferTx(ctx, offerID, func(r uow.Repos, o *domain.LoanOffer) error {
		if o.LenderID != actorID {
			return domain.ErrNotOwner
		}
		if o.Status != domain.StatusInactive {
			o.Status = domain.StatusInactive
			if err := r.Offers.Save(ctx, o); err != nil {
				return err
			}
		}
		dto = toDTO(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListActive(ctx context.Context) ([]OfferDTO, error) {
	offers, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]OfferDTO, 0, len(offers))
	for i := range offers {
		out = append(out, *toDTO(&offers[i]))
	}
	return out, nil
}

func toDTO(o *domain.LoanOffer) *OfferDTO {
	return &OfferDTO{
		OfferID:      o.OfferID,
		LenderID:     o.LenderID,
		LenderName:   o.LenderName,
		Amount:       o.Amount,
		InterestRate: o.InterestRate,
		MinTenure:    o.MinTenure,
		MaxTenure:    o.MaxTenure,
		Description:  o.Description,
		Requirements: o.Requirements,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}
