package loan

import (
	"context"
	"errors"
	"fmt"

	domain "peerlend-backend/internal/domain/loan"
	offerDomain "peerlend-backend/internal/domain/offer"
	"peerlend-backend/pkg/amortization"
	"peerlend-backend/pkg/id"

	"gorm.io/gorm"
)

type Role string

const (
	RoleLender   Role = "lender"
	RoleBorrower Role = "borrower"
)

var ErrInvalidRole = errors.New("role must be lender or borrower")

type Usecase struct {
	loans  domain.Repository
	offers offerDomain.Repository
}

func NewUsecase(loans domain.Repository, offers offerDomain.Repository) *Usecase {
	return &Usecase{loans: loans, offers: offers}
}

// Apply validates the requested terms, derives the repayment schedule, and
// persists a new pending loan. When an offer is referenced the application is
// checked against the offer's bounds and inherits its interest rate.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || in.LenderID == "" {
		return nil, errors.New("borrower and lender are required")
	}
	if in.Purpose == "" {
		return nil, errors.New("purpose is required")
	}
	if in.Amount <= 0 || in.InterestRate < 0 || in.TenureMonths <= 0 {
		return nil, amortization.ErrInvalidTerms
	}

	rate := in.InterestRate
	if in.OfferID != "" {
		o, err := u.offers.GetByOfferID(ctx, in.OfferID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("offer %s: %w", in.OfferID, offerDomain.ErrConstraintViolation)
		case err != nil:
			return nil, err
		}
		if o.Status != offerDomain.StatusActive {
			return nil, fmt.Errorf("offer %s is inactive: %w", in.OfferID, offerDomain.ErrConstraintViolation)
		}
		if in.Amount > o.Amount {
			return nil, fmt.Errorf("amount %.2f exceeds offer maximum %.2f: %w",
				in.Amount, o.Amount, offerDomain.ErrConstraintViolation)
		}
		if in.TenureMonths < o.MinTenure || in.TenureMonths > o.MaxTenure {
			return nil, fmt.Errorf("tenure %d outside offer range %d-%d: %w",
				in.TenureMonths, o.MinTenure, o.MaxTenure, offerDomain.ErrConstraintViolation)
		}
		rate = o.InterestRate
	}

	terms, err := amortization.Compute(in.Amount, rate, in.TenureMonths)
	if err != nil {
		return nil, err
	}

	l := &domain.Loan{
		LoanID:         id.NewID32(),
		LenderID:       in.LenderID,
		BorrowerID:     in.BorrowerID,
		SuretyID:       in.SuretyID,
		SuretyName:     in.SuretyName,
		OfferID:        in.OfferID,
		Amount:         in.Amount,
		InterestRate:   rate,
		TenureMonths:   in.TenureMonths,
		MonthlyPayment: terms.Monthly,
		TotalPayable:   terms.Total,
		PaidAmount:     0,
		Purpose:        in.Purpose,
		Status:         domain.StatusPending,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return ToDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ToDTO(l), nil
}

// ListForUser returns the loans a user participates in, newest first.
func (u *Usecase) ListForUser(ctx context.Context, userID string, role Role) ([]LoanDTO, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	var (
		loans []domain.Loan
		err   error
	)
	switch role {
	case RoleLender:
		loans, err = u.loans.ListByLenderID(ctx, userID)
	case RoleBorrower:
		loans, err = u.loans.ListByBorrowerID(ctx, userID)
	default:
		return nil, ErrInvalidRole
	}
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		out = append(out, *ToDTO(&loans[i]))
	}
	return out, nil
}

func ToDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:            l.LoanID,
		LenderID:          l.LenderID,
		BorrowerID:        l.BorrowerID,
		SuretyID:          l.SuretyID,
		SuretyName:        l.SuretyName,
		OfferID:           l.OfferID,
		Amount:            l.Amount,
		InterestRate:      l.InterestRate,
		TenureMonths:      l.TenureMonths,
		MonthlyPayment:    l.MonthlyPayment,
		TotalPayable:      l.TotalPayable,
		PaidAmount:        l.PaidAmount,
		Purpose:           l.Purpose,
		Status:            string(l.Status),
		ApprovedAt:        l.ApprovedAt,
		StartDate:         l.StartDate,
		NextPaymentDate:   l.NextPaymentDate,
		NextPaymentAmount: l.NextPaymentAmount,
		CreatedAt:         l.CreatedAt,
	}
}
