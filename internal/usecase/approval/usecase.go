package approval

import (
	"context"
	"time"

	domainLoan "peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/uow"
	loanUC "peerlend-backend/internal/usecase/loan"
)

// Usecase owns the administrator side of the loan state machine:
// pending -> active (Approve) and pending -> rejected (Reject).
// Completion is never reached from here; the payment ledger owns it.
type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the time source. Intended for tests.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Approve activates a pending loan: stamps approval/start dates and schedules
// the first installment one month out. Fails closed on any other state.
func (u *Usecase) Approve(ctx context.Context, loanID string) (*loanUC.LoanDTO, error) {
	var dto *loanUC.LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusPending {
			return domainLoan.ErrInvalidTransition
		}

		now := u.now()
		firstDue := now.AddDate(0, 1, 0)
		monthly := l.MonthlyPayment

		l.Status = domainLoan.StatusActive
		l.ApprovedAt = &now
		l.StartDate = &now
		l.NextPaymentDate = &firstDue
		l.NextPaymentAmount = &monthly
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = loanUC.ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reject moves a pending loan to the terminal rejected state. No other field changes.
func (u *Usecase) Reject(ctx context.Context, loanID string) (*loanUC.LoanDTO, error) {
	var dto *loanUC.LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusPending {
			return domainLoan.ErrInvalidTransition
		}
		l.Status = domainLoan.StatusRejected
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = loanUC.ToDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
