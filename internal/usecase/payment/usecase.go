package payment

import (
	"context"
	"errors"
	"math"
	"time"

	domainLoan "peerlend-backend/internal/domain/loan"
	domain "peerlend-backend/internal/domain/payment"
	"peerlend-backend/internal/domain/uow"
	"peerlend-backend/pkg/id"
)

// Usecase is the payment ledger: it classifies and applies payments against an
// active loan inside a row-locked transaction, advances the due schedule, and
// flips the loan to completed once the full payable is covered.
type Usecase struct {
	payments domain.Repository
	uow      uow.UnitOfWork
	now      func() time.Time
}

func NewUsecase(payments domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{payments: payments, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the time source. Intended for tests.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Record applies one payment. Overpayment is clamped to the remaining balance
// so paid_amount never exceeds total_payable; the ledger row stores the
// clamped amount. The next due date advances from the previous due date, not
// from the payment date, so the schedule never drifts.
func (u *Usecase) Record(ctx context.Context, in RecordPaymentInput) (*RecordResult, error) {
	if in.Amount <= 0 {
		return nil, domainLoan.ErrInvalidAmount
	}

	var res *RecordResult
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusActive {
			return domainLoan.ErrNotActive
		}

		remaining := l.Remaining()

		var pType domain.Type
		switch {
		case in.Amount >= remaining:
			pType = domain.TypeFull
		case in.Amount >= l.MonthlyPayment:
			pType = domain.TypeMonthly
		default:
			pType = domain.TypePartial
		}

		// Installment index of the period this payment primarily covers,
		// pinned before the new amount is applied. A rounded-to-zero
		// installment (tiny principal at zero rate) pins everything to
		// the first period.
		month := 1
		if l.MonthlyPayment > 0 {
			month = int(math.Floor(l.PaidAmount/l.MonthlyPayment)) + 1
		}

		applied := in.Amount
		if applied > remaining {
			applied = remaining
		}

		p := &domain.Payment{
			PaymentID: id.NewID32(),
			LoanID:    l.LoanID,
			Amount:    applied,
			Date:      u.now(),
			Type:      pType,
			Status:    domain.StatusCompleted,
			Month:     month,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		l.PaidAmount += applied
		if l.PaidAmount >= l.TotalPayable {
			l.Status = domainLoan.StatusCompleted
			l.NextPaymentDate = nil
			l.NextPaymentAmount = nil
		} else if l.NextPaymentDate != nil {
			due := l.NextPaymentDate.AddDate(0, 1, 0)
			monthly := l.MonthlyPayment
			l.NextPaymentDate = &due
			l.NextPaymentAmount = &monthly
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		res = &RecordResult{
			Payment:    *toDTO(p),
			LoanStatus: string(l.Status),
			PaidAmount: l.PaidAmount,
			Remaining:  l.Remaining(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ListForLoan returns a loan's payment history, oldest first.
func (u *Usecase) ListForLoan(ctx context.Context, loanID string) ([]PaymentDTO, error) {
	if loanID == "" {
		return nil, errors.New("loan id is required")
	}
	ps, err := u.payments.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, *toDTO(&ps[i]))
	}
	return out, nil
}

func toDTO(p *domain.Payment) *PaymentDTO {
	return &PaymentDTO{
		PaymentID: p.PaymentID,
		LoanID:    p.LoanID,
		Amount:    p.Amount,
		Date:      p.Date,
		Type:      string(p.Type),
		Status:    string(p.Status),
		Month:     p.Month,
	}
}
