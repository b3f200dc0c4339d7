// Package memuow is an in-memory UnitOfWork for tests that need real
// serialization semantics (e.g. concurrent payments on one loan) without a
// database. A single mutex stands in for the row locks the SQL implementation
// takes; effects are copy-on-write and only published on success, so a failed
// fn leaves stored state untouched.
package memuow

import (
	"context"
	"sync"

	"peerlend-backend/internal/domain/loan"
	"peerlend-backend/internal/domain/offer"
	"peerlend-backend/internal/domain/payment"
	"peerlend-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type UoW struct {
	mu       sync.Mutex
	loans    map[string]*loan.Loan
	offers   map[string]*offer.LoanOffer
	payments map[string][]payment.Payment
}

var _ uow.UnitOfWork = (*UoW)(nil)

func New() *UoW {
	return &UoW{
		loans:    map[string]*loan.Loan{},
		offers:   map[string]*offer.LoanOffer{},
		payments: map[string][]payment.Payment{},
	}
}

// SeedLoan stores a copy of l.
func (u *UoW) SeedLoan(l *loan.Loan) {
	u.mu.Lock()
	defer u.mu.Unlock()
	cp := *l
	u.loans[l.LoanID] = &cp
}

// SeedOffer stores a copy of o.
func (u *UoW) SeedOffer(o *offer.LoanOffer) {
	u.mu.Lock()
	defer u.mu.Unlock()
	cp := *o
	u.offers[o.OfferID] = &cp
}

// Loan returns a copy of the stored loan, or nil.
func (u *UoW) Loan(loanID string) *loan.Loan {
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.loans[loanID]
	if !ok {
		return nil
	}
	cp := *l
	return &cp
}

// Payments returns the stored ledger for a loan.
func (u *UoW) Payments(loanID string) []payment.Payment {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]payment.Payment(nil), u.payments[loanID]...)
}

// tx buffers writes until the fn returns nil.
type tx struct {
	u           *UoW
	savedLoans  []*loan.Loan
	savedOffers []*offer.LoanOffer
	newPayments []*payment.Payment
}

func (t *tx) commit() {
	for _, l := range t.savedLoans {
		cp := *l
		t.u.loans[l.LoanID] = &cp
	}
	for _, o := range t.savedOffers {
		cp := *o
		t.u.offers[o.OfferID] = &cp
	}
	for _, p := range t.newPayments {
		t.u.payments[p.LoanID] = append(t.u.payments[p.LoanID], *p)
	}
}

type loanRepo struct{ t *tx }

func (r loanRepo) Create(_ context.Context, l *loan.Loan) error {
	r.t.savedLoans = append(r.t.savedLoans, l)
	return nil
}
func (r loanRepo) Save(_ context.Context, l *loan.Loan) error {
	r.t.savedLoans = append(r.t.savedLoans, l)
	return nil
}
func (r loanRepo) GetByLoanID(_ context.Context, loanID string) (*loan.Loan, error) {
	l, ok := r.t.u.loans[loanID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}
func (r loanRepo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loan.Loan, error) {
	return r.GetByLoanID(ctx, loanID)
}
func (r loanRepo) ListByLenderID(context.Context, string) ([]loan.Loan, error)   { return nil, nil }
func (r loanRepo) ListByBorrowerID(context.Context, string) ([]loan.Loan, error) { return nil, nil }
func (r loanRepo) ListAll(context.Context) ([]loan.Loan, error)                  { return nil, nil }

type offerRepo struct{ t *tx }

func (r offerRepo) Create(_ context.Context, o *offer.LoanOffer) error {
	r.t.savedOffers = append(r.t.savedOffers, o)
	return nil
}
func (r offerRepo) Save(_ context.Context, o *offer.LoanOffer) error {
	r.t.savedOffers = append(r.t.savedOffers, o)
	return nil
}
func (r offerRepo) GetByOfferID(_ context.Context, offerID string) (*offer.LoanOffer, error) {
	o, ok := r.t.u.offers[offerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}
func (r offerRepo) GetByOfferIDForUpdate(ctx context.Context, offerID string) (*offer.LoanOffer, error) {
	return r.GetByOfferID(ctx, offerID)
}
func (r offerRepo) ListActive(context.Context) ([]offer.LoanOffer, error) { return nil, nil }

type paymentRepo struct{ t *tx }

func (r paymentRepo) Create(_ context.Context, p *payment.Payment) error {
	r.t.newPayments = append(r.t.newPayments, p)
	return nil
}
func (r paymentRepo) ListByLoanID(_ context.Context, loanID string) ([]payment.Payment, error) {
	return append([]payment.Payment(nil), r.t.u.payments[loanID]...), nil
}

func (u *UoW) run(fn func(t *tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	t := &tx{u: u}
	if err := fn(t); err != nil {
		return err
	}
	t.commit()
	return nil
}

func (u *UoW) repos(t *tx) uow.Repos {
	return uow.Repos{Loans: loanRepo{t}, Offers: offerRepo{t}, Payments: paymentRepo{t}}
}

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.run(func(t *tx) error { return fn(u.repos(t)) })
}

func (u *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.run(func(t *tx) error {
		stored, ok := u.loans[loanID]
		if !ok {
			return loan.ErrNotFound
		}
		cp := *stored
		return fn(u.repos(t), &cp)
	})
}

func (u *UoW) WithinOfferTx(ctx context.Context, offerID string, fn func(r uow.Repos, o *offer.LoanOffer) error) error {
	return u.run(func(t *tx) error {
		stored, ok := u.offers[offerID]
		if !ok {
			return offer.ErrNotFound
		}
		cp := *stored
		return fn(u.repos(t), &cp)
	})
}
