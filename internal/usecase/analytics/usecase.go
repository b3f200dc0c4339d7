package analytics

import (
	"context"
	"sort"

	domain "peerlend-backend/internal/domain/loan"
)

const (
	// A loan is high risk when more than this is still owed...
	highRiskRemaining = 5000.0
	// ...and less than this fraction has been repaid.
	highRiskProgress = 0.30
	// Top performers have repaid more than this fraction.
	topPerformerProgress = 0.50

	rankedListSize = 5
)

type Usecase struct {
	loans domain.Repository
}

func NewUsecase(loans domain.Repository) *Usecase { return &Usecase{loans: loans} }

// Portfolio aggregates the whole book. The rejected rate counts application
// rejections, not post-disbursement defaults; true default tracking does not
// exist in this system.
func (u *Usecase) Portfolio(ctx context.Context) (*PortfolioReport, error) {
	loans, err := u.loans.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	r := &PortfolioReport{
		TotalLoans:         len(loans),
		StatusDistribution: map[string]int{},
	}

	var rateSum float64
	var rejected int
	buckets := [4]int{} // [0,5) [5,10) [10,15) [15,inf)
	for i := range loans {
		l := &loans[i]
		r.TotalLoanValue += l.Amount
		r.TotalPaid += l.PaidAmount
		rateSum += l.InterestRate
		r.StatusDistribution[string(l.Status)]++

		switch {
		case l.InterestRate < 5:
			buckets[0]++
		case l.InterestRate < 10:
			buckets[1]++
		case l.InterestRate < 15:
			buckets[2]++
		default:
			buckets[3]++
		}

		switch l.Status {
		case domain.StatusRejected:
			rejected++
		case domain.StatusActive:
			r.Outstanding += l.Remaining()
		}
	}

	if len(loans) > 0 {
		r.RejectedRate = float64(rejected) / float64(len(loans))
		r.AverageInterestRate = rateSum / float64(len(loans))
	}
	if r.TotalLoanValue > 0 {
		r.RepaymentRate = r.TotalPaid / r.TotalLoanValue
	}
	r.InterestRateBuckets = []RateBucket{
		{Range: "0-5%", Count: buckets[0]},
		{Range: "5-10%", Count: buckets[1]},
		{Range: "10-15%", Count: buckets[2]},
		{Range: "15%+", Count: buckets[3]},
	}
	r.HighRiskLoans = highRisk(loans)
	r.TopPerformingLoans = topPerforming(loans)
	return r, nil
}

// highRisk: active loans with a large balance still owed and little progress,
// worst (largest remaining) first.
func highRisk(loans []domain.Loan) []RankedLoan {
	out := []RankedLoan{}
	for i := range loans {
		l := &loans[i]
		if l.Status != domain.StatusActive {
			continue
		}
		if l.Remaining() > highRiskRemaining && l.Progress() < highRiskProgress {
			out = append(out, ranked(l))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Remaining > out[j].Remaining })
	return clip(out)
}

// topPerforming: active loans past the halfway mark, best progress first.
func topPerforming(loans []domain.Loan) []RankedLoan {
	out := []RankedLoan{}
	for i := range loans {
		l := &loans[i]
		if l.Status != domain.StatusActive {
			continue
		}
		if l.Progress() > topPerformerProgress {
			out = append(out, ranked(l))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Progress > out[j].Progress })
	return clip(out)
}

func ranked(l *domain.Loan) RankedLoan {
	return RankedLoan{
		LoanID:     l.LoanID,
		BorrowerID: l.BorrowerID,
		Amount:     l.Amount,
		Remaining:  l.Remaining(),
		Progress:   l.Progress(),
	}
}

func clip(in []RankedLoan) []RankedLoan {
	if len(in) > rankedListSize {
		return in[:rankedListSize]
	}
	return in
}

// Lender summarizes one lender's book the way their dashboard shows it.
func (u *Usecase) Lender(ctx context.Context, lenderID string) (*LenderSummary, error) {
	loans, err := u.loans.ListByLenderID(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	s := &LenderSummary{LenderID: lenderID}
	for i := range loans {
		l := &loans[i]
		s.TotalLent += l.Amount
		s.TotalCollected += l.PaidAmount
		switch l.Status {
		case domain.StatusActive:
			s.ActiveLoans++
			s.TotalPending += l.Remaining()
		case domain.StatusPending:
			s.PendingLoans++
		case domain.StatusCompleted:
			s.CompletedLoans++
			s.InterestEarned += l.TotalPayable - l.Amount
		}
	}
	return s, nil
}

// Borrower summarizes one borrower's obligations.
func (u *Usecase) Borrower(ctx context.Context, borrowerID string) (*BorrowerSummary, error) {
	loans, err := u.loans.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	s := &BorrowerSummary{BorrowerID: borrowerID}
	for i := range loans {
		l := &loans[i]
		s.TotalBorrowed += l.Amount
		s.TotalPaid += l.PaidAmount
		switch l.Status {
		case domain.StatusActive:
			s.ActiveLoans++
			s.TotalRemaining += l.Remaining()
		case domain.StatusPending:
			s.PendingLoans++
		case domain.StatusCompleted:
			s.CompletedLoans++
		}
	}
	return s, nil
}
