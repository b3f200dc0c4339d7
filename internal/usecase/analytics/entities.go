package analytics

// PortfolioReport is a point-in-time snapshot over every loan. Reads tolerate
// concurrent writes; nothing here mutates state.
type PortfolioReport struct {
	TotalLoans          int              `json:"total_loans"`
	TotalLoanValue      float64          `json:"total_loan_value"`
	TotalPaid           float64          `json:"total_paid"`
	Outstanding         float64          `json:"outstanding"`
	RepaymentRate       float64          `json:"repayment_rate"`
	RejectedRate        float64          `json:"rejected_rate"`
	AverageInterestRate float64          `json:"average_interest_rate"`
	StatusDistribution  map[string]int   `json:"status_distribution"`
	InterestRateBuckets []RateBucket     `json:"interest_rate_buckets"`
	HighRiskLoans       []RankedLoan     `json:"high_risk_loans"`
	TopPerformingLoans  []RankedLoan     `json:"top_performing_loans"`
}

type RateBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type RankedLoan struct {
	LoanID     string  `json:"loan_id"`
	BorrowerID string  `json:"borrower_id"`
	Amount     float64 `json:"amount"`
	Remaining  float64 `json:"remaining"`
	Progress   float64 `json:"progress"`
}

type LenderSummary struct {
	LenderID       string  `json:"lender_id"`
	TotalLent      float64 `json:"total_lent"`
	TotalCollected float64 `json:"total_collected"`
	TotalPending   float64 `json:"total_pending"`
	InterestEarned float64 `json:"interest_earned"`
	ActiveLoans    int     `json:"active_loans"`
	PendingLoans   int     `json:"pending_loans"`
	CompletedLoans int     `json:"completed_loans"`
}

type BorrowerSummary struct {
	BorrowerID     string  `json:"borrower_id"`
	TotalBorrowed  float64 `json:"total_borrowed"`
	TotalPaid      float64 `json:"total_paid"`
	TotalRemaining float64 `json:"total_remaining"`
	ActiveLoans    int     `json:"active_loans"`
	PendingLoans   int     `json:"pending_loans"`
	CompletedLoans int     `json:"completed_loans"`
}
