package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type loanSQLite struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	LoanID            string     `gorm:"size:32;column:loan_id"`
	LenderID          string     `gorm:"size:32;column:lender_id"`
	BorrowerID        string     `gorm:"size:32;column:borrower_id"`
	SuretyID          string     `gorm:"size:32;column:surety_id"`
	SuretyName        string     `gorm:"size:128;column:surety_name"`
	OfferID           string     `gorm:"size:32;column:offer_id"`
	Amount            float64    `gorm:"column:amount"`
	InterestRate      float64    `gorm:"column:interest_rate"`
	TenureMonths      int        `gorm:"column:tenure_months"`
	MonthlyPayment    float64    `gorm:"column:monthly_payment"`
	TotalPayable      float64    `gorm:"column:total_payable"`
	PaidAmount        float64    `gorm:"column:paid_amount"`
	Purpose           string     `gorm:"column:purpose"`
	Status            string     `gorm:"type:text;column:status"` // ← no enum
	ApprovedAt        *time.Time `gorm:"column:approved_at"`
	StartDate         *time.Time `gorm:"column:start_date"`
	NextPaymentDate   *time.Time `gorm:"column:next_payment_date"`
	NextPaymentAmount *float64   `gorm:"column:next_payment_amount"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type offerSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	OfferID      string    `gorm:"size:32;column:offer_id"`
	LenderID     string    `gorm:"size:32;column:lender_id"`
	LenderName   string    `gorm:"size:128;column:lender_name"`
	Amount       float64   `gorm:"column:amount"`
	InterestRate float64   `gorm:"column:interest_rate"`
	MinTenure    int       `gorm:"column:min_tenure"`
	MaxTenure    int       `gorm:"column:max_tenure"`
	Description  string    `gorm:"column:description"`
	Requirements string    `gorm:"column:requirements"`
	Status       string    `gorm:"type:text;column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (offerSQLite) TableName() string { return "loan_offers" }

type paymentSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	PaymentID string    `gorm:"size:32;column:payment_id"`
	LoanID    string    `gorm:"size:32;column:loan_id"`
	Amount    float64   `gorm:"column:amount"`
	Date      time.Time `gorm:"column:paid_at"`
	Type      string    `gorm:"type:text;column:type"`
	Status    string    `gorm:"type:text;column:status"`
	Month     int       `gorm:"column:month"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type messageSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	MessageID  string    `gorm:"size:32;column:message_id"`
	LoanID     string    `gorm:"size:32;column:loan_id"`
	SenderID   string    `gorm:"size:32;column:sender_id"`
	SenderName string    `gorm:"size:128;column:sender_name"`
	SenderRole string    `gorm:"type:text;column:sender_role"`
	Text       string    `gorm:"column:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (messageSQLite) TableName() string { return "messages" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &offerSQLite{}, &paymentSQLite{}, &messageSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
