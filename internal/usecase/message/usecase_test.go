package message

import (
	"context"
	"errors"
	"testing"

	domainLoan "peerlend-backend/internal/domain/loan"
	domain "peerlend-backend/internal/domain/message"
	"peerlend-backend/internal/testutil/loanmock"
	"peerlend-backend/internal/testutil/messagemock"

	"gorm.io/gorm"
)

const (
	loanID   = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	senderID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func knownLoan() *loanmock.Repo {
	return &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, id string) (*domainLoan.Loan, error) {
			return &domainLoan.Loan{LoanID: id}, nil
		},
	}
}

func validPost() PostInput {
	return PostInput{
		LoanID:     loanID,
		SenderID:   senderID,
		SenderName: "Rani",
		SenderRole: "borrower",
		Text:       "payment coming friday",
	}
}

func TestPost_Success(t *testing.T) {
	var created *domain.Message
	msgs := &messagemock.Repo{
		CreateFn: func(ctx context.Context, m *domain.Message) error { created = m; return nil },
	}
	uc := NewUsecase(msgs, knownLoan())

	dto, err := uc.Post(context.Background(), validPost())
	if err != nil {
		t.Fatalf("Post err: %v", err)
	}
	if created == nil || created.SenderRole != domain.RoleBorrower {
		t.Fatalf("created: %+v", created)
	}
	if len(dto.MessageID) != 32 {
		t.Fatalf("MessageID length: %d", len(dto.MessageID))
	}
}

func TestPost_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PostInput)
		wantErr error
	}{
		{"empty text", func(in *PostInput) { in.Text = "" }, nil},
		{"bad role", func(in *PostInput) { in.SenderRole = "admin" }, domain.ErrInvalidRole},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			msgs := &messagemock.Repo{
				CreateFn: func(ctx context.Context, m *domain.Message) error {
					t.Fatal("Create must not be called")
					return nil
				},
			}
			uc := NewUsecase(msgs, knownLoan())
			in := validPost()
			tt.mutate(&in)
			_, err := uc.Post(context.Background(), in)
			if err == nil {
				t.Fatal("want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPost_UnknownLoan(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, id string) (*domainLoan.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(&messagemock.Repo{}, loans)
	if _, err := uc.Post(context.Background(), validPost()); !errors.Is(err, domainLoan.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListForLoan(t *testing.T) {
	msgs := &messagemock.Repo{
		ListByLoanIDFn: func(ctx context.Context, id string) ([]domain.Message, error) {
			return []domain.Message{
				{MessageID: "m1", LoanID: id, Text: "hi"},
				{MessageID: "m2", LoanID: id, Text: "hello"},
			}, nil
		},
	}
	uc := NewUsecase(msgs, &loanmock.Repo{})
	out, err := uc.ListForLoan(context.Background(), loanID)
	if err != nil {
		t.Fatalf("ListForLoan err: %v", err)
	}
	if len(out) != 2 || out[0].MessageID != "m1" {
		t.Fatalf("unexpected listing: %+v", out)
	}
}
