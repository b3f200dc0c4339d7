package message

import (
	"context"
	"errors"
	"time"

	domainLoan "peerlend-backend/internal/domain/loan"
	domain "peerlend-backend/internal/domain/message"
	"peerlend-backend/pkg/id"

	"gorm.io/gorm"
)

type PostInput struct {
	LoanID     string `json:"loan_id"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	SenderRole string `json:"sender_role"`
	Text       string `json:"text"`
}

type MessageDTO struct {
	MessageID  string    `json:"message_id"`
	LoanID     string    `json:"loan_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Usecase appends to and reads a loan's chat thread. Appends never touch the
// loan row, so they are free to run alongside any loan mutation.
type Usecase struct {
	messages domain.Repository
	loans    domainLoan.Repository
}

func NewUsecase(messages domain.Repository, loans domainLoan.Repository) *Usecase {
	return &Usecase{messages: messages, loans: loans}
}

func (u *Usecase) Post(ctx context.Context, in PostInput) (*MessageDTO, error) {
	if in.Text == "" {
		return nil, errors.New("message text is required")
	}
	role := domain.Role(in.SenderRole)
	if role != domain.RoleLender && role != domain.RoleBorrower {
		return nil, domain.ErrInvalidRole
	}
	if _, err := u.loans.GetByLoanID(ctx, in.LoanID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	m := &domain.Message{
		MessageID:  id.NewID32(),
		LoanID:     in.LoanID,
		SenderID:   in.SenderID,
		SenderName: in.SenderName,
		SenderRole: role,
		Text:       in.Text,
	}
	if err := u.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return toDTO(m), nil
}

func (u *Usecase) ListForLoan(ctx context.Context, loanID string) ([]MessageDTO, error) {
	ms, err := u.messages.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	out := make([]MessageDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *toDTO(&ms[i]))
	}
	return out, nil
}

func toDTO(m *domain.Message) *MessageDTO {
	return &MessageDTO{
		MessageID:  m.MessageID,
		LoanID:     m.LoanID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		SenderRole: string(m.SenderRole),
		Text:       m.Text,
		Timestamp:  m.CreatedAt,
	}
}
