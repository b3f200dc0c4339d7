package http

import (
	"net/http"

	"peerlend-backend/internal/usecase/message"

	"github.com/labstack/echo/v4"
)

type MessageHandler struct{ uc *message.Usecase }

func NewMessageHandler(uc *message.Usecase) *MessageHandler { return &MessageHandler{uc: uc} }

type postMessageReq struct {
	SenderID   string `json:"sender_id"   validate:"required,hex32"`
	SenderName string `json:"sender_name" validate:"required"`
	SenderRole string `json:"sender_role" validate:"required,oneof=lender borrower"`
	Text       string `json:"text"        validate:"required"`
}

func (h *MessageHandler) PostMessage(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req postMessageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Post(c.Request().Context(), message.PostInput{
		LoanID:     loanID,
		SenderID:   req.SenderID,
		SenderName: req.SenderName,
		SenderRole: req.SenderRole,
		Text:       req.Text,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MessageHandler) GetMessagesForLoan(c echo.Context) error {
	out, err := h.uc.ListForLoan(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
