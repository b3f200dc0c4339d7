package http

import (
	"net/http"

	"peerlend-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	LenderID     string  `json:"lender_id"      validate:"required,hex32"`
	BorrowerID   string  `json:"borrower_id"    validate:"required,hex32"`
	Amount       float64 `json:"amount"         validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate"  validate:"gte=0"`
	TenureMonths int     `json:"tenure_months"  validate:"required,gt=0"`
	Purpose      string  `json:"purpose"        validate:"required"`
	OfferID      string  `json:"offer_id"       validate:"omitempty,hex32"`
	SuretyID     string  `json:"surety_id"      validate:"omitempty,hex32"`
	SuretyName   string  `json:"surety_name"`
}

func (h *LoanHandler) ApplyForLoan(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		LenderID:     req.LenderID,
		BorrowerID:   req.BorrowerID,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		TenureMonths: req.TenureMonths,
		Purpose:      req.Purpose,
		OfferID:      req.OfferID,
		SuretyID:     req.SuretyID,
		SuretyName:   req.SuretyName,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetLoansForUser(c echo.Context) error {
	userID := c.QueryParam("user_id")
	role := loan.Role(c.QueryParam("role"))
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id"})
	}
	out, err := h.uc.ListForUser(c.Request().Context(), userID, role)
	if err != nil {
		if err == loan.ErrInvalidRole {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
