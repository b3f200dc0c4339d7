package http

import (
	"errors"
	"net/http"

	loanDomain "peerlend-backend/internal/domain/loan"
	messageDomain "peerlend-backend/internal/domain/message"
	offerDomain "peerlend-backend/internal/domain/offer"
	"peerlend-backend/pkg/amortization"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeDomainErr maps engine errors onto HTTP statuses. Anything unmapped is a 500.
func writeDomainErr(c echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, offerDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		status = http.StatusNotFound
	case errors.Is(err, offerDomain.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, loanDomain.ErrNotActive),
		errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, offerDomain.ErrConstraintViolation),
		errors.Is(err, messageDomain.ErrInvalidRole),
		errors.Is(err, amortization.ErrInvalidTerms):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

// actorID pulls the verified caller identity set by the auth layer.
func actorID(c echo.Context) string { return c.Request().Header.Get("X-User-Id") }
