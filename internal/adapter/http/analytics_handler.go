package http

import (
	"net/http"

	"peerlend-backend/internal/usecase/analytics"

	"github.com/labstack/echo/v4"
)

type AnalyticsHandler struct{ uc *analytics.Usecase }

func NewAnalyticsHandler(uc *analytics.Usecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) Portfolio(c echo.Context) error {
	out, err := h.uc.Portfolio(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) LenderSummary(c echo.Context) error {
	out, err := h.uc.Lender(c.Request().Context(), c.Param("lender_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsHandler) BorrowerSummary(c echo.Context) error {
	out, err := h.uc.Borrower(c.Request().Context(), c.Param("borrower_id"))
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
