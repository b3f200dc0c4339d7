package http

import (
	"net/http"

	"peerlend-backend/internal/usecase/offer"

	"github.com/labstack/echo/v4"
)

type OfferHandler struct{ uc *offer.Usecase }

func NewOfferHandler(uc *offer.Usecase) *OfferHandler { return &OfferHandler{uc: uc} }

type createOfferReq struct {
	LenderID     string  `json:"lender_id"     validate:"required,hex32"`
	LenderName   string  `json:"lender_name"   validate:"required"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`
	MinTenure    int     `json:"min_tenure"    validate:"required,gt=0"`
	MaxTenure    int     `json:"max_tenure"    validate:"required,gtefield=MinTenure"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
}

func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req createOfferReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), offer.CreateOfferInput{
		LenderID:     req.LenderID,
		LenderName:   req.LenderName,
		Amount:       req.Amount,
		InterestRate: req.InterestRate,
		MinTenure:    req.MinTenure,
		MaxTenure:    req.MaxTenure,
		Description:  req.Description,
		Requirements: req.Requirements,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *OfferHandler) DeactivateOffer(c echo.Context) error {
	offerID := c.Param("offer_id")
	actor := actorID(c)
	if offerID == "" || actor == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing offer_id or X-User-Id"})
	}
	dto, err := h.uc.Deactivate(c.Request().Context(), offerID, actor)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *OfferHandler) ListActiveOffers(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
