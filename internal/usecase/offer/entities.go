package offer

import "time"

type CreateOfferInput struct {
	LenderID     string  `json:"lender_id"`
	LenderName   string  `json:"lender_name"`
	Amount       float64 `json:"amount"`
	InterestRate float64 `json:"interest_rate"`
	MinTenure    int     `json:"min_tenure"`
	MaxTenure    int     `json:"max_tenure"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
}

type OfferDTO struct {
	OfferID      string    `json:"offer_id"`
	LenderID     string    `json:"lender_id"`
	LenderName   string    `json:"lender_name"`
	Amount       float64   `json:"amount"`
	InterestRate float64   `json:"interest_rate"`
	MinTenure    int       `json:"min_tenure"`
	MaxTenure    int       `json:"max_tenure"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
