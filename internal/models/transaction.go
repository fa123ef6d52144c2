package models

import "time"

// Transaction records a completed credit purchase. Write-once.
type Transaction struct {
	ID          string    `json:"id"`
	StripeID    string    `json:"stripe_id"`
	Plan        string    `json:"plan"`
	AmountCents int64     `json:"amount_cents"`
	Credits     int       `json:"credits"`
	BuyerID     string    `json:"buyer_id"`
	CreatedAt   time.Time `json:"created_at"`
}
