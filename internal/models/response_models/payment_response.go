package response_models

import "github.com/google/uuid"

type CheckoutResponse struct {
	PaymentID    uuid.UUID `json:"payment_id"`
	PreferenceID string    `json:"preference_id"`
	RedirectURL  string    `json:"redirect_url"`
}

// PaymentView is the buyer-facing projection of a ledger row. Provider
// correlation ids stay internal.
type PaymentView struct {
	ID          uuid.UUID `json:"id"`
	CourseID    uuid.UUID `json:"course_id"`
	Status      string    `json:"status"`
	AmountMinor int64     `json:"amount_minor"`
	Currency    string    `json:"currency"`
	PaidAt      *int64    `json:"paid_at,omitempty"`
}
