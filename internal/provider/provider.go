package provider

import "context"

// MercadoPagoConfig carries the provider credentials and redirect targets.
// It is built once at startup and injected, so tests can swap the whole
// client for a fake instead of reading env vars at import time.
type MercadoPagoConfig struct {
	AccessToken     string
	SuccessURL      string // buyer redirect after an approved payment
	FailureURL      string
	PendingURL      string
	NotificationURL string // server-reachable webhook endpoint
}

type CreatePreferenceInput struct {
	// ExternalReference is the ledger row id. MercadoPago echoes it back on
	// every payment fetched later, which is how notifications are matched.
	ExternalReference string
	Title             string
	Quantity          int
	UnitPriceMinor    int64
	Currency          string
	PayerName         string
	PayerEmail        string
}

type Preference struct {
	ID          string
	RedirectURL string
}

// PaymentInfo is the authoritative provider-side state of a payment,
// fetched by id. Webhook payloads carry only a pointer to it.
type PaymentInfo struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	TransactionAmount float64
	PaymentMethodID   string
	PaymentTypeID     string
}

type Client interface {
	CreatePreference(ctx context.Context, in CreatePreferenceInput) (*Preference, error)
	GetPayment(ctx context.Context, id string) (*PaymentInfo, error)
}
