package provider

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

type mercadoPagoClient struct {
	cfg         MercadoPagoConfig
	preferences preference.Client
	payments    payment.Client
}

func NewMercadoPagoClient(cfg MercadoPagoConfig) (Client, error) {
	if cfg.AccessToken == "" {
		return nil, errors.New("missing MercadoPago access token")
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &mercadoPagoClient{
		cfg:         cfg,
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
	}, nil
}

func (m *mercadoPagoClient) CreatePreference(ctx context.Context, in CreatePreferenceInput) (*Preference, error) {
	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      in.Title,
				Quantity:   in.Quantity,
				UnitPrice:  float64(in.UnitPriceMinor) / 100,
				CurrencyID: in.Currency,
			},
		},
		Payer: &preference.PayerRequest{
			Name:  in.PayerName,
			Email: in.PayerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: m.cfg.SuccessURL,
			Failure: m.cfg.FailureURL,
			Pending: m.cfg.PendingURL,
		},
		NotificationURL:   m.cfg.NotificationURL,
		ExternalReference: in.ExternalReference,
	}

	resp, err := m.preferences.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago create preference: %w", err)
	}

	return &Preference{
		ID:          resp.ID,
		RedirectURL: resp.InitPoint,
	}, nil
}

func (m *mercadoPagoClient) GetPayment(ctx context.Context, id string) (*PaymentInfo, error) {
	numericID, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("mercadopago payment id %q is not numeric: %w", id, err)
	}

	resp, err := m.payments.Get(ctx, numericID)
	if err != nil {
		return nil, fmt.Errorf("mercadopago get payment %s: %w", id, err)
	}

	return &PaymentInfo{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		ExternalReference: resp.ExternalReference,
		TransactionAmount: resp.TransactionAmount,
		PaymentMethodID:   resp.PaymentMethodID,
		PaymentTypeID:     resp.PaymentTypeID,
	}, nil
}
