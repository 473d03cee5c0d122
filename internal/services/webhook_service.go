package services

import (
	"context"
	"encoding/json"

	"aulago/internal/models/db_models"
	"aulago/internal/provider"
	"aulago/internal/repositories"
	"aulago/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// WebhookNotification is the inbound MercadoPago payload. It is only a
// pointer: the id is used to fetch the authoritative payment state from the
// provider, nothing else in the body is trusted.
type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type WebhookServiceInterface interface {
	ProcessNotification(ctx context.Context, notification WebhookNotification) error
}

type WebhookService struct {
	payments repositories.IPaymentRepository
	gateway  provider.Client
	logger   *zap.Logger
}

func NewWebhookService(
	payments repositories.IPaymentRepository,
	gateway provider.Client,
	logger *zap.Logger,
) WebhookServiceInterface {
	return &WebhookService{
		payments: payments,
		gateway:  gateway,
		logger:   logger,
	}
}

// ProcessNotification reconciles one provider notification against the
// ledger. A nil return means the delivery is acknowledged (including
// duplicates and notifications for unknown payments); a non-nil return makes
// the controller answer non-2xx so MercadoPago redelivers.
func (w *WebhookService) ProcessNotification(ctx context.Context, notification WebhookNotification) error {
	if notification.Type != "payment" || notification.Data.ID == "" {
		return nil
	}

	info, err := w.gateway.GetPayment(ctx, notification.Data.ID)
	if err != nil {
		w.logger.Warn("provider payment fetch failed",
			zap.String("provider_payment_id", notification.Data.ID),
			zap.Error(err))
		return utils.ErrProviderUnavailable
	}

	paymentID, err := uuid.Parse(info.ExternalReference)
	if err != nil {
		// Not a reference this system issued. Acknowledge and drop.
		w.logger.Info("webhook for foreign external reference",
			zap.String("provider_payment_id", info.ID),
			zap.String("external_reference", info.ExternalReference))
		return nil
	}

	payment, err := w.payments.GetById(ctx, paymentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if payment == nil {
		w.logger.Info("webhook for unknown payment record",
			zap.String("payment_id", paymentID.String()),
			zap.String("provider_payment_id", info.ID))
		return nil
	}

	if payment.Status.Terminal() {
		// Duplicate or out-of-order redelivery. The first terminal status
		// already stuck; nothing to re-apply.
		w.logger.Info("webhook for already settled payment",
			zap.String("payment_id", paymentID.String()),
			zap.String("status", string(payment.Status)))
		return nil
	}

	detail := providerDetail(info)

	switch mapProviderStatus(info.Status) {
	case db_models.PaymentStatusApproved:
		applied, err := w.payments.ApproveAndEnroll(ctx, paymentID, info.ID, detail)
		if err != nil {
			w.logger.Error("failed to approve payment and enroll buyer",
				zap.String("payment_id", paymentID.String()),
				zap.Error(err))
			return utils.ErrDatabaseError
		}
		if !applied {
			w.logger.Info("approval lost the race to a concurrent delivery",
				zap.String("payment_id", paymentID.String()))
			return nil
		}
		w.logger.Info("payment approved, enrollment created",
			zap.String("payment_id", paymentID.String()),
			zap.String("buyer_id", payment.BuyerID.String()),
			zap.String("course_id", payment.CourseID.String()))
		return nil

	case db_models.PaymentStatusRejected, db_models.PaymentStatusCancelled:
		applied, err := w.payments.MarkTerminal(ctx, paymentID, mapProviderStatus(info.Status), info.ID, detail)
		if err != nil {
			w.logger.Error("failed to mark payment terminal",
				zap.String("payment_id", paymentID.String()),
				zap.Error(err))
			return utils.ErrDatabaseError
		}
		if applied {
			w.logger.Info("payment settled without enrollment",
				zap.String("payment_id", paymentID.String()),
				zap.String("status", info.Status))
		}
		return nil

	default:
		// in_process, authorized, pending... keep the row pending but record
		// what the provider reported for audit.
		if err := w.payments.RecordProviderDetail(ctx, paymentID, info.ID, detail); err != nil {
			w.logger.Error("failed to record provider detail",
				zap.String("payment_id", paymentID.String()),
				zap.Error(err))
			return utils.ErrDatabaseError
		}
		return nil
	}
}

func mapProviderStatus(status string) db_models.PaymentStatus {
	switch status {
	case "approved":
		return db_models.PaymentStatusApproved
	case "rejected":
		return db_models.PaymentStatusRejected
	case "cancelled":
		return db_models.PaymentStatusCancelled
	default:
		return db_models.PaymentStatusPending
	}
}

func providerDetail(info *provider.PaymentInfo) datatypes.JSON {
	b, _ := json.Marshal(map[string]interface{}{
		"provider_payment_id": info.ID,
		"status":              info.Status,
		"status_detail":       info.StatusDetail,
		"payment_method_id":   info.PaymentMethodID,
		"payment_type_id":     info.PaymentTypeID,
		"transaction_amount":  info.TransactionAmount,
	})
	return b
}
