package repositories

import (
	"context"
	"errors"
	"time"

	"aulago/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IPaymentRepository owns every write to the payment ledger. Terminal
// transitions are status-guarded UPDATEs: the boolean result reports whether
// this call actually flipped the row, which is what makes concurrent
// duplicate webhook deliveries safe.
type IPaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	GetById(ctx context.Context, id uuid.UUID) (*db_models.Payment, error)
	AttachPreference(ctx context.Context, id uuid.UUID, preferenceID string) error
	RecordProviderDetail(ctx context.Context, id uuid.UUID, providerPaymentID string, detail datatypes.JSON) error
	ApproveAndEnroll(ctx context.Context, id uuid.UUID, providerPaymentID string, detail datatypes.JSON) (bool, error)
	MarkTerminal(ctx context.Context, id uuid.UUID, status db_models.PaymentStatus, providerPaymentID string, detail datatypes.JSON) (bool, error)
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{db: db}
}

func (p *PaymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Create(payment).Error
}

func (p *PaymentRepository) GetById(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := p.db.WithContext(ctx).First(&payment, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

func (p *PaymentRepository) AttachPreference(ctx context.Context, id uuid.UUID, preferenceID string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("id = ?", id).
		Update("provider_preference_id", preferenceID).Error
}

// RecordProviderDetail stores provider-reported fields for a payment that is
// still in flight (e.g. in_process). Audit only; the row stays pending.
func (p *PaymentRepository) RecordProviderDetail(ctx context.Context, id uuid.UUID, providerPaymentID string, detail datatypes.JSON) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("id = ? AND status = ?", id, db_models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"provider_payment_id": providerPaymentID,
			"provider_detail":     detail,
		}).Error
}

// ApproveAndEnroll flips the row pending -> approved and creates the
// enrollment in the same database transaction. Returns false when the row
// was no longer pending, in which case nothing was written: either another
// delivery already approved it or it ended rejected, and both are no-ops.
func (p *PaymentRepository) ApproveAndEnroll(ctx context.Context, id uuid.UUID, providerPaymentID string, detail datatypes.JSON) (bool, error) {
	applied := false

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Payment{}).
			Where("id = ? AND status = ?", id, db_models.PaymentStatusPending).
			Updates(map[string]interface{}{
				"status":              db_models.PaymentStatusApproved,
				"paid_at":             time.Now().Unix(),
				"provider_payment_id": providerPaymentID,
				"provider_detail":     detail,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var payment db_models.Payment
		if err := tx.First(&payment, "id = ?", id).Error; err != nil {
			return err
		}

		enrollment := db_models.Enrollment{
			BuyerID:   payment.BuyerID,
			CourseID:  payment.CourseID,
			PaymentID: &payment.ID,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			// Rolls back the status flip too: a payment is never left
			// approved without its enrollment.
			return err
		}

		applied = true
		return nil
	})

	return applied, err
}

func (p *PaymentRepository) MarkTerminal(ctx context.Context, id uuid.UUID, status db_models.PaymentStatus, providerPaymentID string, detail datatypes.JSON) (bool, error) {
	res := p.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("id = ? AND status = ?", id, db_models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":              status,
			"provider_payment_id": providerPaymentID,
			"provider_detail":     detail,
		})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}
