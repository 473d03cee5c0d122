package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Terminal reports whether the status admits no further transition.
// Only the first terminal status sticks; later notifications are no-ops.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected || s == PaymentStatusCancelled
}

// Payment is the ledger row for one purchase attempt. Rows are append-only:
// created pending by checkout, mutated only by the webhook reconciler,
// never deleted. The row ID doubles as the external_reference sent to
// MercadoPago so notifications can be matched back.
type Payment struct {
	BaseModel
	BuyerID     uuid.UUID     `gorm:"index"`
	CourseID    uuid.UUID     `gorm:"index"`
	AmountMinor int64         // snapshot of the course price at checkout time
	Currency    string        `gorm:"size:3"`
	Status      PaymentStatus `gorm:"index;default:pending"`

	// Gateway correlation fields
	ProviderPreferenceID *string `gorm:"index"` // nil if the preference call failed
	ProviderPaymentID    *string `gorm:"index"`

	// Raw provider-reported fields (method, order id, status detail). Audit
	// only, never used for control flow.
	ProviderDetail datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	PaidAt *int64 // unix seconds, set once on approval

	Buyer  Account `gorm:"foreignKey:BuyerID"`
	Course Course  `gorm:"foreignKey:CourseID"`
}
