package db_models

import (
	"github.com/google/uuid"
)

// Enrollment grants a buyer access to a course. The unique index backs the
// at-most-once guarantee of the webhook reconciler: a duplicate insert for
// the same (buyer, course) pair fails at the database.
type Enrollment struct {
	BaseModel
	BuyerID   uuid.UUID  `gorm:"uniqueIndex:idx_enrollment_buyer_course"`
	CourseID  uuid.UUID  `gorm:"uniqueIndex:idx_enrollment_buyer_course"`
	PaymentID *uuid.UUID `gorm:"index"` // nullable for manually granted access

	Buyer  Account `gorm:"foreignKey:BuyerID"`
	Course Course  `gorm:"foreignKey:CourseID"`
}
