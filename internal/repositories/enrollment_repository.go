package repositories

import (
	"context"

	"aulago/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IEnrollmentRepository interface {
	Exists(ctx context.Context, buyerID, courseID uuid.UUID) (bool, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]db_models.Enrollment, error)
}

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) IEnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (e *EnrollmentRepository) Exists(ctx context.Context, buyerID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := e.db.WithContext(ctx).
		Model(&db_models.Enrollment{}).
		Where("buyer_id = ? AND course_id = ?", buyerID, courseID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (e *EnrollmentRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]db_models.Enrollment, error) {
	var enrollments []db_models.Enrollment
	err := e.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&enrollments).Error

	if err != nil {
		return nil, err
	}

	return enrollments, nil
}
