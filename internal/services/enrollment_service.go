package services

import (
	"context"

	"aulago/internal/models/response_models"
	"aulago/internal/repositories"
	"aulago/pkg/utils"
	"github.com/google/uuid"
)

type EnrollmentServiceInterface interface {
	ListMine(ctx context.Context, buyerID uuid.UUID) ([]response_models.EnrollmentResponse, error)
}

type EnrollmentService struct {
	enrollmentRepo repositories.IEnrollmentRepository
}

func NewEnrollmentService(enrollmentRepo repositories.IEnrollmentRepository) EnrollmentServiceInterface {
	return &EnrollmentService{enrollmentRepo: enrollmentRepo}
}

func (s *EnrollmentService) ListMine(ctx context.Context, buyerID uuid.UUID) ([]response_models.EnrollmentResponse, error) {
	enrollments, err := s.enrollmentRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.EnrollmentResponse, 0, len(enrollments))
	for _, e := range enrollments {
		views = append(views, response_models.EnrollmentResponse{
			ID:        e.ID,
			CourseID:  e.CourseID,
			PaymentID: e.PaymentID,
			CreatedAt: e.CreatedAt,
		})
	}

	return views, nil
}
