package request_models

import "github.com/google/uuid"

type CreateCheckoutRequest struct {
	CourseID uuid.UUID `json:"course_id" binding:"required"`
}
