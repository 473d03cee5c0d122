package response_models

import "github.com/google/uuid"

type EnrollmentResponse struct {
	ID        uuid.UUID  `json:"id"`
	CourseID  uuid.UUID  `json:"course_id"`
	PaymentID *uuid.UUID `json:"payment_id,omitempty"`
	CreatedAt int64      `json:"created_at"`
}
