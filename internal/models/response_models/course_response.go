package response_models

import "github.com/google/uuid"

type CourseResponse struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description,omitempty"`
	CoverImage   string    `json:"cover_image,omitempty"`
	PriceMinor   int64     `json:"price_minor"`
	Currency     string    `json:"currency"`
	InstructorID uuid.UUID `json:"instructor_id"`
}
