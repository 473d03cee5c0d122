package request_models

type CreateCourseRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=120"`
	Description *string `json:"description"`
	CoverImage  string  `json:"cover_image"`
	PriceMinor  int64   `json:"price_minor" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"required,len=3"`
}
