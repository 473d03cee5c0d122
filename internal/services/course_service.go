package services

import (
	"context"
	"strings"

	"aulago/internal/models/db_models"
	"aulago/internal/models/request_models"
	"aulago/internal/models/response_models"
	"aulago/internal/repositories"
	"aulago/pkg/utils"
	"github.com/google/uuid"
)

type CourseServiceInterface interface {
	CreateCourse(ctx context.Context, instructorID uuid.UUID, request request_models.CreateCourseRequest) (*response_models.CourseResponse, error)
	GetCourseById(ctx context.Context, id uuid.UUID) (*response_models.CourseResponse, error)
	ListCourses(ctx context.Context) ([]response_models.CourseResponse, error)
}

type CourseService struct {
	courseRepo repositories.ICourseRepository
}

func NewCourseService(courseRepo repositories.ICourseRepository) CourseServiceInterface {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) CreateCourse(ctx context.Context, instructorID uuid.UUID, request request_models.CreateCourseRequest) (*response_models.CourseResponse, error) {
	course := &db_models.Course{
		Title:        request.Title,
		Description:  request.Description,
		CoverImage:   request.CoverImage,
		PriceMinor:   request.PriceMinor,
		Currency:     strings.ToUpper(request.Currency),
		InstructorID: instructorID,
		IsPublished:  true,
	}

	if err := s.courseRepo.Insert(ctx, course); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return courseView(course), nil
}

func (s *CourseService) GetCourseById(ctx context.Context, id uuid.UUID) (*response_models.CourseResponse, error) {
	course, err := s.courseRepo.GetById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if course == nil || !course.IsPublished {
		return nil, utils.ErrCourseNotFound
	}

	return courseView(course), nil
}

func (s *CourseService) ListCourses(ctx context.Context) ([]response_models.CourseResponse, error) {
	courses, err := s.courseRepo.ListPublished(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	views := make([]response_models.CourseResponse, 0, len(courses))
	for i := range courses {
		views = append(views, *courseView(&courses[i]))
	}

	return views, nil
}

func courseView(course *db_models.Course) *response_models.CourseResponse {
	return &response_models.CourseResponse{
		ID:           course.ID,
		Title:        course.Title,
		Description:  course.Description,
		CoverImage:   course.CoverImage,
		PriceMinor:   course.PriceMinor,
		Currency:     course.Currency,
		InstructorID: course.InstructorID,
	}
}
