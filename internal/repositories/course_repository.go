package repositories

import (
	"context"
	"errors"

	"aulago/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ICourseRepository interface {
	Insert(ctx context.Context, course *db_models.Course) error
	GetById(ctx context.Context, id uuid.UUID) (*db_models.Course, error)
	ListPublished(ctx context.Context) ([]db_models.Course, error)
}

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) ICourseRepository {
	return &CourseRepository{db: db}
}

func (c *CourseRepository) Insert(ctx context.Context, course *db_models.Course) error {
	return c.db.WithContext(ctx).Create(course).Error
}

func (c *CourseRepository) GetById(ctx context.Context, id uuid.UUID) (*db_models.Course, error) {
	var course db_models.Course
	err := c.db.WithContext(ctx).First(&course, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &course, nil
}

func (c *CourseRepository) ListPublished(ctx context.Context) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := c.db.WithContext(ctx).
		Where("is_published = TRUE").
		Order("created_at DESC").
		Find(&courses).Error

	if err != nil {
		return nil, err
	}

	return courses, nil
}
