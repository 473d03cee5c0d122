package course_fx

import (
	"aulago/internal/api/controllers"
	"aulago/internal/repositories"
	"aulago/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideCourseRepo, provideCourseService, provideCourseController)

func provideCourseRepo(db *gorm.DB) repositories.ICourseRepository {
	return repositories.NewCourseRepository(db)
}

func provideCourseService(courseRepo repositories.ICourseRepository) services.CourseServiceInterface {
	return services.NewCourseService(courseRepo)
}

func provideCourseController(courseService services.CourseServiceInterface) *controllers.CourseController {
	return controllers.NewCourseController(courseService)
}
