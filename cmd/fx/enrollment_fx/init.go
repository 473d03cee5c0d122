package enrollment_fx

import (
	"aulago/internal/api/controllers"
	"aulago/internal/repositories"
	"aulago/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideEnrollmentRepo, provideEnrollmentService, provideEnrollmentController)

func provideEnrollmentRepo(db *gorm.DB) repositories.IEnrollmentRepository {
	return repositories.NewEnrollmentRepository(db)
}

func provideEnrollmentService(enrollmentRepo repositories.IEnrollmentRepository) services.EnrollmentServiceInterface {
	return services.NewEnrollmentService(enrollmentRepo)
}

func provideEnrollmentController(enrollmentService services.EnrollmentServiceInterface) *controllers.EnrollmentController {
	return controllers.NewEnrollmentController(enrollmentService)
}
