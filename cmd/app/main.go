package main

import (
	"context"
	"log"
	"os"

	"aulago/cmd/fx/account_fx"
	"aulago/cmd/fx/course_fx"
	"aulago/cmd/fx/db_fx"
	"aulago/cmd/fx/enrollment_fx"
	"aulago/cmd/fx/payment_fx"
	"aulago/internal/api/controllers"
	"aulago/internal/models/db_models"
	"aulago/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(ProvideLogger),
		db_fx.Module,
		account_fx.Module,
		course_fx.Module,
		enrollment_fx.Module,
		payment_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, courseController, enrollmentController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	paymentController *controllers.PaymentController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	coursesGroup := r.Group("/courses")
	coursesGroup.GET("", courseController.ListCourses)
	coursesGroup.GET("/:id", courseController.GetCourse)
	coursesGroup.POST("",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(db_models.RoleInstructor),
		courseController.CreateCourse)

	enrollmentsGroup := r.Group("/enrollments")
	enrollmentsGroup.GET("/mine", middleware.JWTAuthMiddleware(), enrollmentController.ListMine)

	paymentsGroup := r.Group("/payments")
	paymentsGroup.POST("/checkout", middleware.JWTAuthMiddleware(), paymentController.CreateCheckout)
	paymentsGroup.GET("/:id", middleware.JWTAuthMiddleware(), paymentController.GetStatus)
	// No auth on the webhook: MercadoPago calls it directly. The handler
	// trusts nothing in the body beyond the payment id pointer.
	paymentsGroup.POST("/webhook", paymentController.Webhook)
}
