package payment_fx

import (
	"log"
	"os"

	"aulago/internal/api/controllers"
	"aulago/internal/provider"
	"aulago/internal/repositories"
	"aulago/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideProviderConfig,
	provideProviderClient,
	providePaymentRepo,
	providePaymentService,
	provideWebhookService,
	providePaymentController,
)

func provideProviderConfig() provider.MercadoPagoConfig {
	return provider.MercadoPagoConfig{
		AccessToken:     os.Getenv("MP_ACCESS_TOKEN"),
		SuccessURL:      os.Getenv("MP_SUCCESS_URL"),
		FailureURL:      os.Getenv("MP_FAILURE_URL"),
		PendingURL:      os.Getenv("MP_PENDING_URL"),
		NotificationURL: os.Getenv("MP_NOTIFICATION_URL"),
	}
}

func provideProviderClient(cfg provider.MercadoPagoConfig) provider.Client {
	client, err := provider.NewMercadoPagoClient(cfg)
	if err != nil {
		log.Printf("Error initializing MercadoPago client: %v", err)
	}

	return client
}

func providePaymentRepo(db *gorm.DB) repositories.IPaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	payments repositories.IPaymentRepository,
	courses repositories.ICourseRepository,
	enrollments repositories.IEnrollmentRepository,
	accounts repositories.AccountRepository,
	client provider.Client,
	logger *zap.Logger,
) services.PaymentServiceInterface {
	return services.NewPaymentService(payments, courses, enrollments, accounts, client, logger)
}

func provideWebhookService(
	payments repositories.IPaymentRepository,
	client provider.Client,
	logger *zap.Logger,
) services.WebhookServiceInterface {
	return services.NewWebhookService(payments, client, logger)
}

func providePaymentController(
	paymentService services.PaymentServiceInterface,
	webhookService services.WebhookServiceInterface,
	logger *zap.Logger,
) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService, webhookService, logger)
}
