package services

import (
	"context"
	"strings"

	"aulago/internal/models/db_models"
	"aulago/internal/models/response_models"
	"aulago/internal/provider"
	"aulago/internal/repositories"
	"aulago/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentServiceInterface interface {
	CreateCheckout(ctx context.Context, buyerID, courseID uuid.UUID) (*response_models.CheckoutResponse, error)
	GetStatus(ctx context.Context, paymentID, requesterID uuid.UUID) (*response_models.PaymentView, error)
}

type PaymentService struct {
	payments    repositories.IPaymentRepository
	courses     repositories.ICourseRepository
	enrollments repositories.IEnrollmentRepository
	accounts    repositories.AccountRepository
	gateway     provider.Client
	logger      *zap.Logger
}

func NewPaymentService(
	payments repositories.IPaymentRepository,
	courses repositories.ICourseRepository,
	enrollments repositories.IEnrollmentRepository,
	accounts repositories.AccountRepository,
	gateway provider.Client,
	logger *zap.Logger,
) PaymentServiceInterface {
	return &PaymentService{
		payments:    payments,
		courses:     courses,
		enrollments: enrollments,
		accounts:    accounts,
		gateway:     gateway,
		logger:      logger,
	}
}

// CreateCheckout opens a purchase: it snapshots the course price into a
// pending ledger row, then asks MercadoPago for a checkout preference
// carrying the row id as external reference. The row is inserted before the
// provider call so a webhook can never reference a payment that does not
// exist yet.
func (p *PaymentService) CreateCheckout(ctx context.Context, buyerID, courseID uuid.UUID) (*response_models.CheckoutResponse, error) {
	buyer, err := p.accounts.FindById(ctx, buyerID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if buyer == nil {
		return nil, utils.ErrAccountNotFound
	}
	if buyer.Role != db_models.RoleStudent {
		return nil, utils.ErrBuyerRoleRequired
	}

	course, err := p.courses.GetById(ctx, courseID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if course == nil || !course.IsPublished {
		return nil, utils.ErrCourseNotFound
	}

	enrolled, err := p.enrollments.Exists(ctx, buyerID, courseID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if enrolled {
		return nil, utils.ErrAlreadyEnrolled
	}

	// Amount comes from the course row at call time, never from the client.
	payment := &db_models.Payment{
		BuyerID:     buyerID,
		CourseID:    courseID,
		AmountMinor: course.PriceMinor,
		Currency:    strings.ToUpper(course.Currency),
		Status:      db_models.PaymentStatusPending,
	}
	if err := p.payments.Insert(ctx, payment); err != nil {
		p.logger.Error("failed to insert payment row",
			zap.String("buyer_id", buyerID.String()),
			zap.String("course_id", courseID.String()),
			zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	pref, err := p.gateway.CreatePreference(ctx, provider.CreatePreferenceInput{
		ExternalReference: payment.ID.String(),
		Title:             course.Title,
		Quantity:          1,
		UnitPriceMinor:    payment.AmountMinor,
		Currency:          payment.Currency,
		PayerName:         buyer.Name,
		PayerEmail:        buyer.Email,
	})
	if err != nil {
		// The row stays pending with no preference id. It never resolves and
		// never blocks a retry purchase, since the duplicate check looks at
		// enrollments.
		p.logger.Warn("provider preference creation failed",
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err))
		return nil, utils.ErrProviderUnavailable
	}

	if err := p.payments.AttachPreference(ctx, payment.ID, pref.ID); err != nil {
		p.logger.Error("failed to attach preference id",
			zap.String("payment_id", payment.ID.String()),
			zap.String("preference_id", pref.ID),
			zap.Error(err))
	}

	p.logger.Info("checkout created",
		zap.String("payment_id", payment.ID.String()),
		zap.String("preference_id", pref.ID),
		zap.Int64("amount_minor", payment.AmountMinor))

	return &response_models.CheckoutResponse{
		PaymentID:    payment.ID,
		PreferenceID: pref.ID,
		RedirectURL:  pref.RedirectURL,
	}, nil
}

func (p *PaymentService) GetStatus(ctx context.Context, paymentID, requesterID uuid.UUID) (*response_models.PaymentView, error) {
	payment, err := p.payments.GetById(ctx, paymentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}
	if payment.BuyerID != requesterID {
		return nil, utils.ErrNotPaymentOwner
	}

	return &response_models.PaymentView{
		ID:          payment.ID,
		CourseID:    payment.CourseID,
		Status:      string(payment.Status),
		AmountMinor: payment.AmountMinor,
		Currency:    payment.Currency,
		PaidAt:      payment.PaidAt,
	}, nil
}
