package controllers

import (
	"errors"
	"net/http"

	"aulago/internal/models/request_models"
	"aulago/internal/services"
	"aulago/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	webhookService services.WebhookServiceInterface
	logger         *zap.Logger
}

func NewPaymentController(
	paymentService services.PaymentServiceInterface,
	webhookService services.WebhookServiceInterface,
	logger *zap.Logger,
) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		webhookService: webhookService,
		logger:         logger,
	}
}

// CreateCheckout godoc
// @Summary Create a MercadoPago checkout for a course
// @Description Creates a pending payment and returns the provider redirect URL
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateCheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/checkout [post]
func (p *PaymentController) CreateCheckout(c *gin.Context) {
	var request request_models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	buyerID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	checkout, err := p.paymentService.CreateCheckout(c.Request.Context(), buyerID, request.CourseID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout created successfully")
}

// Webhook godoc
// @Summary MercadoPago payment notification endpoint
// @Description Reconciles asynchronous provider notifications against the ledger
// @Tags Payments
// @Accept json
// @Produce plain
// @Router /payments/webhook [post]
func (p *PaymentController) Webhook(c *gin.Context) {
	var notification services.WebhookNotification
	if err := c.ShouldBindJSON(&notification); err != nil {
		// Ack malformed payloads: a retry would deliver the same bytes.
		p.logger.Warn("malformed webhook payload", zap.Error(err))
		c.String(http.StatusOK, "OK")
		return
	}

	if err := p.webhookService.ProcessNotification(c.Request.Context(), notification); err != nil {
		// Non-2xx makes the provider redeliver.
		if errors.Is(err, utils.ErrProviderUnavailable) {
			c.String(http.StatusBadGateway, "provider fetch failed")
			return
		}
		c.String(http.StatusInternalServerError, "failed to process notification")
		return
	}

	c.String(http.StatusOK, "OK")
}

// GetStatus godoc
// @Summary Get the status of one of the caller's payments
// @Tags Payments
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (p *PaymentController) GetStatus(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid payment id")
		return
	}

	requesterID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	view, err := p.paymentService.GetStatus(c.Request.Context(), paymentID, requesterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Payment status fetched successfully")
}
