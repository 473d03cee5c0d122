package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aulago/internal/models/response_models"
	"aulago/internal/services"
	"aulago/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type mockPaymentService struct {
	CreateCheckoutFunc func(ctx context.Context, buyerID, courseID uuid.UUID) (*response_models.CheckoutResponse, error)
	GetStatusFunc      func(ctx context.Context, paymentID, requesterID uuid.UUID) (*response_models.PaymentView, error)
}

func (m *mockPaymentService) CreateCheckout(ctx context.Context, buyerID, courseID uuid.UUID) (*response_models.CheckoutResponse, error) {
	if m.CreateCheckoutFunc != nil {
		return m.CreateCheckoutFunc(ctx, buyerID, courseID)
	}
	return nil, utils.ErrCourseNotFound
}

func (m *mockPaymentService) GetStatus(ctx context.Context, paymentID, requesterID uuid.UUID) (*response_models.PaymentView, error) {
	if m.GetStatusFunc != nil {
		return m.GetStatusFunc(ctx, paymentID, requesterID)
	}
	return nil, utils.ErrPaymentNotFound
}

type mockWebhookService struct {
	ProcessNotificationFunc func(ctx context.Context, notification services.WebhookNotification) error
}

func (m *mockWebhookService) ProcessNotification(ctx context.Context, notification services.WebhookNotification) error {
	if m.ProcessNotificationFunc != nil {
		return m.ProcessNotificationFunc(ctx, notification)
	}
	return nil
}

func setUserID(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newPaymentRouter(userID string, paymentSvc services.PaymentServiceInterface, webhookSvc services.WebhookServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPaymentController(paymentSvc, webhookSvc, zap.NewNop())

	r := gin.New()
	payments := r.Group("/payments")
	payments.POST("/checkout", setUserID(userID), controller.CreateCheckout)
	payments.GET("/:id", setUserID(userID), controller.GetStatus)
	payments.POST("/webhook", controller.Webhook)
	return r
}

func TestWebhook_AcksMalformedPayload(t *testing.T) {
	r := newPaymentRouter("", &mockPaymentService{}, &mockWebhookService{})

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("malformed payload should be acknowledged with 200, got %d", w.Code)
	}
}

func TestWebhook_OkOnProcessedNotification(t *testing.T) {
	var got services.WebhookNotification
	webhookSvc := &mockWebhookService{ProcessNotificationFunc: func(ctx context.Context, n services.WebhookNotification) error {
		got = n
		return nil
	}}
	r := newPaymentRouter("", &mockPaymentService{}, webhookSvc)

	body := []byte(`{"type":"payment","data":{"id":"12345"}}`)
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("expected body OK, got %q", w.Body.String())
	}
	if got.Type != "payment" || got.Data.ID != "12345" {
		t.Errorf("notification not forwarded: %+v", got)
	}
}

func TestWebhook_RetriableFailureIsNon2xx(t *testing.T) {
	webhookSvc := &mockWebhookService{ProcessNotificationFunc: func(ctx context.Context, n services.WebhookNotification) error {
		return utils.ErrProviderUnavailable
	}}
	r := newPaymentRouter("", &mockPaymentService{}, webhookSvc)

	body := []byte(`{"type":"payment","data":{"id":"12345"}}`)
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("provider fetch failures must trigger a retry via non-2xx, got %d", w.Code)
	}
}

func TestCreateCheckout_ReturnsRedirect(t *testing.T) {
	buyerID := uuid.New()
	courseID := uuid.New()
	paymentID := uuid.New()

	paymentSvc := &mockPaymentService{CreateCheckoutFunc: func(ctx context.Context, b, c uuid.UUID) (*response_models.CheckoutResponse, error) {
		if b != buyerID || c != courseID {
			t.Errorf("unexpected args: buyer %s course %s", b, c)
		}
		return &response_models.CheckoutResponse{
			PaymentID:    paymentID,
			PreferenceID: "pref-9",
			RedirectURL:  "https://mp.example/init/9",
		}, nil
	}}
	r := newPaymentRouter(buyerID.String(), paymentSvc, &mockWebhookService{})

	body, _ := json.Marshal(gin.H{"course_id": courseID})
	req := httptest.NewRequest(http.MethodPost, "/payments/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp utils.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response envelope: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("expected success envelope, got %+v", resp)
	}
}

func TestCreateCheckout_AlreadyEnrolledIsBadRequest(t *testing.T) {
	buyerID := uuid.New()
	paymentSvc := &mockPaymentService{CreateCheckoutFunc: func(ctx context.Context, b, c uuid.UUID) (*response_models.CheckoutResponse, error) {
		return nil, utils.ErrAlreadyEnrolled
	}}
	r := newPaymentRouter(buyerID.String(), paymentSvc, &mockWebhookService{})

	body, _ := json.Marshal(gin.H{"course_id": uuid.New()})
	req := httptest.NewRequest(http.MethodPost, "/payments/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetStatus_ForbiddenForNonOwner(t *testing.T) {
	requesterID := uuid.New()
	paymentSvc := &mockPaymentService{GetStatusFunc: func(ctx context.Context, p, r uuid.UUID) (*response_models.PaymentView, error) {
		return nil, utils.ErrNotPaymentOwner
	}}
	r := newPaymentRouter(requesterID.String(), paymentSvc, &mockWebhookService{})

	req := httptest.NewRequest(http.MethodGet, "/payments/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestGetStatus_NotFound(t *testing.T) {
	requesterID := uuid.New()
	r := newPaymentRouter(requesterID.String(), &mockPaymentService{}, &mockWebhookService{})

	req := httptest.NewRequest(http.MethodGet, "/payments/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
