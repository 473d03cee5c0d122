package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"aulago/internal/models/db_models"
	"aulago/internal/provider"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Function-field mocks for the checkout-path collaborators.

type mockAccountRepo struct {
	FindByIdFunc func(ctx context.Context, id string) (*db_models.Account, error)
}

func (m *mockAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	return nil
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	if m.FindByIdFunc != nil {
		return m.FindByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return nil, nil
}

type mockCourseRepo struct {
	GetByIdFunc func(ctx context.Context, id uuid.UUID) (*db_models.Course, error)
}

func (m *mockCourseRepo) Insert(ctx context.Context, course *db_models.Course) error { return nil }

func (m *mockCourseRepo) GetById(ctx context.Context, id uuid.UUID) (*db_models.Course, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCourseRepo) ListPublished(ctx context.Context) ([]db_models.Course, error) {
	return nil, nil
}

type mockEnrollmentRepo struct {
	ExistsFunc func(ctx context.Context, buyerID, courseID uuid.UUID) (bool, error)
}

func (m *mockEnrollmentRepo) Exists(ctx context.Context, buyerID, courseID uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, buyerID, courseID)
	}
	return false, nil
}

func (m *mockEnrollmentRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]db_models.Enrollment, error) {
	return nil, nil
}

type mockProvider struct {
	CreatePreferenceFunc func(ctx context.Context, in provider.CreatePreferenceInput) (*provider.Preference, error)
	GetPaymentFunc       func(ctx context.Context, id string) (*provider.PaymentInfo, error)
	getPaymentCalls      atomic.Int32
}

func (m *mockProvider) CreatePreference(ctx context.Context, in provider.CreatePreferenceInput) (*provider.Preference, error) {
	if m.CreatePreferenceFunc != nil {
		return m.CreatePreferenceFunc(ctx, in)
	}
	return &provider.Preference{ID: "pref-1", RedirectURL: "https://mp.example/init"}, nil
}

func (m *mockProvider) GetPayment(ctx context.Context, id string) (*provider.PaymentInfo, error) {
	m.getPaymentCalls.Add(1)
	if m.GetPaymentFunc != nil {
		return m.GetPaymentFunc(ctx, id)
	}
	return nil, errors.New("no payment configured")
}

// fakeLedger is an in-memory IPaymentRepository whose terminal transitions
// behave like the real status-guarded UPDATEs, so the reconciler's
// idempotency can be exercised, including under concurrency.
type fakeLedger struct {
	mu          sync.Mutex
	rows        map[uuid.UUID]*db_models.Payment
	enrollments []db_models.Enrollment
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: make(map[uuid.UUID]*db_models.Payment)}
}

func (f *fakeLedger) Insert(ctx context.Context, payment *db_models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	cp := *payment
	f.rows[payment.ID] = &cp
	return nil
}

func (f *fakeLedger) GetById(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeLedger) AttachPreference(ctx context.Context, id uuid.UUID, preferenceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if row, ok := f.rows[id]; ok {
		row.ProviderPreferenceID = &preferenceID
	}
	return nil
}

func (f *fakeLedger) RecordProviderDetail(ctx context.Context, id uuid.UUID, providerPaymentID string, detail datatypes.JSON) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Status != db_models.PaymentStatusPending {
		return nil
	}
	row.ProviderPaymentID = &providerPaymentID
	row.ProviderDetail = detail
	return nil
}

func (f *fakeLedger) ApproveAndEnroll(ctx context.Context, id uuid.UUID, providerPaymentID string, detail datatypes.JSON) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Status != db_models.PaymentStatusPending {
		return false, nil
	}
	row.Status = db_models.PaymentStatusApproved
	now := time.Now().Unix()
	row.PaidAt = &now
	row.ProviderPaymentID = &providerPaymentID
	row.ProviderDetail = detail
	f.enrollments = append(f.enrollments, db_models.Enrollment{
		BuyerID:   row.BuyerID,
		CourseID:  row.CourseID,
		PaymentID: &row.ID,
	})
	return true, nil
}

func (f *fakeLedger) MarkTerminal(ctx context.Context, id uuid.UUID, status db_models.PaymentStatus, providerPaymentID string, detail datatypes.JSON) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.Status != db_models.PaymentStatusPending {
		return false, nil
	}
	row.Status = status
	row.ProviderPaymentID = &providerPaymentID
	row.ProviderDetail = detail
	return true, nil
}

func (f *fakeLedger) enrollmentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.enrollments)
}
