package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingRepo "ziplay/database/repository/booking"
	"ziplay/models"
	"ziplay/services/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCartService struct {
	items []models.LineItem
	total float64
	err   error
}

func (s *stubCartService) LoadCart(context.Context, string) ([]models.LineItem, float64, error) {
	return s.items, s.total, s.err
}

func (s *stubCartService) AddEntry(context.Context, string, cart.AddEntryInput) ([]models.CartEntry, error) {
	return nil, nil
}

func (s *stubCartService) ChangeQuantity(context.Context, string, string, int) ([]models.CartEntry, error) {
	return nil, nil
}

func (s *stubCartService) RemoveActivity(context.Context, string, string) ([]models.CartEntry, error) {
	return nil, nil
}

type stubUserRepo struct {
	user *models.User
}

func (s *stubUserRepo) GetByID(string) (*models.User, error)    { return s.user, nil }
func (s *stubUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (s *stubUserRepo) Create(*models.User) error               { return nil }
func (s *stubUserRepo) Update(*models.User) error               { return nil }
func (s *stubUserRepo) Delete(string) error                     { return nil }

type mockBookingRepo struct {
	mu       sync.Mutex
	created  []models.Booking
	createFn func(*models.Booking) error
}

func (m *mockBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createFn != nil {
		if err := m.createFn(booking); err != nil {
			return err
		}
	}
	m.created = append(m.created, *booking)
	return nil
}

func (m *mockBookingRepo) ListByUser(context.Context, string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created, nil
}

type mockGateway struct {
	orderID    string
	createErr  error
	verifyErr  error
	gotAmount  int64
	gotCurr    string
	gotReceipt string
}

func (m *mockGateway) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (string, error) {
	m.gotAmount = amountMinor
	m.gotCurr = currency
	m.gotReceipt = receipt
	if m.createErr != nil {
		return "", m.createErr
	}
	return m.orderID, nil
}

func (m *mockGateway) VerifySignature(string, string, string) error { return m.verifyErr }

type memAttemptStore struct {
	mu       sync.Mutex
	attempts map[string]models.CheckoutAttempt
}

func newMemAttemptStore() *memAttemptStore {
	return &memAttemptStore{attempts: make(map[string]models.CheckoutAttempt)}
}

func (m *memAttemptStore) Save(_ context.Context, attempt *models.CheckoutAttempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[attempt.OrderID] = *attempt
	return nil
}

func (m *memAttemptStore) Get(_ context.Context, orderID string) (*models.CheckoutAttempt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.attempts[orderID]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	out := a
	return &out, nil
}

type mockEnqueuer struct {
	mu     sync.Mutex
	orders []string
}

func (m *mockEnqueuer) EnqueueReconcile(_ context.Context, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, orderID)
	return nil
}

type mockCartClearer struct {
	mu       sync.Mutex
	cleared  []string
	clearErr error
}

func (m *mockCartClearer) GetEntries(context.Context, string) ([]models.CartEntry, error) {
	return nil, nil
}

func (m *mockCartClearer) IncrementEntry(context.Context, string, string, string, string, int) (bool, error) {
	return false, nil
}

func (m *mockCartClearer) AppendEntry(context.Context, string, models.CartEntry) (bool, error) {
	return true, nil
}

func (m *mockCartClearer) AdjustActivityCount(context.Context, string, string, int, bool) error {
	return nil
}

func (m *mockCartClearer) RemoveActivity(context.Context, string, string) error { return nil }

func (m *mockCartClearer) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = append(m.cleared, userID)
	return nil
}

type checkoutFixture struct {
	svc      *DefaultCheckoutService
	cart     *stubCartService
	gateway  *mockGateway
	attempts *memAttemptStore
	bookings *mockBookingRepo
	enqueuer *mockEnqueuer
	clearer  *mockCartClearer
}

func newFixture() *checkoutFixture {
	f := &checkoutFixture{
		cart: &stubCartService{
			items: []models.LineItem{
				{ActivityID: "A1", Title: "Go Karting", Date: "2024-05-01", Time: "10:00 AM", Price: 300, Quantity: 2, Subtotal: 600},
			},
			total: 600,
		},
		gateway:  &mockGateway{orderID: "order_xyz"},
		attempts: newMemAttemptStore(),
		bookings: &mockBookingRepo{},
		enqueuer: &mockEnqueuer{},
		clearer:  &mockCartClearer{},
	}
	f.svc = &DefaultCheckoutService{
		Cart:       f.cart,
		CartRepo:   f.clearer,
		Users:      &stubUserRepo{user: &models.User{ID: "u1", Email: "u1@example.com"}},
		Bookings:   f.bookings,
		Gateway:    f.gateway,
		Attempts:   f.attempts,
		Reconciler: f.enqueuer,
		Logger:     zap.NewNop(),
		KeyID:      "rzp_test_key",
		Currency:   "INR",
	}
	return f
}

func (f *checkoutFixture) seedAttempt(status string) {
	_ = f.attempts.Save(context.Background(), &models.CheckoutAttempt{
		ID:        "attempt-1",
		UserID:    "u1",
		UserEmail: "u1@example.com",
		OrderID:   "order_xyz",
		Amount:    600,
		Currency:  "INR",
		LineItems: f.cart.items,
		Status:    status,
	})
}

func TestCreateOrderChargesMinorUnits(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateOrder(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "order_xyz", resp.OrderID)
	assert.Equal(t, int64(60000), resp.Amount)
	assert.Equal(t, int64(60000), f.gateway.gotAmount)
	assert.Equal(t, "INR", f.gateway.gotCurr)
	assert.Equal(t, "rzp_test_key", resp.KeyID)
	assert.Equal(t, 600.0, resp.Total)
	assert.NotEmpty(t, f.gateway.gotReceipt)

	attempt, err := f.attempts.Get(context.Background(), "order_xyz")
	require.NoError(t, err)
	assert.Equal(t, models.StatusOrderRequested, attempt.Status)
	assert.Equal(t, "u1", attempt.UserID)
	assert.Equal(t, f.cart.items, attempt.LineItems)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	f := newFixture()
	f.cart.items = nil
	f.cart.total = 0

	_, err := f.svc.CreateOrder(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, f.gateway.gotCurr)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	f := newFixture()
	f.gateway.createErr = errors.New("gateway down")

	_, err := f.svc.CreateOrder(context.Background(), "u1")
	require.Error(t, err)

	_, err = f.attempts.Get(context.Background(), "order_xyz")
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestConfirmHappyPath(t *testing.T) {
	f := newFixture()
	f.seedAttempt(models.StatusOrderRequested)

	booking, err := f.svc.Confirm(context.Background(), "u1", ConfirmInput{
		OrderID:   "order_xyz",
		PaymentID: "pay_123",
		Signature: "sig",
	})
	require.NoError(t, err)

	require.Len(t, f.bookings.created, 1)
	assert.Equal(t, 600.0, booking.TotalAmount)
	assert.Equal(t, "pay_123", booking.PaymentID)
	assert.Equal(t, models.PaymentStatusSuccess, booking.PaymentStatus)
	require.Len(t, booking.Activities, 1)
	assert.Equal(t, "Go Karting", booking.Activities[0].Title)
	assert.Equal(t, "2024-05-01", booking.Activities[0].Date)

	assert.Equal(t, []string{"u1"}, f.clearer.cleared)
	assert.Empty(t, f.enqueuer.orders)

	attempt, err := f.attempts.Get(context.Background(), "order_xyz")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, attempt.Status)
}

func TestConfirmRejectsBadSignature(t *testing.T) {
	f := newFixture()
	f.seedAttempt(models.StatusOrderRequested)
	f.gateway.verifyErr = ErrBadSignature

	_, err := f.svc.Confirm(context.Background(), "u1", ConfirmInput{
		OrderID:   "order_xyz",
		PaymentID: "pay_123",
		Signature: "forged",
	})
	assert.ErrorIs(t, err, ErrBadSignature)
	assert.Empty(t, f.bookings.created)
	assert.Empty(t, f.clearer.cleared)
}

func TestConfirmWrongUser(t *testing.T) {
	f := newFixture()
	f.seedAttempt(models.StatusOrderRequested)

	_, err := f.svc.Confirm(context.Background(), "someone-else", ConfirmInput{
		OrderID:   "order_xyz",
		PaymentID: "pay_123",
		Signature: "sig",
	})
	assert.ErrorIs(t, err, ErrAttemptNotFound)
	assert.Empty(t, f.bookings.created)
}

func TestConfirmUnknownOrder(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Confirm(context.Background(), "u1", ConfirmInput{
		OrderID:   "order_missing",
		PaymentID: "pay_123",
		Signature: "sig",
	})
	assert.ErrorIs(t, err, ErrAttemptNotFound)
}

func TestConfirmAlreadyConfirmed(t *testing.T) {
	f := newFixture()
	f.seedAttempt(models.StatusDone)

	_, err := f.svc.Confirm(context.Background(), "u1", ConfirmInput{
		OrderID:   "order_xyz",
		PaymentID: "pay_123",
		Signature: "sig",
	})
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Empty(t, f.bookings.created)
}

func TestConfirmBookingWriteFailureKeepsCart(t *testing.T) {
	f := newFixture()
	f.seedAttempt(models.StatusOrderRequested)
	f.bookings.createFn = func(*models.Booking) error { return errors.New("mongo down") }

	_, err := f.svc.Confirm(context.Background(), "u1", ConfirmInput{
		OrderID:   "order_xyz",
		PaymentID: "pay_123",
		Signature: "sig",
	})
	assert.ErrorIs(t, err, ErrBookingPending)

	// Payment is captured but the booking is not recorded: the cart must
	// survive and the reconciliation task must be queued.
	assert.Empty(t, f.clearer.cleared)
	assert.Equal(t, []string{"order_xyz"}, f.enqueuer.orders)

	attempt, err := f.attempts.Get(context.Background(), "order_xyz")
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailedPartial, attempt.Status)
	assert.Equal(t, "pay_123", attempt.PaymentID)
}

func TestConfirmTreatsDuplicateBookingAsSuccess(t *testing.T) {
	f := newFixture()
	f.seedAttempt(models.StatusPersisting)
	f.bookings.createFn = func(*models.Booking) error { return bookingRepo.ErrDuplicate }

	booking, err := f.svc.Confirm(context.Background(), "u1", ConfirmInput{
		OrderID:   "order_xyz",
		PaymentID: "pay_123",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, []string{"u1"}, f.clearer.cleared)
}

func TestConfirmCartClearFailureSchedulesRetry(t *testing.T) {
	f := newFixture()
	f.seedAttempt(models.StatusOrderRequested)
	f.clearer.clearErr = errors.New("redis hiccup")

	booking, err := f.svc.Confirm(context.Background(), "u1", ConfirmInput{
		OrderID:   "order_xyz",
		PaymentID: "pay_123",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, []string{"order_xyz"}, f.enqueuer.orders)

	// The attempt must stay persisting so the worker does not skip it and
	// actually re-runs the clear.
	attempt, err := f.attempts.Get(context.Background(), "order_xyz")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPersisting, attempt.Status)
}

func TestBuildBookingSnapshotsLineItems(t *testing.T) {
	attempt := &models.CheckoutAttempt{
		UserID:    "u1",
		UserEmail: "u1@example.com",
		OrderID:   "order_xyz",
		PaymentID: "pay_123",
		Amount:    750,
		LineItems: []models.LineItem{
			{ActivityID: "A1", Title: "Go Karting", Date: "2024-05-01", Time: "10:00 AM", Price: 300, Quantity: 2},
			{ActivityID: "A2", Title: "Bowling", Date: "2024-05-02", Time: "03:00 PM", Price: 150, Quantity: 1},
		},
	}

	booking := BuildBooking(attempt)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, 750.0, booking.TotalAmount)
	require.Len(t, booking.Activities, 2)
	assert.Equal(t, "A2", booking.Activities[1].ActivityID)
	assert.Equal(t, 1, booking.Activities[1].Quantity)
	assert.Equal(t, models.PaymentStatusSuccess, booking.PaymentStatus)
}
