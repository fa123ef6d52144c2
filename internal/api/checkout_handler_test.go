package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bozhidarvelkov/pixelmorph/internal/auth"
	"github.com/bozhidarvelkov/pixelmorph/internal/models"
	"github.com/bozhidarvelkov/pixelmorph/internal/shared"
	"github.com/bozhidarvelkov/pixelmorph/internal/transaction"
	"github.com/bozhidarvelkov/pixelmorph/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v84"
)

// --- fakes ---

type fakeTxnRepo struct {
	created []*models.Transaction
}

func (f *fakeTxnRepo) Create(ctx context.Context, txn *models.Transaction) error {
	if txn.Plan == "" || txn.BuyerID == "" {
		return shared.ErrorValidation
	}
	txn.ID = "txn-1"
	stored := *txn
	f.created = append(f.created, &stored)
	return nil
}

func (f *fakeTxnRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, txn := range f.created {
		if txn.BuyerID == buyerID {
			out = append(out, txn)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	balances map[string]int
}

func (f *fakeUserRepo) AdjustCredits(ctx context.Context, userID string, delta int) (*models.User, error) {
	if _, ok := f.balances[userID]; !ok {
		return nil, shared.ErrorNotFound
	}
	f.balances[userID] += delta
	return &models.User{ID: userID, CreditBalance: f.balances[userID]}, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return nil, shared.ErrorNotFound
}

func (f *fakeUserRepo) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	return nil, shared.ErrorNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, u *models.User) error { return nil }

func (f *fakeUserRepo) Update(ctx context.Context, u *models.User) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, clerkID string) (*models.User, error) {
	return nil, shared.ErrorNotFound
}

func (f *fakeUserRepo) GetOrCreate(ctx context.Context, clerkID, email, username, photo, firstName, lastName string) (*models.User, error) {
	return nil, shared.ErrorNotFound
}

type fakeUserService struct {
	user *models.User
}

func (f *fakeUserService) GetOrCreate(ctx context.Context, identity *auth.User) (*models.User, error) {
	return f.user, nil
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, u *models.User) error { return nil }

func (f *fakeUserService) Delete(ctx context.Context, clerkID string) (*models.User, error) {
	return f.user, nil
}

// --- helpers ---

func newCheckoutFixture(balance int) (*CheckoutHandler, *fakeTxnRepo, *fakeUserRepo) {
	txns := &fakeTxnRepo{}
	users := &fakeUserRepo{balances: map[string]int{"buyer-1": balance}}
	return NewCheckoutHandler(nil, transaction.NewService(txns, users)), txns, users
}

func completedEvent(t *testing.T, session map[string]any) *stripe.Event {
	t.Helper()
	raw, err := json.Marshal(session)
	require.NoError(t, err)
	return &stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

// --- tests ---

func TestHandleCheckoutCompleted_RecordsAndCredits(t *testing.T) {
	h, txns, users := newCheckoutFixture(10)

	event := completedEvent(t, map[string]any{
		"id":           "cs_123",
		"amount_total": 4000,
		"metadata":     map[string]string{"plan": "pro", "credits": "120", "buyerId": "buyer-1"},
	})
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", nil)

	err := h.handleCheckoutCompleted(req, event)

	require.NoError(t, err)
	require.Len(t, txns.created, 1)
	assert.Equal(t, 120, txns.created[0].Credits)
	assert.Equal(t, 130, users.balances["buyer-1"])
}

// Completed sessions that carry none of this service's metadata were started
// elsewhere (another product on the same Stripe account). They must be ACKed
// without writing anything, or the processor redelivers them forever.
func TestHandleCheckoutCompleted_SkipsForeignSession(t *testing.T) {
	h, txns, users := newCheckoutFixture(10)

	event := completedEvent(t, map[string]any{
		"id":           "cs_foreign",
		"amount_total": 999,
	})
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", nil)

	err := h.handleCheckoutCompleted(req, event)

	require.NoError(t, err)
	assert.Empty(t, txns.created, "foreign session must not be recorded")
	assert.Equal(t, 10, users.balances["buyer-1"])
}

// A session with our metadata but an unparseable credit count is a real
// fault, not a zero-credit purchase: fail so the delivery is retried rather
// than recording a payment that never credits the buyer.
func TestHandleCheckoutCompleted_BadCreditsMetadata(t *testing.T) {
	h, txns, users := newCheckoutFixture(10)

	event := completedEvent(t, map[string]any{
		"id":           "cs_123",
		"amount_total": 4000,
		"metadata":     map[string]string{"plan": "pro", "credits": "abc", "buyerId": "buyer-1"},
	})
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", nil)

	err := h.handleCheckoutCompleted(req, event)

	require.Error(t, err)
	assert.Empty(t, txns.created, "nothing recorded until credits parse")
	assert.Equal(t, 10, users.balances["buyer-1"])
}

func TestListTransactions_ReturnsBuyerHistory(t *testing.T) {
	h, _, _ := newCheckoutFixture(10)

	event := completedEvent(t, map[string]any{
		"id":           "cs_123",
		"amount_total": 4000,
		"metadata":     map[string]string{"plan": "pro", "credits": "120", "buyerId": "buyer-1"},
	})
	require.NoError(t, h.handleCheckoutCompleted(httptest.NewRequest(http.MethodPost, "/webhooks/stripe", nil), event))

	buyer := &models.User{ID: "buyer-1", ClerkID: "clerk-1"}
	handler := user.Middleware(&fakeUserService{user: buyer})(http.HandlerFunc(h.ListTransactions))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	req = req.WithContext(context.WithValue(req.Context(), auth.UserContextKey, &auth.User{ID: "clerk-1", Email: "a@b.c"}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []*models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "pro", got[0].Plan)
	assert.Equal(t, 120, got[0].Credits)
}
