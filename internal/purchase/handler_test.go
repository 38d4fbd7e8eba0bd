// AngelaMos | 2026
// handler_test.go

package purchase_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/middleware"
	"github.com/proper-parts/server/internal/purchase"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListAll(ctx context.Context) ([]purchase.Purchase, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]purchase.Purchase), args.Error(1)
}

func (m *MockRepository) ListByEmail(ctx context.Context, email string) ([]purchase.Purchase, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]purchase.Purchase), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*purchase.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchase.Purchase), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, p *purchase.Purchase) (*core.InsertAck, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.InsertAck), args.Error(1)
}

func (m *MockRepository) MarkPaid(ctx context.Context, id, transactionID string) (*core.UpdateAck, error) {
	args := m.Called(ctx, id, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.UpdateAck), args.Error(1)
}

func (m *MockRepository) Ship(ctx context.Context, id string) (*core.UpdateAck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.UpdateAck), args.Error(1)
}

func (m *MockRepository) DeleteByID(ctx context.Context, id string) (*core.DeleteAck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.DeleteAck), args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, doc bson.M) (*core.InsertAck, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.InsertAck), args.Error(1)
}

type stubVerifier struct{}

func (stubVerifier) VerifyToken(
	ctx context.Context,
	token string,
) (*middleware.TokenClaims, error) {
	return &middleware.TokenClaims{Email: "buyer@example.com"}, nil
}

type stubRoles struct{}

func (stubRoles) RoleByEmail(ctx context.Context, email string) (string, error) {
	return "user", nil
}

func newRouter(repo purchase.Repository, payments purchase.PaymentRecorder) *chi.Mux {
	r := chi.NewRouter()
	guard := middleware.NewGuard(stubVerifier{}, stubRoles{})
	purchase.NewHandler(repo, payments).RegisterRoutes(r, guard)
	return r
}

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer token")
	return req
}

func TestListByEmail(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListByEmail", mock.Anything, "buyer@example.com").
		Return([]purchase.Purchase{
			{Email: "buyer@example.com", ToolID: "t1", Price: 89.99},
		}, nil).Once()

	rec := httptest.NewRecorder()
	newRouter(repo, new(MockRecorder)).
		ServeHTTP(rec, authedRequest(http.MethodGet, "/purchase/buyer@example.com", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "buyer@example.com")
	repo.AssertExpectations(t)
}

func TestCreatePurchase(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*purchase.Purchase")).
		Return(&core.InsertAck{InsertedID: "p1"}, nil).Once()

	body := `{"email":"buyer@example.com","toolId":"t1","price":89.99,"quantity":2}`
	rec := httptest.NewRecorder()
	newRouter(repo, new(MockRecorder)).
		ServeHTTP(rec, authedRequest(http.MethodPost, "/purchase", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insertedId":"p1"`)
	repo.AssertExpectations(t)
}

func TestCreatePurchase_MissingToolID(t *testing.T) {
	repo := new(MockRepository)

	body := `{"email":"buyer@example.com","price":89.99}`
	rec := httptest.NewRecorder()
	newRouter(repo, new(MockRecorder)).
		ServeHTTP(rec, authedRequest(http.MethodPost, "/purchase", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGetPurchase_PublicRoute(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByID", mock.Anything, "64f1b2a3c4d5e6f708192a3b").
		Return(&purchase.Purchase{Email: "buyer@example.com", ToolID: "t1"}, nil).
		Once()

	// No Authorization header: lookup by id is public.
	req := httptest.NewRequest(http.MethodGet, "/myPurchase/64f1b2a3c4d5e6f708192a3b", nil)
	rec := httptest.NewRecorder()
	newRouter(repo, new(MockRecorder)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestConfirmPayment(t *testing.T) {
	repo := new(MockRepository)
	payments := new(MockRecorder)

	payments.On("Record", mock.Anything, mock.Anything).
		Return(&core.InsertAck{InsertedID: "pay1"}, nil).Once()
	repo.On("MarkPaid", mock.Anything, "64f1b2a3c4d5e6f708192a3b", "txn_123").
		Return(&core.UpdateAck{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

	body := `{"transactionId":"txn_123","email":"buyer@example.com","amount":8999}`
	rec := httptest.NewRecorder()
	newRouter(repo, payments).
		ServeHTTP(rec, authedRequest(http.MethodPatch, "/myPurchase/64f1b2a3c4d5e6f708192a3b", body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"modifiedCount":1`)
	repo.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestConfirmPayment_Replay(t *testing.T) {
	repo := new(MockRepository)
	payments := new(MockRecorder)

	payments.On("Record", mock.Anything, mock.Anything).
		Return(&core.InsertAck{InsertedID: "pay1"}, nil).Twice()
	repo.On("MarkPaid", mock.Anything, "64f1b2a3c4d5e6f708192a3b", "txn_123").
		Return(&core.UpdateAck{MatchedCount: 1, ModifiedCount: 1}, nil).Once()
	repo.On("MarkPaid", mock.Anything, "64f1b2a3c4d5e6f708192a3b", "txn_123").
		Return(&core.UpdateAck{MatchedCount: 1, ModifiedCount: 0}, nil).Once()

	router := newRouter(repo, payments)
	body := `{"transactionId":"txn_123","email":"buyer@example.com","amount":8999}`

	// Replaying the confirmation appends a second payment document but the
	// purchase update is a plain $set: same arguments, nothing left to modify.
	for _, want := range []string{`"modifiedCount":1`, `"modifiedCount":0`} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, authedRequest(
			http.MethodPatch,
			"/myPurchase/64f1b2a3c4d5e6f708192a3b",
			body,
		))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), want)
	}

	payments.AssertNumberOfCalls(t, "Record", 2)
	repo.AssertNumberOfCalls(t, "MarkPaid", 2)
	repo.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestConfirmPayment_MissingTransactionID(t *testing.T) {
	repo := new(MockRepository)
	payments := new(MockRecorder)

	body := `{"email":"buyer@example.com","amount":8999}`
	rec := httptest.NewRecorder()
	newRouter(repo, payments).
		ServeHTTP(rec, authedRequest(http.MethodPatch, "/myPurchase/64f1b2a3c4d5e6f708192a3b", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "transactionId")
	payments.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPayment_RecordFailureStopsUpdate(t *testing.T) {
	repo := new(MockRepository)
	payments := new(MockRecorder)

	payments.On("Record", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("insert payment: connection reset")).Once()

	body := `{"transactionId":"txn_123"}`
	rec := httptest.NewRecorder()
	newRouter(repo, payments).
		ServeHTTP(rec, authedRequest(http.MethodPatch, "/myPurchase/64f1b2a3c4d5e6f708192a3b", body))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
	payments.AssertExpectations(t)
}

func TestShipOrder(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Ship", mock.Anything, "64f1b2a3c4d5e6f708192a3b").
		Return(&core.UpdateAck{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

	rec := httptest.NewRecorder()
	newRouter(repo, new(MockRecorder)).
		ServeHTTP(rec, authedRequest(http.MethodPatch, "/manageOrder/64f1b2a3c4d5e6f708192a3b", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestDeleteOrder_NotFoundID(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteByID", mock.Anything, "bad").
		Return(nil, fmt.Errorf("malformed id %q: %w", "bad", core.ErrInvalidInput)).
		Once()

	rec := httptest.NewRecorder()
	newRouter(repo, new(MockRecorder)).
		ServeHTTP(rec, authedRequest(http.MethodDelete, "/manageOrder/bad", ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertExpectations(t)
}
