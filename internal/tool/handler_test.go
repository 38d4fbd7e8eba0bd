// AngelaMos | 2026
// handler_test.go

package tool_test

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

	"github.com/proper-parts/server/internal/core"
	"github.com/proper-parts/server/internal/middleware"
	"github.com/proper-parts/server/internal/tool"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListAll(ctx context.Context) ([]tool.Tool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tool.Tool), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*tool.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tool.Tool), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, t *tool.Tool) (*core.InsertAck, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.InsertAck), args.Error(1)
}

func (m *MockRepository) DeleteByID(ctx context.Context, id string) (*core.DeleteAck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.DeleteAck), args.Error(1)
}

type stubVerifier struct{}

func (stubVerifier) VerifyToken(
	ctx context.Context,
	token string,
) (*middleware.TokenClaims, error) {
	return &middleware.TokenClaims{Email: "buyer@example.com"}, nil
}

type stubRoles struct{ role string }

func (s stubRoles) RoleByEmail(ctx context.Context, email string) (string, error) {
	return s.role, nil
}

func newRouter(repo tool.Repository, role string) *chi.Mux {
	r := chi.NewRouter()
	guard := middleware.NewGuard(stubVerifier{}, stubRoles{role: role})
	tool.NewHandler(repo).RegisterRoutes(r, guard)
	return r
}

func TestListTools(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAll", mock.Anything).Return([]tool.Tool{
		{Name: "Torque Wrench", Price: 89.99, Quantity: 12},
		{Name: "Bench Vise", Price: 45.50, Quantity: 4},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	rec := httptest.NewRecorder()

	newRouter(repo, "user").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "Torque Wrench")
	repo.AssertExpectations(t)
}

func TestListTools_StoreError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAll", mock.Anything).
		Return(nil, fmt.Errorf("connection reset")).Once()

	req := httptest.NewRequest(http.MethodGet, "/tools", nil)
	rec := httptest.NewRecorder()

	newRouter(repo, "user").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORE_ERROR")
	repo.AssertExpectations(t)
}

func TestCreateTool(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*tool.Tool")).
		Return(&core.InsertAck{InsertedID: "abc"}, nil).Once()

	body := `{"name":"Torque Wrench","price":89.99,"quantity":12}`
	req := httptest.NewRequest(http.MethodPost, "/tools", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	newRouter(repo, "admin").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"insertedId":"abc"`)
	repo.AssertExpectations(t)
}

func TestCreateTool_RequiresAdmin(t *testing.T) {
	repo := new(MockRepository)

	body := `{"name":"Torque Wrench","price":89.99,"quantity":12}`
	req := httptest.NewRequest(http.MethodPost, "/tools", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	newRouter(repo, "user").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateTool_ValidationFailure(t *testing.T) {
	repo := new(MockRepository)

	body := `{"price":-1}`
	req := httptest.NewRequest(http.MethodPost, "/tools", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	newRouter(repo, "admin").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ARGUMENT")
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGetTool_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByID", mock.Anything, "64f1b2a3c4d5e6f708192a3b").
		Return(nil, fmt.Errorf("find tool: %w", core.ErrNotFound)).Once()

	req := httptest.NewRequest(http.MethodGet, "/tools/64f1b2a3c4d5e6f708192a3b", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	newRouter(repo, "user").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	repo.AssertExpectations(t)
}

func TestGetTool_MalformedID(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByID", mock.Anything, "not-an-id").
		Return(nil, fmt.Errorf("malformed id %q: %w", "not-an-id", core.ErrInvalidInput)).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/tools/not-an-id", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	newRouter(repo, "user").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ARGUMENT")
	repo.AssertExpectations(t)
}

func TestDeleteTool(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteByID", mock.Anything, "64f1b2a3c4d5e6f708192a3b").
		Return(&core.DeleteAck{DeletedCount: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/tools/64f1b2a3c4d5e6f708192a3b", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	newRouter(repo, "user").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"deletedCount":1`)
	repo.AssertExpectations(t)
}
