// AngelaMos | 2026
// handler_test.go

package profile_test

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
	"github.com/proper-parts/server/internal/profile"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockRepository) Upsert(
	ctx context.Context,
	email string,
	req profile.UpdateRequest,
) (*core.UpdateAck, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*core.UpdateAck), args.Error(1)
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

func newRouter(repo profile.Repository) *chi.Mux {
	r := chi.NewRouter()
	guard := middleware.NewGuard(stubVerifier{}, stubRoles{})
	profile.NewHandler(repo).RegisterRoutes(r, guard)
	return r
}

func TestUpdateProfile(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Upsert", mock.Anything, "buyer@example.com", profile.UpdateRequest{
		City:      "Dhaka",
		Education: "BSc",
		Phone:     "01700000000",
		Link:      "https://example.com",
	}).Return(&core.UpdateAck{MatchedCount: 0, UpsertedID: "pr1"}, nil).Once()

	body := `{"city":"Dhaka","education":"BSc","phone":"01700000000","link":"https://example.com","extra":"dropped"}`
	req := httptest.NewRequest(
		http.MethodPut,
		"/update/buyer@example.com",
		strings.NewReader(body),
	)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"upsertedId":"pr1"`)
	repo.AssertExpectations(t)
}

func TestUpdateProfile_RequiresToken(t *testing.T) {
	repo := new(MockRepository)

	req := httptest.NewRequest(
		http.MethodPut,
		"/update/buyer@example.com",
		strings.NewReader(`{"city":"Dhaka"}`),
	)
	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProfile(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByEmail", mock.Anything, "buyer@example.com").
		Return(&profile.Profile{Email: "buyer@example.com", City: "Dhaka"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/updateInfo/buyer@example.com", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dhaka")
	repo.AssertExpectations(t)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("FindByEmail", mock.Anything, "ghost@example.com").
		Return(nil, fmt.Errorf("find profile: %w", core.ErrNotFound)).Once()

	req := httptest.NewRequest(http.MethodGet, "/updateInfo/ghost@example.com", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	repo.AssertExpectations(t)
}
