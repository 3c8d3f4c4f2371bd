package list_users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HotelService/internal/service/users"
	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, limit, offset uint64) (*models.UserListResponse, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserListResponse), args.Error(1)
}

func TestHandle(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &mockService{}
		svc.On("List", mock.Anything, uint64(5), uint64(10)).Return(&models.UserListResponse{
			Users: []*models.UserResponse{{ID: 1, Username: "frontdesk", IsActive: true}},
		}, nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users?limit=5&offset=10", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"frontdesk"`)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("bad pagination", func(t *testing.T) {
		svc := &mockService{}
		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("limit too large", func(t *testing.T) {
		svc := &mockService{}
		svc.On("List", mock.Anything, uint64(1000), uint64(0)).Return(nil, users.ErrInvalidInput)
		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users?limit=1000", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("internal", func(t *testing.T) {
		svc := &mockService{}
		svc.On("List", mock.Anything, uint64(0), uint64(0)).Return(nil, users.ErrInternal)
		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	})
}
