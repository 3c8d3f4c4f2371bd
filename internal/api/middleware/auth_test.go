package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
	"github.com/m04kA/SMC-HotelService/pkg/jwt"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestAuth(t *testing.T) {
	tokens := jwt.New("test-secret", time.Hour)
	valid, err := tokens.GenerateToken(42, "frontdesk")
	require.NoError(t, err)

	foreign, err := jwt.New("other-secret", time.Hour).GenerateToken(42, "frontdesk")
	require.NoError(t, err)

	users := &mockUsers{}
	users.On("GetByUsername", mock.Anything, "frontdesk").
		Return(&domain.User{ID: 42, Username: "frontdesk", IsActive: true}, nil)

	var gotID int64
	var gotName string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetUserID(r.Context())
		gotName, _ = GetUsername(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := Auth(tokens, users, logger.NewNop())(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + valid, http.StatusNoContent},
		{"lowercase scheme", "bearer " + valid, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"foreign signature", "Bearer " + foreign, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID, gotName = 0, ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, int64(42), gotID)
				assert.Equal(t, "frontdesk", gotName)
			} else {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
				assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
			}
		})
	}
}

func TestAuth_TokenOwner(t *testing.T) {
	tokens := jwt.New("test-secret", time.Hour)
	token, err := tokens.GenerateToken(42, "frontdesk")
	require.NoError(t, err)

	tests := []struct {
		name       string
		user       *domain.User
		repoErr    error
		wantStatus int
		wantCode   string
	}{
		{"deleted user", nil, userRepo.ErrUserNotFound, http.StatusUnauthorized, `"code":"UNAUTHORIZED"`},
		{"inactive user", &domain.User{ID: 42, Username: "frontdesk", IsActive: false}, nil, http.StatusUnauthorized, `"code":"UNAUTHORIZED"`},
		{"recreated user", &domain.User{ID: 77, Username: "frontdesk", IsActive: true}, nil, http.StatusUnauthorized, `"code":"UNAUTHORIZED"`},
		{"repository error", nil, userRepo.ErrExecQuery, http.StatusInternalServerError, `"code":"INTERNAL_ERROR"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUsers{}
			if tt.user != nil {
				users.On("GetByUsername", mock.Anything, "frontdesk").Return(tt.user, nil)
			} else {
				users.On("GetByUsername", mock.Anything, "frontdesk").Return(nil, tt.repoErr)
			}

			called := false
			h := Auth(tokens, users, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.False(t, called)
			users.AssertExpectations(t)
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		const id = "2f1d3c4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, id)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, id, seen)
		assert.Equal(t, id, rec.Header().Get(HeaderRequestID))
	})
}

type recordingLogger struct {
	infos  []string
	errors []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(string, ...interface{}) {}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func TestAccessLog(t *testing.T) {
	const id = "2f1d3c4e-5a6b-4c7d-8e9f-0a1b2c3d4e5f"

	t.Run("success", func(t *testing.T) {
		log := &recordingLogger{}
		h := RequestID(AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.Header.Set(HeaderRequestID, id)
		h.ServeHTTP(httptest.NewRecorder(), req)

		require.Len(t, log.infos, 1)
		assert.Contains(t, log.infos[0], "POST /api/v1/bookings - status=201")
		assert.Contains(t, log.infos[0], "request_id="+id)
		assert.Empty(t, log.errors)
	})

	t.Run("server error", func(t *testing.T) {
		log := &recordingLogger{}
		h := RequestID(AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil))

		require.Len(t, log.errors, 1)
		assert.Contains(t, log.errors[0], "status=500")
		assert.Empty(t, log.infos)
	})
}
