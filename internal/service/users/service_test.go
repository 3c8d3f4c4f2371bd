package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
	"github.com/m04kA/SMC-HotelService/pkg/jwt"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/password"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset uint64) ([]*domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func newTokens() *jwt.Service {
	return jwt.New("test-secret", 30*time.Minute)
}

func TestRegister(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "frontdesk" && u.IsActive && password.Check("Secret123", u.HashedPassword) == nil
	})).Return(&domain.User{ID: 1, Username: "frontdesk", IsActive: true}, nil)

	resp, err := NewService(repo, newTokens(), logger.NewNop()).Register(context.Background(), &models.RegisterRequest{
		Username: "frontdesk",
		Password: "Secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	repo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "Secret123"},
		{"symbols in username", "front-desk", "Secret123"},
		{"short password", "frontdesk", "Sec1"},
		{"no upper", "frontdesk", "secret123"},
		{"no digit", "frontdesk", "SecretPass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{}
			_, err := NewService(repo, newTokens(), logger.NewNop()).Register(context.Background(), &models.RegisterRequest{
				Username: tt.username,
				Password: tt.password,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	repo := &mockUserRepo{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, userRepo.ErrUserExists)

	_, err := NewService(repo, newTokens(), logger.NewNop()).Register(context.Background(), &models.RegisterRequest{
		Username: "frontdesk",
		Password: "Secret123",
	})

	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	hash, err := password.Hash("Secret123")
	require.NoError(t, err)

	tokens := newTokens()
	active := &domain.User{ID: 7, Username: "frontdesk", HashedPassword: hash, IsActive: true}
	inactive := &domain.User{ID: 8, Username: "former", HashedPassword: hash, IsActive: false}

	repo := &mockUserRepo{}
	repo.On("GetByUsername", mock.Anything, "frontdesk").Return(active, nil)
	repo.On("GetByUsername", mock.Anything, "former").Return(inactive, nil)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, userRepo.ErrUserNotFound)

	svc := NewService(repo, tokens, logger.NewNop())

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &models.LoginRequest{Username: "frontdesk", Password: "Secret123"})
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, int64(1800), resp.ExpiresIn)

		claims, err := tokens.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "frontdesk", claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "frontdesk", Password: "Wrong1234"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "ghost", Password: "Secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{Username: "former", Password: "Secret123"})
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}

func TestLogin_UnknownUserHashIsUsable(t *testing.T) {
	// неизвестное имя проверяется против полноценного хеша той же стоимости
	cost, err := bcrypt.Cost([]byte(dummyPasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.ErrorIs(t, password.Check("Secret123", dummyPasswordHash), bcrypt.ErrMismatchedHashAndPassword)
}

func TestList(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	repo := &mockUserRepo{}
	repo.On("List", mock.Anything, uint64(domain.DefaultListLimit), uint64(0)).Return([]*domain.User{
		{ID: 1, Username: "frontdesk", HashedPassword: "secret-hash", IsActive: true, CreatedAt: created, UpdatedAt: updated},
		{ID: 2, Username: "former", IsActive: false, CreatedAt: created, UpdatedAt: created},
	}, nil)

	resp, err := NewService(repo, newTokens(), logger.NewNop()).List(context.Background(), 0, 0)

	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "frontdesk", resp.Users[0].Username)
	assert.Equal(t, updated, resp.Users[0].UpdatedAt)
	assert.False(t, resp.Users[1].IsActive)
	repo.AssertExpectations(t)
}

func TestList_Errors(t *testing.T) {
	t.Run("limit too large", func(t *testing.T) {
		repo := &mockUserRepo{}
		_, err := NewService(repo, newTokens(), logger.NewNop()).List(context.Background(), domain.MaxListLimit+1, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockUserRepo{}
		repo.On("List", mock.Anything, uint64(10), uint64(20)).Return(nil, userRepo.ErrExecQuery)
		_, err := NewService(repo, newTokens(), logger.NewNop()).List(context.Background(), 10, 20)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
