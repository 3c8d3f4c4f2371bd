package users

import (
	"context"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
	"github.com/m04kA/SMC-HotelService/pkg/password"
)

const tokenTypeBearer = "bearer"

// dummyPasswordHash bcrypt хеш, с которым сверяется пароль неизвестного пользователя,
// чтобы время ответа не зависело от существования имени
const dummyPasswordHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3IqqH1xg2W9rV3aHf2RfF9e"

// Service регистрация и аутентификация сотрудников
type Service struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register создает пользователя
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	if err := validateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:       req.Username,
		HashedPassword: hash,
		IsActive:       true,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			s.logger.Warn("Register: username=%q already taken", req.Username)
			return nil, ErrUserExists
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%d username=%q", user.ID, user.Username)
	return models.FromDomainUser(user), nil
}

// Login проверяет пароль и выпускает access токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			_ = password.Check(req.Password, dummyPasswordHash)
			s.logger.Warn("Login: unknown username=%q", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := password.Check(req.Password, user.HashedPassword); err != nil {
		s.logger.Warn("Login: wrong password for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("Login: inactive user id=%d", user.ID)
		return nil, ErrInactiveUser
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		s.logger.Error("Login: failed to sign token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: issued token for user id=%d", user.ID)
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	}, nil
}

// List получает список пользователей
func (s *Service) List(ctx context.Context, limit, offset uint64) (*models.UserListResponse, error) {
	if limit == 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", ErrInvalidInput, domain.MaxListLimit)
	}

	users, err := s.userRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < domain.MinUsernameLength || n > domain.MaxUsernameLength {
		return fmt.Errorf("%w: username must be %d..%d characters", ErrInvalidInput, domain.MinUsernameLength, domain.MaxUsernameLength)
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%w: username must be alphanumeric", ErrInvalidInput)
		}
	}
	return nil
}

func validatePassword(pwd string) error {
	if len(pwd) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range pwd {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("%w: password must contain upper and lower case letters and a digit", ErrInvalidInput)
	}
	return nil
}
