package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse данные пользователя без хеша пароля
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
}

// TokenResponse access токен
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromDomainUser(u))
	}
	return &UserListResponse{Users: result}
}
