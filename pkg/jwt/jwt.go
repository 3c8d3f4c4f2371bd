package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess значение claim "type" для access токена
const TokenTypeAccess = "access_token"

var (
	// ErrInvalidToken возвращается для невалидного или просроченного токена
	ErrInvalidToken = errors.New("jwt: invalid token")

	// ErrInvalidTokenType возвращается, если токен не является access токеном
	ErrInvalidTokenType = errors.New("jwt: invalid token type")
)

// Claims содержимое access токена
// Subject = username
type Claims struct {
	UserID int64  `json:"user_id"`
	Type   string `json:"type"`
	jwtlib.RegisteredClaims
}

// Service выпуск и проверка access токенов (HS256)
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New создает сервис токенов
func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL время жизни токена
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// GenerateToken выпускает access токен для пользователя
func (s *Service) GenerateToken(userID int64, username string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		Type:   TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken проверяет подпись, срок действия и тип токена
func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if claims.Type != TokenTypeAccess {
		return nil, ErrInvalidTokenType
	}

	return claims, nil
}
