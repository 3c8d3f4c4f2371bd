package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash хеширует пароль bcrypt с cost по умолчанию
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Check сравнивает пароль с хешем, nil если совпадают
func Check(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
