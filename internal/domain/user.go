package domain

import "time"

// User пользователь (сотрудник отеля)
type User struct {
	ID             int64
	Username       string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
