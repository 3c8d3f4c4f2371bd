package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

const codeUniqueViolation = "23505"

var userColumns = []string{
	"id",
	"username",
	"hashed_password",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("username", "hashed_password", "is_active").
		Values(user.Username, user.HashedPassword, user.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time
	return user, nil
}

// GetByUsername получает пользователя по имени
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan user: %w", ErrScanRow, err)
	}

	return user, nil
}

// List получает список пользователей
func (r *Repository) List(ctx context.Context, limit, offset uint64) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(userColumns...).
		From("users").
		OrderBy("id ASC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}
	if offset > 0 {
		selectBuilder = selectBuilder.Offset(offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan user: %w", ErrScanRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return users, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.HashedPassword,
		&user.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time
	return &user, nil
}
