package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"address",
	"proof_of_identity",
	"proof_image_url",
	"proof_image_filename",
	"uploaded_at",
	"created_at",
}

// Repository репозиторий гостей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает гостя
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "email", "phone", "address", "proof_of_identity").
		Values(customer.Name, customer.Email, customer.Phone, customer.Address, customer.ProofOfIdentity).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time
	return customer, nil
}

// GetByID получает гостя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	customer, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %w", ErrScanRow, err)
	}

	return customer, nil
}

// List получает список гостей
func (r *Repository) List(ctx context.Context, limit, offset uint64) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(customerColumns...).
		From("customers").
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan customer: %w", ErrScanRow, err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return customers, nil
}

// UpdateProof сохраняет ссылку на скан документа гостя
func (r *Repository) UpdateProof(ctx context.Context, id int64, url, filename string, uploadedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("proof_image_url", url).
		Set("proof_image_filename", filename).
		Set("uploaded_at", uploadedAt).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateProof - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateProof - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateProof - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var customer domain.Customer
	var createdAt sql.NullTime

	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.Phone,
		&customer.Address,
		&customer.ProofOfIdentity,
		&customer.ProofImageURL,
		&customer.ProofImageFilename,
		&customer.UploadedAt,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	customer.CreatedAt = createdAt.Time
	return &customer, nil
}
