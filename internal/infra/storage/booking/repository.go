package booking

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

// SQLSTATE коды, которые репозиторий различает
const (
	codeExclusionViolation  = "23P01"
	codeForeignKeyViolation = "23503"
)

// constraintNoOverlap имя exclusion-ограничения из миграции
const constraintNoOverlap = "bookings_no_overlap"

var bookingColumns = []string{
	"id",
	"room_id",
	"customer_id",
	"scheduled_check_in",
	"scheduled_check_out",
	"actual_check_in",
	"actual_check_out",
	"booking_status",
	"payment_status",
	"total_amount",
	"amount_paid",
	"additional_charges",
	"notes",
	"booking_date",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Пересечение с активной бронью того же номера отклоняется ограничением БД (ErrRoomOverlap).
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"customer_id",
			"scheduled_check_in",
			"scheduled_check_out",
			"booking_status",
			"payment_status",
			"total_amount",
			"amount_paid",
			"additional_charges",
			"notes",
			"booking_date",
			"updated_at",
		).
		Values(
			booking.RoomID,
			booking.CustomerID,
			booking.ScheduledCheckIn,
			booking.ScheduledCheckOut,
			booking.Status,
			booking.PaymentStatus,
			booking.TotalAmount,
			booking.AmountPaid,
			booking.AdditionalCharges,
			booking.Notes,
			booking.BookingDate,
			booking.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Code == codeExclusionViolation && pqErr.Constraint == constraintNoOverlap:
				return nil, ErrRoomOverlap
			case pqErr.Code == codeForeignKeyViolation:
				return nil, fmt.Errorf("%w: %s", ErrReferenceNotFound, pqErr.Constraint)
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// FindByRoomWithStatus получает брони номера в указанных статусах
// Используется при проверке доступности; внутри транзакции найденные строки блокируются
func (r *Repository) FindByRoomWithStatus(ctx context.Context, roomID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"booking_status": statusStrings}).
		OrderBy("scheduled_check_in ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRoomWithStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByRoomWithStatus - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// List получает бронирования с фильтрацией по номеру, гостю и статусу
// Сортировка: сначала новые
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC", "id DESC")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_status": *filter.Status})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(filter.Offset)
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

	return r.scanBookings(rows)
}

// Update сохраняет изменяемые поля бронирования
// Плановые даты, номер и гость после создания не меняются
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_status", booking.Status).
		Set("payment_status", booking.PaymentStatus).
		Set("actual_check_in", booking.ActualCheckIn).
		Set("actual_check_out", booking.ActualCheckOut).
		Set("amount_paid", booking.AmountPaid).
		Set("additional_charges", booking.AdditionalCharges).
		Set("notes", booking.Notes).
		Set("updated_at", booking.UpdatedAt).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var bookingDate, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.CustomerID,
		&booking.ScheduledCheckIn,
		&booking.ScheduledCheckOut,
		&booking.ActualCheckIn,
		&booking.ActualCheckOut,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.TotalAmount,
		&booking.AmountPaid,
		&booking.AdditionalCharges,
		&booking.Notes,
		&bookingDate,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.ScheduledCheckIn = domain.DateOnly(booking.ScheduledCheckIn)
	booking.ScheduledCheckOut = domain.DateOnly(booking.ScheduledCheckOut)
	booking.BookingDate = bookingDate.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
