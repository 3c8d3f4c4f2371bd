package room

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

var roomColumns = []string{
	"id",
	"name",
	"room_type",
	"floor",
	"capacity",
	"price_per_night",
	"amenities",
	"created_at",
}

// Repository репозиторий номеров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает номер
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("name", "room_type", "floor", "capacity", "price_per_night", "amenities").
		Values(room.Name, room.RoomType, room.Floor, room.Capacity, room.PricePerNight, pq.Array(amenities)).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&room.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	room.Amenities = amenities
	room.CreatedAt = createdAt.Time
	return room, nil
}

// GetByID получает номер по ID
// Внутри транзакции строка номера блокируется (FOR UPDATE), что сериализует
// конкурентные бронирования одного номера
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %w", ErrScanRow, err)
	}

	return room, nil
}

// List получает список номеров
func (r *Repository) List(ctx context.Context, limit, offset uint64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("floor ASC", "name ASC")

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

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan room: %w", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var amenities pq.StringArray
	var createdAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.RoomType,
		&room.Floor,
		&room.Capacity,
		&room.PricePerNight,
		&amenities,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	room.Amenities = []string(amenities)
	if room.Amenities == nil {
		room.Amenities = []string{}
	}
	room.CreatedAt = createdAt.Time

	return &room, nil
}
