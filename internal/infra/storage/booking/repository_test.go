package booking

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

// failingConnector драйвер, у которого чтение строк падает с заданной ошибкой
type failingConnector struct {
	nextErr error
}

func (c *failingConnector) Connect(context.Context) (driver.Conn, error) {
	return &failingConn{nextErr: c.nextErr}, nil
}

func (c *failingConnector) Driver() driver.Driver { return failingDriver{} }

type failingDriver struct{}

func (failingDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("use connector")
}

type failingConn struct {
	nextErr error
}

func (c *failingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare not supported")
}

func (c *failingConn) Close() error { return nil }

func (c *failingConn) Begin() (driver.Tx, error) {
	return nil, errors.New("begin not supported")
}

func (c *failingConn) CheckNamedValue(*driver.NamedValue) error { return nil }

func (c *failingConn) QueryContext(_ context.Context, _ string, _ []driver.NamedValue) (driver.Rows, error) {
	return &failingRows{nextErr: c.nextErr}, nil
}

type failingRows struct {
	nextErr error
}

func (r *failingRows) Columns() []string { return bookingColumns }

func (r *failingRows) Close() error { return nil }

func (r *failingRows) Next([]driver.Value) error { return r.nextErr }

func newFailingRepository(t *testing.T, nextErr error) *Repository {
	t.Helper()
	db := sql.OpenDB(&failingConnector{nextErr: nextErr})
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil))
}

func TestRepository_RowsErrorKeepsSQLState(t *testing.T) {
	serialization := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
	repo := newFailingRepository(t, serialization)

	t.Run("FindByRoomWithStatus", func(t *testing.T) {
		bookings, err := repo.FindByRoomWithStatus(context.Background(), 1, domain.BlockingStatuses)

		require.Error(t, err)
		assert.Nil(t, bookings)
		assert.ErrorIs(t, err, ErrScanRow)

		var pqErr *pq.Error
		require.ErrorAs(t, err, &pqErr)
		assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
		assert.True(t, txmanager.IsSerializationFailure(err))
	})

	t.Run("List", func(t *testing.T) {
		bookings, err := repo.List(context.Background(), domain.BookingsFilter{Limit: 10})

		require.Error(t, err)
		assert.Nil(t, bookings)
		assert.True(t, txmanager.IsSerializationFailure(err))
	})
}

func TestRepository_RowsErrorOther(t *testing.T) {
	repo := newFailingRepository(t, errors.New("connection reset"))

	_, err := repo.FindByRoomWithStatus(context.Background(), 1, domain.BlockingStatuses)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScanRow)
	assert.False(t, txmanager.IsSerializationFailure(err))
}
