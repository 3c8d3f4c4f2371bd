package txmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// RetryObserver получает события повтора и окончательного конфликта
type RetryObserver interface {
	OnRetry(isolation string)
	OnConflict(isolation string)
}

// serializableAttempts первая попытка + один повтор
const serializableAttempts = 2

// Manager менеджер транзакций
// Транзакция передаётся репозиториям через контекст (dbmetrics.WithTx)
type Manager struct {
	db       TxBeginner
	observer RetryObserver
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *Manager {
	return &Manager{db: db}
}

// WithObserver подключает наблюдателя за повторами
func (m *Manager) WithObserver(observer RetryObserver) *Manager {
	m.observer = observer
	return m
}

// Do выполняет fn в транзакции READ COMMITTED
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE
// При конфликте сериализации (40001) или дедлоке (40P01) транзакция повторяется один раз.
// Если и повтор не прошёл, возвращается ErrSerializationFailure.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 1; attempt <= serializableAttempts; attempt++ {
		err = m.run(ctx, opts, fn)
		if !IsSerializationFailure(err) {
			return err
		}
		if attempt < serializableAttempts && m.observer != nil {
			m.observer.OnRetry("serializable")
		}
	}

	if m.observer != nil {
		m.observer.OnConflict("serializable")
	}
	return fmt.Errorf("%w: DoSerializable - %d attempts: %w", ErrSerializationFailure, serializableAttempts, err)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}
