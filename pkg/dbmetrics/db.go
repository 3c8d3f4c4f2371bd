package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelService/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, замеряющая длительность запросов
// Если collector == nil, работает как обычный *sql.DB
type DB struct {
	db        *sql.DB
	collector MetricsCollector
}

// Wrap оборачивает *sql.DB
func Wrap(db *sql.DB, collector MetricsCollector) *DB {
	return &DB{db: db, collector: collector}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула
// Сбор останавливается при закрытии stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	if m == nil {
		return Wrap(db, nil)
	}
	wrapped := Wrap(db, m)
	go collectPoolStats(db, m, dbName, DefaultStatsInterval, stopCh)
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// BeginTx начинает транзакцию, запросы которой тоже замеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observeOperation("BEGIN", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	d.observeOperation(operationName(query), start, err)
}

func (d *DB) observeOperation(operation string, start time.Time, err error) {
	if d.collector == nil {
		return
	}
	d.collector.ObserveDBQuery(operation, time.Since(start), err)
}

// Tx транзакция с замером запросов
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.parent.observeOperation("COMMIT", start, err)
	return err
}

func (t *Tx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	t.parent.observeOperation("ROLLBACK", start, err)
	return err
}

// operationName возвращает первое ключевое слово запроса (SELECT, INSERT, ...)
func operationName(query string) string {
	trimmed := strings.TrimSpace(query)
	if idx := strings.IndexAny(trimmed, " \n\t"); idx > 0 {
		trimmed = trimmed[:idx]
	}
	return strings.ToUpper(trimmed)
}

func collectPoolStats(db *sql.DB, m *metrics.Metrics, dbName string, interval time.Duration, stopCh <-chan struct{}) {
	if m == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := db.Stats()
			m.DBOpenConnections.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
			m.DBInUseConnections.WithLabelValues(dbName).Set(float64(stats.InUse))
			m.DBIdleConnections.WithLabelValues(dbName).Set(float64(stats.Idle))
			m.DBWaitCount.WithLabelValues(dbName).Set(float64(stats.WaitCount))
		}
	}
}
