package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и обёрток над ними
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция: выполнение запросов + завершение
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// MetricsCollector приёмник метрик запросов
type MetricsCollector interface {
	ObserveDBQuery(operation string, duration time.Duration, err error)
}
