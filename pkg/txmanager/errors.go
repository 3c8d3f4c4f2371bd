package txmanager

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBeginTx возвращается, когда не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, когда не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerializationFailure возвращается, когда транзакция не прошла сериализацию и после повтора
	ErrSerializationFailure = errors.New("txmanager: serialization failure")
)

// SQLSTATE коды PostgreSQL, после которых транзакцию можно повторить
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsSerializationFailure проверяет, что ошибка вызвана конфликтом сериализации или дедлоком
func IsSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSerializationFailure) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == codeSerializationFailure || pqErr.Code == codeDeadlockDetected
	}
	return false
}
