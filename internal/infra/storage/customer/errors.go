package customer

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда гость не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("customer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)
