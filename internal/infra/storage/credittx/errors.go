package credittx

import "errors"

var (
	// ErrDuplicateTransaction возвращается при повторном ключе идемпотентности
	ErrDuplicateTransaction = errors.New("credittx.repository: duplicate idempotency key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("credittx.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("credittx.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("credittx.repository: failed to scan row")
)
