package payout

import "errors"

var (
	// ErrPayoutNotFound возвращается, когда запрос на выплату не найден
	ErrPayoutNotFound = errors.New("payout.repository: payout not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payout.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payout.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payout.repository: failed to scan row")
)
