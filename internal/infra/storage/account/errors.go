package account

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("account.repository: account not found")

	// ErrInsufficientCredits возвращается, когда на балансе не хватает кредитов
	ErrInsufficientCredits = errors.New("account.repository: insufficient credits")

	// ErrDuplicateEmail возвращается при попытке создать аккаунт с занятым email
	ErrDuplicateEmail = errors.New("account.repository: email already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("account.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("account.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("account.repository: failed to scan row")
)
