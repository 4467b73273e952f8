package ledger

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("ledger: account not found")

	// ErrInsufficientCredits возвращается, когда на балансе не хватает кредитов
	ErrInsufficientCredits = errors.New("ledger: insufficient credits")

	// ErrInvalidAmount возвращается при неположительной сумме операции
	ErrInvalidAmount = errors.New("ledger: amount must be positive")

	// ErrInvalidType возвращается при неизвестном типе транзакции
	ErrInvalidType = errors.New("ledger: invalid transaction type")

	// ErrDuplicateTransaction возвращается при повторном ключе идемпотентности
	ErrDuplicateTransaction = errors.New("ledger: duplicate transaction")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ledger: internal error")
)
