package payouts

import "errors"

var (
	// ErrPayoutNotFound возвращается, когда выплата не найдена
	ErrPayoutNotFound = errors.New("payouts: payout not found")

	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("payouts: account not found")

	// ErrNotTutor возвращается, когда аккаунт не является тьютором
	ErrNotTutor = errors.New("payouts: account is not a tutor")

	// ErrNotAdmin возвращается, когда операция доступна только администратору
	ErrNotAdmin = errors.New("payouts: admin role required")

	// ErrPendingExists возвращается, когда у тьютора уже есть необработанная выплата
	ErrPendingExists = errors.New("payouts: a pending payout already exists")

	// ErrInsufficientCredits возвращается, когда кредитов меньше, чем запрошено
	ErrInsufficientCredits = errors.New("payouts: insufficient credits")

	// ErrInvalidAmount возвращается при неположительном количестве кредитов
	ErrInvalidAmount = errors.New("payouts: credits must be positive")

	// ErrPaypalEmailRequired возвращается, когда не указан PayPal email
	ErrPaypalEmailRequired = errors.New("payouts: paypal email is required")

	// ErrAlreadyProcessed возвращается при повторной обработке выплаты
	ErrAlreadyProcessed = errors.New("payouts: payout already processed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payouts: internal error")
)
