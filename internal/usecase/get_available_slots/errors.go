package get_available_slots

import "errors"

var (
	// ErrTutorNotFound возвращается, когда тьютор не найден
	ErrTutorNotFound = errors.New("tutor not found")

	// ErrNotTutor возвращается, когда аккаунт не является тьютором
	ErrNotTutor = errors.New("account is not a tutor")

	// ErrTutorNotVerified возвращается, когда тьютор не прошел верификацию
	ErrTutorNotVerified = errors.New("tutor is not verified")

	// ErrNoAvailability возвращается, когда тьютор не настроил окно доступности
	ErrNoAvailability = errors.New("tutor has no availability configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
