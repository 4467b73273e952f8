package availability

import "errors"

var (
	// ErrTutorNotFound возвращается, когда тьютор не найден
	ErrTutorNotFound = errors.New("availability: tutor not found")

	// ErrNotTutor возвращается, когда аккаунт не является тьютором
	ErrNotTutor = errors.New("availability: account is not a tutor")

	// ErrInvalidTimeRange возвращается, когда начало окна не раньше конца
	ErrInvalidTimeRange = errors.New("availability: start time must be before end time")

	// ErrNoAvailability возвращается, когда тьютор не настроил окно доступности
	ErrNoAvailability = errors.New("availability: no availability set by tutor")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
