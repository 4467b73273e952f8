package book_appointment

import "errors"

var (
	// ErrStudentNotFound возвращается, когда студент не найден
	ErrStudentNotFound = errors.New("student not found")

	// ErrTutorNotFound возвращается, когда тьютор не найден
	ErrTutorNotFound = errors.New("tutor not found")

	// ErrNotStudent возвращается, когда бронировать пытается не студент
	ErrNotStudent = errors.New("only students may book appointments")

	// ErrNotTutor возвращается, когда выбранный аккаунт не является тьютором
	ErrNotTutor = errors.New("account is not a tutor")

	// ErrTutorNotVerified возвращается, когда тьютор не прошел верификацию
	ErrTutorNotVerified = errors.New("tutor is not verified")

	// ErrInsufficientCredits возвращается, когда у студента меньше 2 кредитов
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrSlotNotAvailable возвращается, когда слот уже занят
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrSlotInPast возвращается при попытке забронировать прошедший слот
	ErrSlotInPast = errors.New("slot start time is in the past")

	// ErrVideoSession возвращается, когда не удалось создать видеосессию
	ErrVideoSession = errors.New("failed to create video session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
