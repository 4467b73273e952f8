package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("appointments: account not found")

	// ErrNotParticipant возвращается, когда аккаунт не участвует в записи
	ErrNotParticipant = errors.New("appointments: account is not a participant")

	// ErrNotTutor возвращается, когда операция доступна только тьютору записи
	ErrNotTutor = errors.New("appointments: only the tutor may perform this operation")

	// ErrNotScheduled возвращается, когда запись уже не в статусе SCHEDULED
	ErrNotScheduled = errors.New("appointments: appointment is not scheduled")

	// ErrTooEarlyToComplete возвращается при попытке завершить занятие до его конца
	ErrTooEarlyToComplete = errors.New("appointments: appointment has not ended yet")

	// ErrTooEarlyToJoin возвращается, когда до начала занятия больше 30 минут
	ErrTooEarlyToJoin = errors.New("appointments: too early to join the session")

	// ErrVideoToken возвращается при ошибке выдачи видеотокена
	ErrVideoToken = errors.New("appointments: failed to issue video token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
