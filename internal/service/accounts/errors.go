package accounts

import "errors"

var (
	// ErrAccountNotFound возвращается, когда аккаунт не найден
	ErrAccountNotFound = errors.New("accounts: account not found")

	// ErrDuplicateEmail возвращается, когда email уже занят
	ErrDuplicateEmail = errors.New("accounts: email already registered")

	// ErrInvalidRole возвращается при неизвестной роли
	ErrInvalidRole = errors.New("accounts: invalid role")

	// ErrRoleAlreadySet возвращается, когда роль уже выбрана при онбординге
	ErrRoleAlreadySet = errors.New("accounts: role already set")

	// ErrProfileRequired возвращается, когда тьютор не заполнил профиль
	ErrProfileRequired = errors.New("accounts: tutor profile fields are required")

	// ErrNotTutor возвращается, когда аккаунт не является тьютором
	ErrNotTutor = errors.New("accounts: account is not a tutor")

	// ErrNotAdmin возвращается, когда операция доступна только администратору
	ErrNotAdmin = errors.New("accounts: admin role required")

	// ErrInvalidStatus возвращается при неизвестном статусе верификации
	ErrInvalidStatus = errors.New("accounts: invalid verification status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts: internal error")
)
