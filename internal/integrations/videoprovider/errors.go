package videoprovider

import "errors"

var (
	// ErrSessionFailed возвращается, когда провайдер не смог создать видеосессию
	ErrSessionFailed = errors.New("videoprovider client: failed to create session")

	// ErrTokenFailed возвращается, когда провайдер не смог выдать токен
	ErrTokenFailed = errors.New("videoprovider client: failed to generate token")

	// ErrSessionNotFound возвращается, когда сессия не найдена у провайдера
	ErrSessionNotFound = errors.New("videoprovider client: session not found")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("videoprovider client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("videoprovider client: internal error")
)
