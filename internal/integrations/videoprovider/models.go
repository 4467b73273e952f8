package videoprovider

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Session видеосессия, созданная провайдером
type Session struct {
	SessionID string `json:"sessionId"`
	MediaMode string `json:"mediaMode"`
	CreatedAt int64  `json:"createdAt"`
}

// TokenRole is the participant role inside a video session. Both tutor
// and student publish streams, so callers normally pass RolePublisher.
type TokenRole string

const (
	RolePublisher  TokenRole = "publisher"
	RoleSubscriber TokenRole = "subscriber"
)

// TokenRequest параметры выдачи токена
type TokenRequest struct {
	SessionID string            `json:"sessionId"`
	Role      TokenRole         `json:"role"`
	ExpireAt  int64             `json:"expireAt"`
	Data      map[string]string `json:"data,omitempty"`
}

// TokenResponse ответ провайдера с токеном
type TokenResponse struct {
	Token    string `json:"token"`
	ExpireAt int64  `json:"expireAt"`
}

// ExpireAtFor converts an absolute expiry time to the provider's unix
// seconds representation.
func ExpireAtFor(t time.Time) int64 {
	return t.Unix()
}
