package domain

import (
	"time"
)

// Подписанный bearer-токен в компактном виде (три base64url-сегмента).
type Token string

// Principal — разрешённая личность вызывающего на время одного запроса.
// Создаётся только внутри проверки токена, роль из него авторитетна:
// никакой другой источник роли ядро не принимает.
type Principal struct {
	Username string
	Role     Role
}

// Хеширование паролей (одностороннее, реализация — internal/auth/password)
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, encodedHash string) (bool, error)
}

// Управление токенами (JWT, реализация — internal/auth/token).
// now передаётся явно: выпуск и проверка детерминированы по времени.
type TokenManager interface {
	Issue(p Principal, now time.Time) (Token, error)
	Verify(raw Token, now time.Time) (Principal, error)
	MatchesSubject(raw Token, username string, now time.Time) bool
}
