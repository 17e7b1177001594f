package domain

import "errors"

// Вид бизнес-ошибки. Закрытое множество: каждый вид детерминированно
// маппится на один HTTP-статус в слое transport/web/v1.
type ErrorKind string

const (
	KindInvalidUsername    ErrorKind = "invalid_username"    // 400
	KindInvalidEmail       ErrorKind = "invalid_email"       // 400
	KindWeakPassword       ErrorKind = "weak_password"       // 400
	KindBadParams          ErrorKind = "bad_params"          // 400
	KindInvalidCredentials ErrorKind = "invalid_credentials" // 401
	KindUnauthenticated    ErrorKind = "unauthenticated"     // 401
	KindAccessDenied       ErrorKind = "access_denied"       // 403
	KindNotFound           ErrorKind = "not_found"           // 404
	KindMethodNotAllowed   ErrorKind = "method_not_allowed"  // 405
	KindUsernameTaken      ErrorKind = "username_taken"      // 409
	KindEmailTaken         ErrorKind = "email_taken"         // 409
	KindTagExists          ErrorKind = "tag_exists"          // 409
	KindTagInUse           ErrorKind = "tag_in_use"          // 409
	KindUnexpected         ErrorKind = "unexpected"          // 500

	// Ошибки проверки токена. Наружу все схлопываются в общий 401,
	// внутри различимы для логов и тестов.
	KindTokenMalformed ErrorKind = "token_malformed"
	KindTokenSignature ErrorKind = "token_bad_signature"
	KindTokenIssuer    ErrorKind = "token_bad_issuer"
	KindTokenAudience  ErrorKind = "token_bad_audience"
	KindTokenExpired   ErrorKind = "token_expired"
)

// Причина слабого пароля: первая нарушенная проверка, порядок фиксирован.
type PasswordReason string

const (
	ReasonTooShort         PasswordReason = "too_short"
	ReasonContainsSpace    PasswordReason = "contains_space"
	ReasonMissingLowercase PasswordReason = "missing_lowercase"
	ReasonMissingUppercase PasswordReason = "missing_uppercase"
	ReasonMissingDigit     PasswordReason = "missing_digit"
	ReasonMissingSpecial   PasswordReason = "missing_special"
)

// Error — единственный тип ошибок, который выпускает ядро.
// Текст безопасен для выдачи наружу: никаких секретов и паролей.
type Error struct {
	Kind   ErrorKind
	Reason PasswordReason // только для KindWeakPassword
	Text   string
}

func (e *Error) Error() string { return e.Text }

// E — конструктор обычной бизнес-ошибки.
func E(kind ErrorKind, text string) *Error {
	return &Error{Kind: kind, Text: text}
}

// EWeak — конструктор для ошибок проверки пароля (с причиной).
func EWeak(reason PasswordReason, text string) *Error {
	return &Error{Kind: KindWeakPassword, Reason: reason, Text: text}
}

// KindOf возвращает вид ошибки; для чужих ошибок — KindUnexpected.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnexpected
}

// IsKind — errors.Is-подобная проверка по виду.
func IsKind(err error, kind ErrorKind) bool { return KindOf(err) == kind }

// IsTokenError — любой из видов отказа проверки токена.
func IsTokenError(err error) bool {
	switch KindOf(err) {
	case KindTokenMalformed, KindTokenSignature, KindTokenIssuer,
		KindTokenAudience, KindTokenExpired:
		return true
	}
	return false
}
