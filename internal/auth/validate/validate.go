// Package validate — чистые правила формата username/email/password.
// Без состояния и побочных эффектов: безопасно дёргать из любого числа
// горутин. Каждая проверка падает на первом нарушенном правиле,
// порядок правил фиксирован (сообщения детерминированы).
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

var (
	usernameRe = regexp.MustCompile(`^[a-z0-9_-]{3,50}$`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Username: строчные латинские, цифры, '_' и '-', длина 3..50.
// Длина проверяется до класса символов — причины отказа различимы.
// Длина считается в рунах: "ёё" должен падать на длине, не на классе.
func Username(s string) error {
	if n := utf8.RuneCountInString(s); n < 3 || n > 50 {
		return domain.E(domain.KindInvalidUsername,
			"Username must be between 3 and 50 characters long")
	}
	if !usernameRe.MatchString(s) {
		return domain.E(domain.KindInvalidUsername,
			"Username must be 3-50 characters: lowercase letters, digits, '_' or '-' only")
	}
	return nil
}

func Email(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.E(domain.KindInvalidEmail, "Email must not be empty")
	}
	if !emailRe.MatchString(s) {
		return domain.E(domain.KindInvalidEmail, "Email is not valid")
	}
	return nil
}

// Password: минимум 10 символов, без пробелов, обязательны строчная,
// прописная, цифра и спецсимвол. Один проход по строке.
func Password(s string) error {
	if utf8.RuneCountInString(s) < 10 {
		return domain.EWeak(domain.ReasonTooShort,
			"Password must be at least 10 characters long")
	}
	if strings.Contains(s, " ") {
		return domain.EWeak(domain.ReasonContainsSpace,
			"Password must not contain spaces")
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, c := range s {
		switch {
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasLower {
		return domain.EWeak(domain.ReasonMissingLowercase,
			"Password must contain at least one lowercase letter")
	}
	if !hasUpper {
		return domain.EWeak(domain.ReasonMissingUppercase,
			"Password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return domain.EWeak(domain.ReasonMissingDigit,
			"Password must contain at least one digit")
	}
	if !hasSpecial {
		return domain.EWeak(domain.ReasonMissingSpecial,
			"Password must contain at least one special character")
	}
	return nil
}
