package mw

import (
	"net/http"
	"strings"
	"time"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

// OptionalAuth кладёт Principal в контекст, если пришёл валидный токен;
// иначе пропускает запрос как анонимный.
func OptionalAuth(tokens domain.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			next.ServeHTTP(w, r) // без пользователя
			return
		}
		p, err := tokens.Verify(domain.Token(raw), time.Now().UTC())
		if err != nil {
			next.ServeHTTP(w, r) // не валидный — просто идём как неавторизованный
			return
		}
		next.ServeHTTP(w, r.WithContext(domain.WithPrincipal(r.Context(), p)))
	})
}

// RequireAuth — 401 при отсутствии или невалидности токена.
// Конкретная причина отказа (подпись, issuer, срок) наружу не уходит.
func RequireAuth(tokens domain.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := extractBearer(r.Header.Get("Authorization"))
		if raw == "" {
			writeUnauthorized(w)
			return
		}
		p, err := tokens.Verify(domain.Token(raw), time.Now().UTC())
		if err != nil {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(domain.WithPrincipal(r.Context(), p)))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	http.Error(w, `{"error":{"code":1001,"text":"unauthorized"}}`, http.StatusUnauthorized)
}

func extractBearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
