// Package token — выпуск и проверка подписанных bearer-токенов (JWT, HS256).
// Секрет и TTL задаются один раз при старте процесса и дальше только
// читаются, поэтому Manager безопасен для конкурентного использования.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

type Manager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func New(secret, issuer, audience string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer, audience: audience, ttl: ttl}
}

// внутренний тип для подписи/парсинга с jwt.RegisteredClaims
type jwtClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Ensure: Manager implements domain.TokenManager
var _ domain.TokenManager = (*Manager)(nil)

// Issue выпускает JWT для принципала: sub=username, role, iss, aud,
// iat=now, exp=now+ttl. При одинаковых входах результат детерминирован
// (подпись зависит только от секрета).
func (m *Manager) Issue(p domain.Principal, now time.Time) (domain.Token, error) {
	cl := jwtClaims{
		Role: string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	raw, err := t.SignedString(m.secret)
	if err != nil {
		return "", domain.E(domain.KindUnexpected, "failed to sign token")
	}
	return domain.Token(raw), nil
}

// Verify проверяет токен строго в таком порядке: подпись -> iss -> aud ->
// exp. Клеймам нельзя верить до проверки подписи, поэтому библиотечная
// валидация клеймов выключена и выполняется вручную после парсинга.
// Принципал конструируется только здесь — роль берётся исключительно
// из проверенного токена.
func (m *Manager) Verify(raw domain.Token, now time.Time) (domain.Principal, error) {
	var cl jwtClaims
	_, err := jwt.ParseWithClaims(string(raw), &cl, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Principal{}, domain.E(domain.KindTokenSignature, "invalid token signature")
		default:
			return domain.Principal{}, domain.E(domain.KindTokenMalformed, "malformed token")
		}
	}

	if cl.Issuer != m.issuer {
		return domain.Principal{}, domain.E(domain.KindTokenIssuer, "unexpected token issuer")
	}
	if !containsAudience(cl.Audience, m.audience) {
		return domain.Principal{}, domain.E(domain.KindTokenAudience, "unexpected token audience")
	}
	if cl.ExpiresAt == nil || !cl.ExpiresAt.Time.After(now) {
		return domain.Principal{}, domain.E(domain.KindTokenExpired, "token expired")
	}

	role := domain.Role(cl.Role)
	if cl.Subject == "" || !role.Valid() {
		return domain.Principal{}, domain.E(domain.KindTokenMalformed, "malformed token claims")
	}
	return domain.Principal{Username: cl.Subject, Role: role}, nil
}

// MatchesSubject: токен валиден И его subject равен username.
func (m *Manager) MatchesSubject(raw domain.Token, username string, now time.Time) bool {
	p, err := m.Verify(raw, now)
	return err == nil && p.Username == username
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}
