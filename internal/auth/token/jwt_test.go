package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

const (
	testSecret   = "MySuperSecretKeyForJwtTesting123456!"
	testIssuer   = "folk-is-love"
	testAudience = "folk-is-love-api"
	testTTL      = time.Hour
)

func newManager() *Manager {
	return New(testSecret, testIssuer, testAudience, testTTL)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	m := newManager()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, p := range []domain.Principal{
		{Username: "bob", Role: domain.RoleUser},
		{Username: "carol", Role: domain.RoleAdmin},
	} {
		tok, err := m.Issue(p, now)
		require.NoError(t, err)
		assert.Len(t, strings.Split(string(tok), "."), 3)

		got, err := m.Verify(tok, now.Add(time.Second))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	m := newManager()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok, err := m.Issue(domain.Principal{Username: "bob", Role: domain.RoleUser}, now)
	require.NoError(t, err)

	// ровно на exp токен уже невалиден (exp строго в будущем)
	_, err = m.Verify(tok, now.Add(testTTL))
	assert.Equal(t, domain.KindTokenExpired, domain.KindOf(err))

	_, err = m.Verify(tok, now.Add(testTTL+time.Second))
	assert.Equal(t, domain.KindTokenExpired, domain.KindOf(err))
}

func TestVerifyTamperedSignature(t *testing.T) {
	t.Parallel()

	m := newManager()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok, err := m.Issue(domain.Principal{Username: "bob", Role: domain.RoleUser}, now)
	require.NoError(t, err)

	parts := strings.Split(string(tok), ".")
	require.Len(t, parts, 3)

	// меняем первый символ сегмента подписи на другой символ алфавита
	// (последний не трогаем: его младшие биты — padding)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := domain.Token(parts[0] + "." + parts[1] + "." + string(sig))

	_, err = m.Verify(tampered, now.Add(time.Second))
	assert.Equal(t, domain.KindTokenSignature, domain.KindOf(err))
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tok, err := New("another-secret-another-secret-123", testIssuer, testAudience, testTTL).
		Issue(domain.Principal{Username: "bob", Role: domain.RoleUser}, now)
	require.NoError(t, err)

	_, err = newManager().Verify(tok, now.Add(time.Second))
	assert.Equal(t, domain.KindTokenSignature, domain.KindOf(err))
}

func TestVerifyIssuerAudiencePinning(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := domain.Principal{Username: "bob", Role: domain.RoleUser}

	// верный секрет, чужой iss
	wrongIss, err := New(testSecret, "other-service", testAudience, testTTL).Issue(p, now)
	require.NoError(t, err)
	_, err = newManager().Verify(wrongIss, now.Add(time.Second))
	assert.Equal(t, domain.KindTokenIssuer, domain.KindOf(err))

	// верный секрет, чужой aud
	wrongAud, err := New(testSecret, testIssuer, "other-consumers", testTTL).Issue(p, now)
	require.NoError(t, err)
	_, err = newManager().Verify(wrongAud, now.Add(time.Second))
	assert.Equal(t, domain.KindTokenAudience, domain.KindOf(err))
}

func TestVerifyIssuerCheckedBeforeExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// чужой iss И просроченный: побеждает iss (порядок: подпись -> iss -> aud -> exp)
	tok, err := New(testSecret, "other-service", testAudience, testTTL).
		Issue(domain.Principal{Username: "bob", Role: domain.RoleUser}, now)
	require.NoError(t, err)

	_, err = newManager().Verify(tok, now.Add(testTTL+time.Hour))
	assert.Equal(t, domain.KindTokenIssuer, domain.KindOf(err))
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	m := newManager()
	now := time.Now().UTC()

	for _, raw := range []string{"", "garbage", "a.b", "not.a.jwt"} {
		_, err := m.Verify(domain.Token(raw), now)
		assert.Equal(t, domain.KindTokenMalformed, domain.KindOf(err), "token %q", raw)
	}
}

func TestMatchesSubject(t *testing.T) {
	t.Parallel()

	m := newManager()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok, err := m.Issue(domain.Principal{Username: "bob", Role: domain.RoleUser}, now)
	require.NoError(t, err)

	assert.True(t, m.MatchesSubject(tok, "bob", now.Add(time.Second)))
	assert.False(t, m.MatchesSubject(tok, "dave", now.Add(time.Second)))
	assert.False(t, m.MatchesSubject(tok, "bob", now.Add(testTTL+time.Second)))
	assert.False(t, m.MatchesSubject("garbage", "bob", now))
}
