// Package principal — извлечение аутентифицированного принципала из
// контекста запроса. Криптографии здесь нет: токен уже проверен
// auth-middleware, пакет только нормализует "есть ли пригодный принципал"
// в один контракт. Принципал пере-извлекается на каждый вызов,
// кеширования нет — роль не может «протухнуть» на долгоживущем соединении.
package principal

import (
	"context"

	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

// ResolveCurrent возвращает принципала текущего запроса либо
// KindUnauthenticated, если контекст его не несёт (анонимный запрос,
// пустой или невалидный принципал).
func ResolveCurrent(ctx context.Context) (domain.Principal, error) {
	p, ok := domain.PrincipalFromCtx(ctx)
	if !ok || p.Username == "" || !p.Role.Valid() {
		return domain.Principal{}, domain.E(domain.KindUnauthenticated, "User is not authenticated")
	}
	return p, nil
}
