package domain

import "context"

// Ключ для хранения принципала в контексте HTTP-запроса.
// Принципал кладётся сюда только auth-middleware после проверки токена
// и живёт ровно один запрос (никакого общего состояния между запросами).
type ctxKey int

const principalCtxKey ctxKey = 1

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(Principal)
	return p, ok
}
