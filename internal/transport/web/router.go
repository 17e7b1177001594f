package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/vazgensoghoyan/folk-is-love/internal/docs"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/mw"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/auth"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/comment"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/event"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/health"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/post"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/tag"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/user"
)

type routerHandlers struct {
	health   *health.Handler
	auth     *auth.Handler
	posts    *post.Handler
	events   *event.Handler
	comments *comment.Handler
	tags     *tag.Handler
	users    *user.Handler
}

func newRouter(h routerHandlers, tokens domain.TokenManager, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// Чтение публично, мутации — под RequireAuth. Кто именно и с какой
	// ролью что может — решают сервисы, не роутер.
	guard := func(fn http.HandlerFunc) http.Handler {
		return mw.RequireAuth(tokens, fn)
	}

	// health
	mux.HandleFunc("GET /v1/healthz", h.health.Liveness)
	mux.HandleFunc("GET /v1/readyz", h.health.Readiness)

	// auth
	mux.HandleFunc("POST /v1/auth/register", h.auth.Register)
	mux.HandleFunc("POST /v1/auth/login", h.auth.Login)

	// posts
	mux.HandleFunc("GET /v1/posts", h.posts.List)
	mux.HandleFunc("GET /v1/posts/{id}", h.posts.Get)
	mux.Handle("POST /v1/posts", guard(h.posts.Create))
	mux.Handle("PUT /v1/posts/{id}", guard(h.posts.Update))
	mux.Handle("DELETE /v1/posts/{id}", guard(h.posts.Delete))

	// comments
	mux.HandleFunc("GET /v1/posts/{id}/comments", h.comments.ByPost)
	mux.Handle("POST /v1/posts/{id}/comments", guard(h.comments.Add))
	mux.Handle("PUT /v1/comments/{id}", guard(h.comments.Update))
	mux.Handle("DELETE /v1/comments/{id}", guard(h.comments.Delete))

	// events
	mux.HandleFunc("GET /v1/events", h.events.List)
	mux.HandleFunc("GET /v1/events/upcoming", h.events.Upcoming)
	mux.HandleFunc("GET /v1/events/{id}", h.events.Get)
	mux.Handle("POST /v1/events", guard(h.events.Create))
	mux.Handle("PUT /v1/events/{id}", guard(h.events.Update))
	mux.Handle("DELETE /v1/events/{id}", guard(h.events.Delete))

	// tags
	mux.HandleFunc("GET /v1/tags", h.tags.List)
	mux.HandleFunc("GET /v1/tags/{id}", h.tags.Get)
	mux.Handle("POST /v1/tags", guard(h.tags.Create))
	mux.Handle("PUT /v1/tags/{id}", guard(h.tags.Rename))
	mux.Handle("DELETE /v1/tags/{id}", guard(h.tags.Delete))

	// users
	mux.HandleFunc("GET /v1/users/{username}", h.users.Get)
	mux.Handle("POST /v1/users/me/interests/{tagID}", guard(h.users.AddInterest))
	mux.Handle("DELETE /v1/users/me/interests/{tagID}", guard(h.users.RemoveInterest))
	mux.Handle("DELETE /v1/users/{id}", guard(h.users.Delete))
	mux.Handle("POST /v1/users/{id}/ban", guard(h.users.Ban))
	mux.Handle("POST /v1/users/{id}/unban", guard(h.users.Unban))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}
