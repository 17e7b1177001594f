package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/vazgensoghoyan/folk-is-love/internal/config"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/auth"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/comment"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/event"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/health"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/post"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/tag"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web/v1/user"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, db, cache health.Pinger, tokens domain.TokenManager, svc Services) *Server {
	sub := func(name string) *log.Logger {
		return log.New(logger.Writer(), logger.Prefix()+"["+name+"] ", logger.Flags())
	}

	handlers := routerHandlers{
		health:   &health.Handler{Log: sub("health"), DB: db, Cache: cache},
		auth:     &auth.Handler{Log: sub("auth"), Auth: svc.Auth},
		posts:    &post.Handler{Log: sub("post"), Posts: svc.Posts},
		events:   &event.Handler{Log: sub("event"), Events: svc.Events},
		comments: &comment.Handler{Log: sub("comment"), Comments: svc.Comments},
		tags:     &tag.Handler{Log: sub("tag"), Tags: svc.Tags},
		users:    &user.Handler{Log: sub("user"), Users: svc.Users},
	}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(handlers, tokens, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
