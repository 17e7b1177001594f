package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vazgensoghoyan/folk-is-love/internal/auth/password"
	"github.com/vazgensoghoyan/folk-is-love/internal/auth/token"
	"github.com/vazgensoghoyan/folk-is-love/internal/config"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
	redisx "github.com/vazgensoghoyan/folk-is-love/internal/infra/cache/redis"
	"github.com/vazgensoghoyan/folk-is-love/internal/infra/database/postgres"
	"github.com/vazgensoghoyan/folk-is-love/internal/service"
	"github.com/vazgensoghoyan/folk-is-love/internal/transport/web"
)

type App struct {
	config *config.Config
	server *web.Server
	log    *log.Logger
	cache  domain.Cache
	repo   *postgres.PGRepo
}

func Build(ctx context.Context) (*App, error) {
	base := log.New(os.Stdout, "[app] ", log.LstdFlags)

	serverLog := log.New(base.Writer(), base.Prefix()+"[server] ", base.Flags())
	pgLog := log.New(base.Writer(), base.Prefix()+"[postgres] ", base.Flags())
	redisLog := log.New(base.Writer(), base.Prefix()+"[redis] ", base.Flags())
	svcLog := log.New(base.Writer(), base.Prefix()+"[service] ", base.Flags())

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}
	base.Printf("\n  configuration: %s-------------------", cfg)

	base.Println("init PostgreSQL")
	pgRepo, err := postgres.NewPGRepo(ctx, pgLog, cfg.GetDSN(), cfg.DBScheme)
	if err != nil {
		return nil, fmt.Errorf("failed init postgres: %w", err)
	}
	base.Println("PostgreSQL is initialized")

	base.Println("init Redis")
	rc := redisx.New(redisx.Config{
		Addr:     cfg.RedisAddr,
		DB:       cfg.RedisDB,
		Password: cfg.RedisPassword,
	}, redisLog)
	if err := rc.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed init redis: %w", err)
	}
	base.Println("Redis is initialized")

	// Auth primitives
	hasher := password.NewDefault()
	tm := token.New(cfg.JWTSecret, cfg.TokenIssuer, cfg.TokenAudience, cfg.TokenTTL)

	svc := web.Services{
		Auth:     &service.Auth{Log: svcLog, Users: pgRepo, Hasher: hasher, Tokens: tm},
		Posts:    &service.Posts{Log: svcLog, Posts: pgRepo, Tags: pgRepo, Cache: rc, FeedTTL: cfg.FeedTTLSeconds},
		Events:   &service.Events{Log: svcLog, Events: pgRepo, Tags: pgRepo, Cache: rc, FeedTTL: cfg.FeedTTLSeconds},
		Comments: &service.Comments{Log: svcLog, Comments: pgRepo, Posts: pgRepo},
		Tags:     &service.Tags{Log: svcLog, Tags: pgRepo},
		Users:    &service.Users{Log: svcLog, Users: pgRepo, Tags: pgRepo},
	}

	base.Println("init Server")
	server := web.New(serverLog, cfg, pgRepo, rc, tm, svc)
	base.Println("Server is initialized")

	base.Println("build ended")
	return &App{
		config: cfg,
		server: server,
		log:    base,
		repo:   pgRepo,
		cache:  rc}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Println("start application...")
	go a.server.Run()
	<-ctx.Done()
	a.log.Println("stop application...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.server.Close(stopCtx)
	a.repo.Close()
	a.cache.Close()

	return nil
}
