package main

import (
	"context"

	"github.com/anhtu2808/talent-nexus-sub000/internal/cache"
	"github.com/anhtu2808/talent-nexus-sub000/internal/config"
	"github.com/anhtu2808/talent-nexus-sub000/internal/database"
	"github.com/anhtu2808/talent-nexus-sub000/internal/handler"
	"github.com/anhtu2808/talent-nexus-sub000/internal/logger"
	"github.com/anhtu2808/talent-nexus-sub000/internal/pipeline"
	"github.com/anhtu2808/talent-nexus-sub000/internal/repository"
	"github.com/anhtu2808/talent-nexus-sub000/internal/store/memory"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	var store pipeline.Store
	if cfg.DB.DSN != "" {
		pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns, cfg.DB.ConnMaxLife)
		if err != nil {
			sugar.Fatal(err)
		}
		defer pool.Close()
		store = repository.NewRepository(pool)
		sugar.Info("using postgres store")
	} else {
		mem := memory.New()
		if cfg.Seed {
			mem.Seed()
		}
		store = mem
		sugar.Info("no DATABASE_URL set, using in-memory store")
	}

	var boards *cache.BoardCache
	if cfg.Redis.Addr != "" {
		client := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, client); err != nil {
			sugar.Warnw("redis unreachable, board cache disabled", "err", err)
		} else {
			boards = cache.NewBoardCache(client, cfg.Redis.BoardTTL)
		}
	}

	engine := pipeline.NewEngine(store, pipeline.LogSink{Logger: log})

	app := &application{
		Logger: log,
		Config: cfg,
		Handler: &handler.Handler{
			Logger: log,
			Engine: engine,
			Store:  store,
			Boards: boards,
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
