package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/subosito/gotenv"

	"github.com/Spok95/materials-catalog/internal/bot"
	"github.com/Spok95/materials-catalog/internal/config"
	"github.com/Spok95/materials-catalog/internal/domain/catalog"
	"github.com/Spok95/materials-catalog/internal/infra/db"
	httpx "github.com/Spok95/materials-catalog/internal/infra/http"
	"github.com/Spok95/materials-catalog/internal/infra/logger"
	"github.com/Spok95/materials-catalog/internal/infra/memstore"
	"github.com/Spok95/materials-catalog/internal/infra/metrics"
	"github.com/Spok95/materials-catalog/migrations"
)

func main() {
	configPath := flag.String("config", "config/example.yaml", "path to config file")
	flag.Parse()

	// .env необязателен
	_ = gotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("storage init failed", "err", err)
		return
	}
	defer closeStore()

	svc := catalog.NewService(store,
		catalog.WithLogger(log),
		catalog.WithMetrics(metrics.NewCatalog(prometheus.DefaultRegisterer)),
		catalog.WithYield(cfg.YieldModel()),
	)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, svc, log)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	if cfg.Telegram.Token != "" {
		api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
		if err != nil {
			log.Error("telegram init failed", "err", err)
		} else {
			log.Info("telegram bot authorized", "username", api.Self.UserName)
			b := bot.New(api, log, svc, cfg.Display.Currency)
			go func() {
				if err := b.Run(ctx, cfg.Telegram.Timeout); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("bot stopped", "err", err)
				}
			}()
		}
	}

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}

// openStore выбирает хранилище каталога по storage.driver.
func openStore(ctx context.Context, cfg config.Config, log *slog.Logger) (catalog.Store, func(), error) {
	if cfg.Storage.Driver == "memory" {
		log.Warn("using in-memory catalog, data is not persisted")
		return memstore.Seeded(), func() {}, nil
	}

	if err := db.Migrate(cfg.Postgres.DSN, migrations.FS); err != nil {
		return nil, nil, err
	}
	log.Info("migrations applied")

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, nil, err
	}
	log.Info("db connected")
	return catalog.NewRepo(pool), pool.Close, nil
}
