package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/shipment-tracker/docs"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/app"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/assistant"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/auth"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/config"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/events"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/handler"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/middleware"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/postgres"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/pricing"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/repo"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/service"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/cache"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Shipment Tracker API
// @version         1.0
// @description     Документация HTTP API сервиса отправлений
// @BasePath        /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf, err := config.New()
	panicIfErr("failed to read config", err)
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var (
		shipmentRepo service.ShipmentRepo
		userRepo     service.UserRepo
		txManager    trm.Manager
	)
	switch conf.StorageDriver {
	case config.StorageDriverMemory:
		store := repo.NewMemoryStore()
		shipmentRepo, userRepo = store.Shipments(), store.Users()
		txManager = trm.NewNopManager()
		logger.Warn("using in-memory storage, data is lost on restart")
	default:
		db, err := postgres.New(ctx, logger, conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		logger.Info("postgres connected")

		panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))
		shipmentRepo, userRepo = repo.NewShipmentRepo(db), repo.NewUserRepo(db)
		txManager = trm.NewManager(db)
	}

	// nil, если kafka выключена
	var publisher service.EventPublisher
	if conf.Kafka.Enabled {
		p := events.NewPublisher(conf.Kafka)
		defer p.Close()
		publisher = p
	}

	gemini, err := assistant.NewGemini(ctx, conf.Gemini)
	panicIfErr("failed to init gemini", err)
	if conf.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, packing instructions are unavailable")
	}

	packingCache := cache.NewLRU[string, string](conf.PackingCache.Capacity, conf.PackingCache.TTL)
	tokens := auth.NewTokenService(conf.JWT)
	engine := pricing.NewEngine(conf.Pricing)

	shipmentService := service.NewShipmentService(logger, txManager, shipmentRepo, engine, publisher)
	packingService := service.NewPackingService(logger, shipmentService, gemini, packingCache)
	userService := service.NewUserService(logger, userRepo, tokens)

	service.RegisterMetrics(prometheus.DefaultRegisterer)
	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	authMiddleware := middleware.Auth(logger, tokens, userService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewUserHandler(logger, authMiddleware, userService),
		handler.NewShipmentHandler(logger, authMiddleware, shipmentService, packingService),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewTrackingConsumer(logger, conf.Kafka, shipmentService))
	}
	app.SetStarters(packingCache)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case config.EnvProduction:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
