// Package application assembles the process: config, connectors,
// repositories, services, the HTTP surface and the background modules.
package application

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"harbour-market/internal/config"
	"harbour-market/internal/domain/service/catalog"
	"harbour-market/internal/domain/service/negotiation"
	"harbour-market/internal/infrastructure/mailer"
	"harbour-market/internal/infrastructure/persistence"
	"harbour-market/internal/server"
	"harbour-market/internal/transport/tasks"
	"harbour-market/internal/worker/outboxrelay"
	"harbour-market/pkg/application/connectors"
	"harbour-market/pkg/application/modules"
	"harbour-market/pkg/logx"
	"harbour-market/pkg/middlewarex"
)

const logFieldMaxLen = 4096

func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	postgres := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	defer postgres.Close(ctx)

	redis := &connectors.Redis{
		Address:            cfg.Redis.Address,
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	redis.Client(ctx)
	defer redis.Close(ctx)

	store := persistence.NewStore(postgres.Client(ctx))

	equipmentRepo := persistence.NewEquipmentRepository(store)
	bidRepo := persistence.NewBidRepository(store)
	quoteRepo := persistence.NewQuoteRepository(store)
	cartRepo := persistence.NewCartRepository(store)
	userRepo := persistence.NewUserRepository(store)
	sellerRepo := persistence.NewSellerRepository(store)
	notificationRepo := persistence.NewNotificationRepository(store)
	outboxRepo := persistence.NewOutboxRepository(store)

	negotiationService := negotiation.NewService(
		store,
		equipmentRepo,
		bidRepo,
		quoteRepo,
		cartRepo,
		userRepo,
		sellerRepo,
		outboxRepo,
	)

	catalogService := catalog.NewService(
		equipmentRepo,
		bidRepo,
		quoteRepo,
		cartRepo,
		notificationRepo,
		sellerRepo,
	)

	mailClient := mailer.NewClient(cfg.Mailer.BaseURL, cfg.Mailer.From, cfg.Mailer.APIKey, cfg.Mailer.Timeout)
	taskHandler := tasks.NewHandler(mailClient, notificationRepo)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DatabaseNumber,
	})
	defer asynqClient.Close()

	relay := outboxrelay.NewRelay(outboxRepo, asynqClient).
		WithPollInterval(cfg.Worker.RelayPollInterval).
		WithBatchSize(cfg.Worker.RelayBatchSize)

	router := chi.NewRouter()

	masker := logx.NewSensitiveDataMasker()
	router.Use(
		middlewarex.TraceID,
		middlewarex.UserID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Recovery,
	)

	httpAPI := server.NewServer(
		server.NewNegotiationServer(negotiationService),
		server.NewCatalogServer(catalogService),
	)
	httpAPI.RegisterRoutes(router)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.Server.ShutdownTimeout}.Run(ctx, g, &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	})

	modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DatabaseNumber,
		Concurrency:   cfg.Worker.QueueConcurrency,
	}.Run(ctx, g, modules.AsynqQueues{tasks.QueueDispatch: 1}, taskHandler.Handlers()...)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Server.MetricListenAddress,
	}.Run(ctx, g)

	if err = relay.Start(ctx); err != nil {
		return fmt.Errorf("relay.Start: %w", err)
	}
	defer relay.Stop()

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
