package app

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"openpay-gateway/config"
	controller "openpay-gateway/internal/controller/http"
	"openpay-gateway/internal/controller/http/handlers"
	"openpay-gateway/internal/domain/payment"
	"openpay-gateway/internal/external/openpay"
	"openpay-gateway/internal/external/opensearch"
	"openpay-gateway/internal/messaging"
	order_repo "openpay-gateway/internal/repo/order"
	settings_repo "openpay-gateway/internal/repo/settings"
	store_repo "openpay-gateway/internal/repo/store"
	"openpay-gateway/internal/tasks"
	"openpay-gateway/pkg/health"
	"openpay-gateway/pkg/logger"
	"openpay-gateway/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	err = ApplyMigrations(cfg.PgURL, MIGRATION_FS)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	settingsRepo := settings_repo.NewPgSettingsRepo(pool)
	storeRepo := store_repo.NewPgStoreRepo(pool)
	orderRepo := order_repo.NewPgOrderRepo(pool)
	customerRepo := order_repo.NewPgCustomerRepo(pool)

	apiFactory := openpay.NewFactory(&http.Client{Timeout: cfg.HTTPOpenPayClientTimeout})
	routes := controller.NewRoutes(cfg.ServiceBaseURL, cfg.StorefrontBaseURL)

	var events payment.EventSink
	if cfg.OpensearchEnabled {
		sink, err := opensearch.NewEventSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexEvents)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - opensearch.NewEventSink: %w", err))
		}
		events = sink
	}

	paymentService := payment.NewService(
		settingsRepo,
		storeRepo,
		orderRepo,
		customerRepo,
		apiFactory,
		routes,
		payment.CustomerNameSettings{
			FirstNameEnabled: cfg.CustomerFirstNameEnabled,
			LastNameEnabled:  cfg.CustomerLastNameEnabled,
			UsernamesEnabled: cfg.CustomerUsernamesEnabled,
		},
		events,
		l,
	)

	// Deferred callback mode hands the callback to Kafka and the workers
	// finish the capture; sync mode captures inside the HTTP request.
	var callbackPublisher messaging.Publisher
	if cfg.CallbackDeferred() {
		l.Info("Callback mode: kafka - starting callback workers")
		callbackPublisher = StartWorkers(ctx, l, cfg, paymentService)
	}

	callbackHandler := handlers.NewCallbackHandler(paymentService, routes, callbackPublisher, l)
	paymentsHandler := handlers.NewPaymentsHandler(paymentService)

	checkers := []health.Checker{health.NewPostgresChecker(pool.Pool)}
	if cfg.CallbackDeferred() {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}

	router := controller.NewRouter(callbackHandler, paymentsHandler, health.NewRegistry(checkers...))
	router.SetUp(engine)

	scheduler := tasks.NewScheduler(
		l,
		cfg.TaskInterval,
		tasks.NewLimitsSyncTask(l, storeRepo, paymentService),
		tasks.NewOrderSweepTask(l, storeRepo, orderRepo, paymentService),
	)
	go scheduler.Start(ctx)

	// Start HTTP server in a goroutine
	go func() {
		l.Info("Starting HTTP server: port=%d", cfg.Port)
		if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			l.Error("HTTP server error: error=%v", err)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	l.Info("Shutting down gracefully...")
}
