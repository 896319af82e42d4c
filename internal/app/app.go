// Package app собирает граф объектов сервиса и управляет его жизненным циклом.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/ecom/internal/health"
	"github.com/vladislavdragonenkov/ecom/internal/httpapi"
	"github.com/vladislavdragonenkov/ecom/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/ecom/internal/metrics"
	"github.com/vladislavdragonenkov/ecom/internal/service/catalog"
	"github.com/vladislavdragonenkov/ecom/internal/service/orders"
	"github.com/vladislavdragonenkov/ecom/internal/storage/memory"
	mongostore "github.com/vladislavdragonenkov/ecom/internal/storage/mongo"
	"github.com/vladislavdragonenkov/ecom/internal/version"
)

// Run запускает сервис и блокируется до отмены контекста или фатальной ошибки.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	healthHandler := healthcheck.NewHandler(version.String())

	// Хранилище: явный жизненный цикл, handle передаётся в репозитории.
	var (
		productRepo domain.ProductRepository
		orderRepo   domain.OrderRepository
	)
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		logger.Warn("используем in-memory хранилище, данные не переживут рестарт")
		productRepo = memory.NewProductRepository()
		orderRepo = memory.NewOrderRepository()
	case StorageDriverMongo, "":
		store, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := store.Close(closeCtx); err != nil {
				logger.WithError(err).Warn("failed to close storage")
			}
		}()
		productRepo = mongostore.NewProductRepository(store)
		orderRepo = mongostore.NewOrderRepository(store)
		healthHandler.RegisterChecker("storage", healthcheck.NewPingChecker("storage", store))
		logger.WithField("database", cfg.MongoDatabase).Info("mongo storage initialized")
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	// Kafka producer опционален: без брокеров события не публикуются.
	var producer *kafka.Producer
	var publisher orders.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			producer = p
			publisher = p
			logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer initialized")
		}
	}
	defer func() {
		if producer == nil {
			return
		}
		if err := producer.Close(); err != nil {
			logger.WithError(err).Warn("failed to close kafka producer")
		}
	}()

	catalogSvc := catalog.NewService(productRepo, logger.WithField("layer", "catalog"))
	ordersSvc := orders.NewService(orderRepo, productRepo, publisher, logger.WithField("layer", "orders"))

	httpMetrics := metrics.NewHTTPMetrics()
	handler := httpapi.NewHandler(catalogSvc, ordersSvc, logger.WithField("layer", "http"))
	router := httpapi.NewRouter(handler, httpMetrics.Middleware)

	opsSrv := startOpsServer(ctx, cfg.OpsAddr, logger, healthHandler)

	apiSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
		errCh <- apiSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP сервер")
		shutdownHTTP(apiSrv, cfg.ShutdownTimeout, logger)
		shutdownHTTP(opsSrv, cfg.ShutdownTimeout, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(opsSrv, cfg.ShutdownTimeout, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// startOpsServer запускает служебный HTTP: /metrics, /healthz, /livez, /readyz.
func startOpsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/readyz, %s/livez", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("ops server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, 5*time.Second, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, timeout time.Duration, logger *log.Entry) {
	if srv == nil {
		return
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
