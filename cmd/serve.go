package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api"
	adminLoginHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/admin_login"
	checkAvailabilityHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/delete_booking"
	availabilityRangeHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/get_availability_range"
	getBookingHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/get_booking"
	healthHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/list_bookings"
	updateStatusHandler "github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/WeddingSalon-BookingService/internal/api/middleware"
	"github.com/m04kA/WeddingSalon-BookingService/internal/config"
	"github.com/m04kA/WeddingSalon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/memory"
	"github.com/m04kA/WeddingSalon-BookingService/internal/infra/storage/migrations"
	"github.com/m04kA/WeddingSalon-BookingService/internal/integrations/notifier"
	authService "github.com/m04kA/WeddingSalon-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/WeddingSalon-BookingService/internal/service/bookings"
	checkAvailabilityUC "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/create_booking"
	availabilityRangeUC "github.com/m04kA/WeddingSalon-BookingService/internal/usecase/get_availability_range"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/logger"
	"github.com/m04kA/WeddingSalon-BookingService/pkg/metrics"
)

// bookingStore общий контракт postgres и in-memory хранилищ
type bookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type eventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *domain.Booking) error
	PublishStatusChanged(ctx context.Context, booking *domain.Booking, from domain.BookingStatus) error
	PublishBookingDeleted(ctx context.Context, id string) error
	Close() error
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting WeddingSalon-BookingService...")

	// Метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище бронирований
	store, db, err := openStore(ctx, cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	// Публикация событий
	var publisher eventPublisher = notifier.NopPublisher{}
	if cfg.RabbitMQ.Enabled {
		publisher = notifier.NewClient(
			cfg.RabbitMQ.URL,
			cfg.RabbitMQ.Queue,
			time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second,
			log,
		)
		log.Info("Booking events will be published to queue %s", cfg.RabbitMQ.Queue)
	}
	defer publisher.Close()

	// Rate limiting на Redis
	var limiter middleware.Limiter
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: time.Duration(cfg.Redis.DialTimeout) * time.Second,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Redis.DialTimeout)*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unreachable at %s, rate limiting will pass requests through: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Rate limiting enabled (redis=%s, capacity=%d)", cfg.Redis.Addr, cfg.RateLimit.Capacity)
		}
		cancel()

		limiter = middleware.NewTokenBucket(rdb, middleware.TokenBucketConfig{
			Capacity:       cfg.RateLimit.Capacity,
			RefillTokens:   cfg.RateLimit.RefillTokens,
			RefillInterval: time.Duration(cfg.RateLimit.RefillInterval) * time.Second,
			TTL:            time.Duration(cfg.RateLimit.TTL) * time.Second,
			Prefix:         cfg.RateLimit.Prefix,
		})
	}

	location, err := cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("invalid booking.time_zone: %w", err)
	}

	// Сервисы и use cases
	authSvc := authService.NewService(authService.Config{
		Username:     cfg.Auth.Username,
		PasswordHash: cfg.Auth.PasswordHash,
		JWTSecret:    cfg.Auth.JWTSecret,
		Issuer:       cfg.Auth.Issuer,
		TokenTTL:     time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
	}, log)

	bookingSvc := bookingsService.NewService(store, publisher, metricsCollector, log)

	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		publisher,
		metricsCollector,
		createBookingUC.Rules{
			MaxGuestCount:      cfg.Booking.MaxGuestCount,
			AdvanceBookingDays: cfg.Booking.AdvanceBookingDays,
			Location:           location,
		},
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(store, metricsCollector, log)
	availabilityRangeUseCase := availabilityRangeUC.NewUseCase(store, log)

	// Handlers
	handlers := api.Handlers{
		Health:              healthHandler.NewHandler(store, log),
		CheckAvailability:   checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log),
		AvailabilityRange:   availabilityRangeHandler.NewHandler(availabilityRangeUseCase, log),
		CreateBooking:       createBookingHandler.NewHandler(createBookingUseCase, log),
		AdminLogin:          adminLoginHandler.NewHandler(authSvc, log),
		ListBookings:        listBookingsHandler.NewHandler(bookingSvc, log),
		GetBooking:          getBookingHandler.NewHandler(bookingSvc, log),
		UpdateBookingStatus: updateStatusHandler.NewHandler(bookingSvc, log),
		DeleteBooking:       deleteBookingHandler.NewHandler(bookingSvc, log),
	}

	routerCfg := api.RouterConfig{
		Auth:       authSvc,
		Limiter:    limiter,
		TrustProxy: cfg.RateLimit.TrustProxy,
		CORS: cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: cfg.CORS.AllowCredentials,
		},
		Logger: log,
	}
	if cfg.Metrics.Enabled {
		routerCfg.Metrics = metricsCollector
		routerCfg.MetricsPath = cfg.Metrics.Path
		routerCfg.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(routerCfg, handlers),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed to start: %w", err)
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// openStore выбирает хранилище по storage.driver. Для postgres возвращает и пул, его закрывает вызывающий.
func openStore(
	ctx context.Context,
	cfg *config.Config,
	m *metrics.Metrics,
	stopMetrics <-chan struct{},
	log *logger.Logger,
) (bookingStore, *sql.DB, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn("Using in-memory booking store, data is lost on restart")
		return memory.NewRepository(), nil, nil
	}

	db, err := openPostgres(cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Storage.AutoMigrate {
		migrator, err := migrations.New(db, log)
		if err == nil {
			err = migrator.Up(ctx)
		}
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info("Database migrations applied")
	}

	wrappedDB := dbmetrics.Wrap(db, m)
	if m != nil {
		go wrappedDB.CollectPoolStats(time.Duration(cfg.Metrics.PoolStatsInterval)*time.Second, stopMetrics)
		log.Info("Database metrics collection started")
	}

	return bookingRepo.NewRepository(wrappedDB, time.Duration(cfg.Database.QueryTimeout)*time.Second), wrappedDB.Unwrap(), nil
}
