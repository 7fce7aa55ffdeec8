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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HallBookingService/internal/api/handlers"
	calculatePriceHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/calculate_price"
	cancelRecordHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/cancel_record"
	createCouponHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/create_coupon"
	createHallHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/create_hall"
	createRecordHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/create_record"
	getCouponHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_coupon"
	getHallHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_hall"
	getHallAvailabilityHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_hall_availability"
	getRecordHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_record"
	getSettingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/get_setting"
	listHallsHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/list_halls"
	updateHallPricesHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/update_hall_prices"
	updateSettingHandler "github.com/m04kA/SMC-HallBookingService/internal/api/handlers/update_setting"
	"github.com/m04kA/SMC-HallBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-HallBookingService/internal/config"
	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	hallCache "github.com/m04kA/SMC-HallBookingService/internal/infra/cache/hall"
	"github.com/m04kA/SMC-HallBookingService/internal/infra/queue"
	couponRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/coupon"
	hallRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/hall"
	reservationRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/reservation"
	settingRepo "github.com/m04kA/SMC-HallBookingService/internal/infra/storage/setting"
	couponsService "github.com/m04kA/SMC-HallBookingService/internal/service/coupons"
	hallsService "github.com/m04kA/SMC-HallBookingService/internal/service/halls"
	"github.com/m04kA/SMC-HallBookingService/internal/service/pricing"
	recordsService "github.com/m04kA/SMC-HallBookingService/internal/service/records"
	settingsService "github.com/m04kA/SMC-HallBookingService/internal/service/settings"
	calculatePriceUC "github.com/m04kA/SMC-HallBookingService/internal/usecase/calculate_price"
	createRecordUC "github.com/m04kA/SMC-HallBookingService/internal/usecase/create_record"
	getHallAvailabilityUC "github.com/m04kA/SMC-HallBookingService/internal/usecase/get_hall_availability"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/logger"
	"github.com/m04kA/SMC-HallBookingService/pkg/metrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/txmanager"
)

// hallReader источник залов для use cases: репозиторий или кэш поверх него
type hallReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-HallBookingService...")
	log.Info("Configuration loaded from config.toml")

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.App.Timezone, err)
	}
	log.Info("Server timezone: %s", loc.String())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	hallRepository := hallRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	settingRepository := settingRepo.NewRepository(wrappedDB)
	couponRepository := couponRepo.NewRepository(wrappedDB)

	// Кэш залов в Redis (если включен)
	var (
		halls      hallReader = hallRepository
		cacheLayer hallsService.HallCache
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, cache will fall back to database: %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		cached := hallCache.NewCachedRepository(hallRepository, redisClient, cfg.Redis.CacheTTL(), cfg.Redis.Prefix, log)
		halls = cached
		cacheLayer = cached
		log.Info("Hall cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.CacheTTL())
	}

	// Публикация событий в RabbitMQ (если включена)
	var publisher createRecordUC.EventPublisher = queue.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		publisher = queue.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		log.Info("RabbitMQ publisher enabled (queue=%s)", cfg.RabbitMQ.Queue)
	}

	// Счетчики бизнес-метрик: nil-интерфейс, если метрики выключены
	var (
		quotesCounter  calculatePriceUC.QuotesCounter
		recordsCounter createRecordUC.RecordsCounter
	)
	if cfg.Metrics.Enabled {
		quotesCounter = metricsCollector.PriceQuotesTotal
		recordsCounter = metricsCollector.RecordsCreatedTotal
	}

	// Инициализируем сервисы
	priceEngine := pricing.NewEngine(loc)
	hallSvc := hallsService.NewService(hallRepository, cacheLayer, txMgr, log)
	settingSvc := settingsService.NewService(settingRepository, log)
	couponSvc := couponsService.NewService(couponRepository, log)
	recordSvc := recordsService.NewService(reservationRepository, txMgr, log)

	// Инициализируем use cases
	getHallAvailabilityUseCase := getHallAvailabilityUC.NewUseCase(
		halls,
		reservationRepository,
		settingRepository,
		loc,
		log,
	)

	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		halls,
		couponRepository,
		priceEngine,
		quotesCounter,
		log,
	)

	createRecordUseCase := createRecordUC.NewUseCase(
		reservationRepository,
		settingRepository,
		calculatePriceUseCase,
		publisher,
		txMgr,
		recordsCounter,
		loc,
		log,
	)

	// Инициализируем handlers
	listHalls := listHallsHandler.NewHandler(hallSvc, log)
	getHall := getHallHandler.NewHandler(hallSvc, log)
	createHall := createHallHandler.NewHandler(hallSvc, log)
	updateHallPrices := updateHallPricesHandler.NewHandler(hallSvc, log)
	getHallAvailability := getHallAvailabilityHandler.NewHandler(getHallAvailabilityUseCase, log)
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	createRecord := createRecordHandler.NewHandler(createRecordUseCase, log)
	getRecord := getRecordHandler.NewHandler(recordSvc, log)
	cancelRecord := cancelRecordHandler.NewHandler(recordSvc, log)
	getSetting := getSettingHandler.NewHandler(settingSvc, log)
	updateSetting := updateSettingHandler.NewHandler(settingSvc, log)
	getCoupon := getCouponHandler.NewHandler(couponSvc, log)
	createCoupon := createCouponHandler.NewHandler(couponSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			log.Error("GET /health - Database is not reachable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "база данных недоступна")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	registerAPIRoutes(r, apiHandlers{
		ListHalls:           listHalls.Handle,
		GetHall:             getHall.Handle,
		GetHallAvailability: getHallAvailability.Handle,
		CalculatePrice:      calculatePrice.Handle,
		GetCoupon:           getCoupon.Handle,
		CreateRecord:        createRecord.Handle,
		GetRecord:           getRecord.Handle,
		CancelRecord:        cancelRecord.Handle,
		CreateHall:          createHall.Handle,
		UpdateHallPrices:    updateHallPrices.Handle,
		GetSetting:          getSetting.Handle,
		UpdateSetting:       updateSetting.Handle,
		CreateCoupon:        createCoupon.Handle,
	}, cfg.Auth.JWTSecret)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

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
}
