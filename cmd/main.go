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

	attachCustomerProofHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/attach_customer_proof"
	cancelBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_booking"
	checkInHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_out"
	confirmBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_booking"
	createCustomerHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_customer"
	createRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_room"
	getBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking"
	getCustomerHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_customer"
	getRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room"
	getRoomAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room_availability"
	listBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_bookings"
	listCustomersHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_customers"
	listRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_rooms"
	listUsersHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_users"
	loginHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/register"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	"github.com/m04kA/SMC-HotelService/internal/infra/migrator"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/customer"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
	availabilityService "github.com/m04kA/SMC-HotelService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-HotelService/internal/service/bookings"
	customersService "github.com/m04kA/SMC-HotelService/internal/service/customers"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	usersService "github.com/m04kA/SMC-HotelService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelService/migrations"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/jwt"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

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

	log.Info("Starting SMC-HotelService...")

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Миграции схемы
	if cfg.Database.AutoMigrate {
		m, err := migrator.New(db, migrations.FS, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := m.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Обёртка над БД: метрики запросов и транзакция в контексте
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)

	txMgr := txmanager.NewTransactionManager(wrappedDB)
	if metricsCollector != nil {
		txMgr = txMgr.WithObserver(txmanager.NewMetricsObserver(metricsCollector))
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	customerRepository := customerRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	tokens := jwt.New(cfg.Auth.SecretKey, time.Duration(cfg.Auth.AccessTokenTTLMinutes)*time.Minute)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, bookingsService.DefaultChargePolicy, log)
	roomSvc := roomsService.NewService(roomRepository, availabilitySvc, log)
	customerSvc := customersService.NewService(customerRepository, log)
	userSvc := usersService.NewService(userRepository, tokens, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		customerRepository,
		bookingRepository,
		availabilitySvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(userSvc, log)
	listUsers := listUsersHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)

	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getRoomAvailability := getRoomAvailabilityHandler.NewHandler(roomSvc, log)

	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	attachCustomerProof := attachCustomerProofHandler.NewHandler(customerSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	checkIn := checkInHandler.NewHandler(bookingSvc, log)
	checkOut := checkOutHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens, userRepository, log))

	// --- Сотрудники ---
	protected.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)

	// --- Номера ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}/availability", getRoomAvailability.Handle).Methods(http.MethodGet)

	// --- Гости ---
	protected.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}/proof", attachCustomerProof.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

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
