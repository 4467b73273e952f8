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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addAppointmentNotesHandler "github.com/tutorlink/booking-service/internal/api/handlers/add_appointment_notes"
	approvePayoutHandler "github.com/tutorlink/booking-service/internal/api/handlers/approve_payout"
	bookAppointmentHandler "github.com/tutorlink/booking-service/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/tutorlink/booking-service/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/tutorlink/booking-service/internal/api/handlers/complete_appointment"
	generateVideoTokenHandler "github.com/tutorlink/booking-service/internal/api/handlers/generate_video_token"
	getAvailabilityHandler "github.com/tutorlink/booking-service/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/tutorlink/booking-service/internal/api/handlers/get_available_slots"
	getBalanceHandler "github.com/tutorlink/booking-service/internal/api/handlers/get_balance"
	getEarningsHandler "github.com/tutorlink/booking-service/internal/api/handlers/get_earnings"
	getPayoutsHandler "github.com/tutorlink/booking-service/internal/api/handlers/get_payouts"
	getUserAppointmentsHandler "github.com/tutorlink/booking-service/internal/api/handlers/get_user_appointments"
	listTutorsHandler "github.com/tutorlink/booking-service/internal/api/handlers/list_tutors"
	purchaseCreditsHandler "github.com/tutorlink/booking-service/internal/api/handlers/purchase_credits"
	registerAccountHandler "github.com/tutorlink/booking-service/internal/api/handlers/register_account"
	requestPayoutHandler "github.com/tutorlink/booking-service/internal/api/handlers/request_payout"
	setAvailabilityHandler "github.com/tutorlink/booking-service/internal/api/handlers/set_availability"
	setUserRoleHandler "github.com/tutorlink/booking-service/internal/api/handlers/set_user_role"
	verifyTutorHandler "github.com/tutorlink/booking-service/internal/api/handlers/verify_tutor"
	"github.com/tutorlink/booking-service/internal/api/middleware"
	"github.com/tutorlink/booking-service/internal/config"
	accountRepo "github.com/tutorlink/booking-service/internal/infra/storage/account"
	appointmentRepo "github.com/tutorlink/booking-service/internal/infra/storage/appointment"
	availabilityRepo "github.com/tutorlink/booking-service/internal/infra/storage/availability"
	credittxRepo "github.com/tutorlink/booking-service/internal/infra/storage/credittx"
	payoutRepo "github.com/tutorlink/booking-service/internal/infra/storage/payout"
	"github.com/tutorlink/booking-service/internal/integrations/videoprovider"
	accountsService "github.com/tutorlink/booking-service/internal/service/accounts"
	appointmentsService "github.com/tutorlink/booking-service/internal/service/appointments"
	availabilityService "github.com/tutorlink/booking-service/internal/service/availability"
	ledgerService "github.com/tutorlink/booking-service/internal/service/ledger"
	payoutsService "github.com/tutorlink/booking-service/internal/service/payouts"
	bookAppointmentUC "github.com/tutorlink/booking-service/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/tutorlink/booking-service/internal/usecase/get_available_slots"
	"github.com/tutorlink/booking-service/pkg/dbmetrics"
	"github.com/tutorlink/booking-service/pkg/logger"
	"github.com/tutorlink/booking-service/pkg/metrics"
	"github.com/tutorlink/booking-service/pkg/simpletxmanager"
	"github.com/tutorlink/booking-service/pkg/txmanager"
)

// TxManager общий интерфейс для обеих реализаций менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

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

	log.Info("Starting TutorLink BookingService...")

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

	// Накатываем миграции (если включено)
	if cfg.Database.RunMigrations {
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatal("Failed to set migration dialect: %v", err)
		}
		if err := goose.Up(db, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied from %s", cfg.Database.MigrationsPath)
	}

	// Инициализируем клиент видеопровайдера
	videoClient := videoprovider.NewClient(
		cfg.VideoProvider.URL,
		cfg.VideoProvider.APIKey,
		cfg.VideoProvider.ApplicationID,
		time.Duration(cfg.VideoProvider.Timeout)*time.Second,
		log,
	)
	log.Info("Video provider client initialized (url=%s)", cfg.VideoProvider.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		accountRepository      *accountRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		credittxRepository     *credittxRepo.Repository
		payoutRepository       *payoutRepo.Repository
		txMgr                  TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		accountRepository = accountRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		credittxRepository = credittxRepo.NewRepository(wrappedDB)
		payoutRepository = payoutRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		accountRepository = accountRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		credittxRepository = credittxRepo.NewRepository(db)
		payoutRepository = payoutRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	ledgerSvc := ledgerService.NewService(accountRepository, credittxRepository, txMgr, log)
	accountsSvc := accountsService.NewService(accountRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, accountRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		accountRepository,
		ledgerSvc,
		videoClient,
		txMgr,
		realClock{},
		log,
	)
	payoutsSvc := payoutsService.NewService(payoutRepository, accountRepository, appointmentRepository, ledgerSvc, txMgr, log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		accountRepository,
		ledgerSvc,
		videoClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		accountRepository,
		availabilityRepository,
		log,
	)

	// Инициализируем handlers
	registerAccount := registerAccountHandler.NewHandler(accountsSvc, log)
	setUserRole := setUserRoleHandler.NewHandler(accountsSvc, log)
	listTutors := listTutorsHandler.NewHandler(accountsSvc, log)
	verifyTutor := verifyTutorHandler.NewHandler(accountsSvc, log)
	getBalance := getBalanceHandler.NewHandler(ledgerSvc, log)
	purchaseCredits := purchaseCreditsHandler.NewHandler(ledgerSvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	addAppointmentNotes := addAppointmentNotesHandler.NewHandler(appointmentsSvc, log)
	generateVideoToken := generateVideoTokenHandler.NewHandler(appointmentsSvc, log)
	requestPayout := requestPayoutHandler.NewHandler(payoutsSvc, log)
	approvePayout := approvePayoutHandler.NewHandler(payoutsSvc, log)
	getPayouts := getPayoutsHandler.NewHandler(payoutsSvc, log)
	getEarnings := getEarningsHandler.NewHandler(payoutsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/accounts", registerAccount.Handle).Methods(http.MethodPost)
	api.HandleFunc("/tutors", listTutors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tutors/{tutorId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tutors/{tutorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Аккаунты ---
	protected.HandleFunc("/accounts/role", setUserRole.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/tutors/{tutorId}/verification", verifyTutor.Handle).Methods(http.MethodPatch)

	// --- Кредиты ---
	protected.HandleFunc("/credits", getBalance.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/credits/purchase", purchaseCredits.Handle).Methods(http.MethodPost)

	// --- Доступность ---
	protected.HandleFunc("/availability", setAvailability.Handle).Methods(http.MethodPut)

	// --- Занятия ---
	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getUserAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/notes", addAppointmentNotes.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/video-token", generateVideoToken.Handle).Methods(http.MethodPost)

	// --- Выплаты ---
	protected.HandleFunc("/payouts", requestPayout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payouts", getPayouts.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payouts/{payoutId}/approve", approvePayout.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/earnings", getEarnings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
	}

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
