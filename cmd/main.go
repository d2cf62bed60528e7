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

	bookAppointmentHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/cancel_appointment"
	getAppointmentHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/get_available_slots"
	getDoctorHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/get_doctor"
	getDoctorScheduleHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/get_doctor_schedule"
	listAppointmentsHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/list_appointments"
	listDoctorsHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/list_doctors"
	rescheduleAppointmentHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/reschedule_appointment"
	updateAppointmentStatusHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/update_appointment_status"
	updateDoctorScheduleHandler "github.com/medipoint/MP-AppointmentService/internal/api/handlers/update_doctor_schedule"
	"github.com/medipoint/MP-AppointmentService/internal/api/middleware"
	"github.com/medipoint/MP-AppointmentService/internal/config"
	appointmentRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/appointment"
	doctorRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/doctor"
	scheduleRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/schedule"
	appointmentsService "github.com/medipoint/MP-AppointmentService/internal/service/appointments"
	doctorsService "github.com/medipoint/MP-AppointmentService/internal/service/doctors"
	scheduleService "github.com/medipoint/MP-AppointmentService/internal/service/schedule"
	bookAppointmentUC "github.com/medipoint/MP-AppointmentService/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/medipoint/MP-AppointmentService/internal/usecase/get_available_slots"
	"github.com/medipoint/MP-AppointmentService/pkg/dbmetrics"
	"github.com/medipoint/MP-AppointmentService/pkg/logger"
	"github.com/medipoint/MP-AppointmentService/pkg/metrics"
	"github.com/medipoint/MP-AppointmentService/pkg/simpletxmanager"
	"github.com/medipoint/MP-AppointmentService/pkg/txmanager"
)

// repositories собирает обе реализации хранилища за общими интерфейсами
type repositories struct {
	appointments interface {
		bookAppointmentUC.AppointmentRepository
		appointmentsService.AppointmentRepository
		getAvailableSlotsUC.AppointmentRepository
	}
	doctors interface {
		doctorsService.DoctorRepository
		scheduleService.DoctorRepository
	}
	schedules scheduleService.ScheduleRepository
}

// TxManager интерфейс транзакционного менеджера (используется в usecases и сервисах)
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting MP-AppointmentService...")
	log.Info("Configuration loaded from config.toml (storage driver=%s)", cfg.Storage.Driver)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	var (
		repos repositories
		txMgr TxManager
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			repos.appointments = appointmentRepo.NewRepository(wrappedDB)
			repos.doctors = doctorRepo.NewRepository(wrappedDB)
			repos.schedules = scheduleRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			repos.appointments = appointmentRepo.NewRepository(db)
			repos.doctors = doctorRepo.NewRepository(db)
			repos.schedules = scheduleRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}

	case config.StorageMemory:
		// In-memory хранилище: store атомарен сам по себе, транзакции не нужны
		apptStore := appointmentRepo.NewMemoryStore()
		doctorStore := doctorRepo.NewMemoryStore()
		scheduleStore := scheduleRepo.NewMemoryStore()

		now := time.Now()
		if err := doctorRepo.SeedDirectory(context.Background(), doctorStore, now); err != nil {
			log.Fatal("Failed to seed doctor directory: %v", err)
		}
		log.Info("Doctor directory seeded")

		if cfg.Storage.SeedDemoData {
			if err := appointmentRepo.SeedDemoData(context.Background(), apptStore, now); err != nil {
				log.Fatal("Failed to seed demo appointments: %v", err)
			}
			log.Info("Demo appointments seeded")
		}

		repos.appointments = apptStore
		repos.doctors = doctorStore
		repos.schedules = scheduleStore
		txMgr = txmanager.NewNop()
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(repos.appointments, txMgr, log)
	doctorSvc := doctorsService.NewService(repos.doctors, log)
	scheduleSvc := scheduleService.NewService(repos.schedules, repos.doctors, log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(repos.appointments, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		repos.appointments,
		repos.doctors,
		repos.schedules,
		log,
	)

	// Инициализируем handlers
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(appointmentSvc, log)
	listDoctors := listDoctorsHandler.NewHandler(doctorSvc, log)
	getDoctor := getDoctorHandler.NewHandler(doctorSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDoctorSchedule := getDoctorScheduleHandler.NewHandler(scheduleSvc, log)
	updateDoctorSchedule := updateDoctorScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник врачей
	api.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}", getDoctor.Handle).Methods(http.MethodGet)

	// Доступные слоты врача на дату
	api.HandleFunc("/doctors/{doctorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание врача
	api.HandleFunc("/doctors/{doctorId}/schedule", getDoctorSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на прием ---
	// Бронирование записи
	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// Список записей с фильтрацией
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Обновление статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Перенос записи на другой слот
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// --- Управление расписанием (для администраторов клиник) ---
	protected.HandleFunc("/doctors/{doctorId}/schedule", updateDoctorSchedule.Handle).Methods(http.MethodPut)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
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
