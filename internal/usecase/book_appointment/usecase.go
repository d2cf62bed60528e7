package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	apptRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case бронирования записи на прием
type UseCase struct {
	apptRepo     AppointmentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	idGenerator  IDGenerator
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		idGenerator:  &uuidGenerator{},
		logger:       logger,
	}
}

// Execute выполняет бронирование записи
// Check-then-insert выполняется в сериализуемой транзакции, чтобы два
// конкурентных бронирования одного слота не прошли оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: patient=%s, doctor=%s, date=%s, time=%s",
		req.PatientID, req.DoctorID, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Собираем запись с дефолтами
	appt := &domain.Appointment{
		ID:                   uc.idGenerator.NewID(),
		PatientID:            req.PatientID,
		DoctorID:             req.DoctorID,
		DoctorName:           req.DoctorName,
		DoctorSpecialization: req.DoctorSpecialization,
		Date:                 req.Date,
		Time:                 req.Time,
		Status:               domain.StatusConfirmed,
		ConsultationFee:      *req.ConsultationFee,
		ConsultationType:     consultationTypeOrDefault(req.ConsultationType),
		Reason:               reasonOrDefault(req.Reason),
		Notes:                req.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// 4. Проверяем слот и сохраняем атомарно
	var created *domain.Appointment
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result, err := uc.apptRepo.CreateChecked(txCtx, appt)
		if err != nil {
			return err
		}
		created = result
		return nil
	})

	if err != nil {
		if errors.Is(err, apptRepo.ErrSlotTaken) {
			uc.logger.Warn("BookAppointment: slot taken: doctor=%s, date=%s, time=%s",
				req.DoctorID, req.Date, req.Time)
			return nil, ErrSlotConflict
		}
		uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%s", created.ID)

	return &Response{
		ID:                   created.ID,
		PatientID:            created.PatientID,
		DoctorID:             created.DoctorID,
		DoctorName:           created.DoctorName,
		DoctorSpecialization: created.DoctorSpecialization,
		Date:                 created.Date,
		Time:                 created.Time,
		Status:               string(created.Status),
		ConsultationFee:      created.ConsultationFee,
		ConsultationType:     string(created.ConsultationType),
		Reason:               created.Reason,
		Notes:                created.Notes,
		CreatedAt:            created.CreatedAt,
		UpdatedAt:            created.UpdatedAt,
	}, nil
}

// consultationTypeOrDefault подставляет in-person, если тип не указан
func consultationTypeOrDefault(value string) domain.ConsultationType {
	if value == "" {
		return domain.DefaultConsultationType
	}
	return domain.ConsultationType(value)
}

// reasonOrDefault подставляет причину по умолчанию, если не указана
func reasonOrDefault(value string) string {
	if value == "" {
		return domain.DefaultReason
	}
	return value
}

// uuidGenerator production-генератор идентификаторов
// UUID вместо последовательных номеров: count+1 из прототипа небезопасен
// при удалениях и конкурентных вставках
type uuidGenerator struct{}

// NewID возвращает новый уникальный идентификатор
func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}
