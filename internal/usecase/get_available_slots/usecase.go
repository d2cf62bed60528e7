package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	doctorRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/doctor"
	scheduleRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/schedule"
	"github.com/medipoint/MP-AppointmentService/pkg/ptr"
)

// UseCase use case получения доступных слотов врача на дату
type UseCase struct {
	apptRepo     AppointmentRepository
	doctorRepo   DoctorRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	doctorRepo DoctorRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		doctorRepo:   doctorRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Сетка слотов берется из расписания врача (или сетка по умолчанию),
// занятость определяется строгим строковым совпадением времени с
// не отмененными записями на эту дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s", req.DoctorID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что врач существует
	if _, err := uc.doctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 3. Получаем сетку слотов врача
	// Если расписание не настроено - используем сетку по умолчанию
	slotTimes := domain.DefaultSlotTimes
	sched, err := uc.scheduleRepo.GetByDoctorID(ctx, req.DoctorID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if sched != nil {
		slotTimes = sched.SlotTimes
		uc.logger.Info("GetAvailableSlots: using configured schedule id=%d", sched.ID)
	} else {
		uc.logger.Info("GetAvailableSlots: using default slot grid for doctor=%s", req.DoctorID)
	}

	// 4. Получаем записи врача на эту дату
	appointments, err := uc.apptRepo.List(ctx, domain.AppointmentsFilter{
		DoctorID: ptr.Ptr(req.DoctorID),
		Date:     ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 5. Размечаем занятость слотов
	slots := markTakenSlots(slotTimes, appointments)

	uc.logger.Info("GetAvailableSlots: %d slots for doctor=%s, date=%s",
		len(slots), req.DoctorID, req.Date)

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID == "" {
		return fmt.Errorf("%w: doctorId is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	return nil
}
