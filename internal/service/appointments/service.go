package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	apptRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/appointment"
	"github.com/medipoint/MP-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями на прием (чтение и обновление)
type Service struct {
	apptRepo     AppointmentRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:     apptRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(appt), nil
}

// List получает записи с фильтрацией по пациенту, врачу и статусу
//
// Если patientId отсутствует или равен литералу "undefined", подставляется
// пациент по умолчанию (user123). Это задокументированный обходной путь
// для известного бага клиента, а не рекомендованное поведение.
//
// Результат отсортирован по убыванию распарсенного date+time
// (сначала самые поздние записи).
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	patientID := normalizePatientID(req.PatientID)
	s.logger.Info("List: fetching appointments for patient=%s, doctor=%v, status=%v",
		patientID, req.DoctorID, req.Status)

	filter := domain.AppointmentsFilter{
		PatientID: &patientID,
		DoctorID:  req.DoctorID,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appointments, err := s.apptRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sortByDateTimeDesc(appointments)

	s.logger.Info("List: successfully fetched %d appointments for patient=%s",
		len(appointments), patientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись с указанием причины
// Отмена освобождает слот: отмененная запись не блокирует бронирование
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for appointment id=%s", id)
		return fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	if err := s.apptRepo.Cancel(ctx, id, req.CancellationReason, s.timeProvider.Now()); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// UpdateStatus обновляет статус записи
// Переходы между статусами не ограничены: правил жизненного цикла нет,
// валидируется только сам токен статуса
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, newStatus, s.timeProvider.Now()); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)
	return nil
}

// Reschedule переносит запись на новый слот
// Новый слот проверяется на конфликт с другими не отмененными записями
// врача; check-then-update выполняется в сериализуемой транзакции
func (s *Service) Reschedule(ctx context.Context, id string, req *models.RescheduleRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Reschedule: appointment id=%s to date=%s, time=%s", id, req.Date, req.Time)

	if req.Date == "" || req.Time == "" {
		s.logger.Warn("Reschedule: date and time are required for appointment id=%s", id)
		return nil, fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}

	var rescheduled *domain.Appointment

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.apptRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		// Проверяем занятость целевого слота другой записью
		slot := domain.Slot{DoctorID: appt.DoctorID, Date: req.Date, Time: req.Time}
		existing, err := s.apptRepo.FindActiveBySlot(txCtx, slot)
		if err != nil && !errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return err
		}
		if existing != nil && existing.ID != appt.ID {
			return ErrSlotConflict
		}

		now := s.timeProvider.Now()
		if err := s.apptRepo.Reschedule(txCtx, id, req.Date, req.Time, now); err != nil {
			return err
		}

		appt.Date = req.Date
		appt.Time = req.Time
		appt.UpdatedAt = now
		rescheduled = appt
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			s.logger.Warn("Reschedule: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ErrSlotConflict):
			s.logger.Warn("Reschedule: slot taken for appointment id=%s: date=%s, time=%s",
				id, req.Date, req.Time)
			return nil, ErrSlotConflict
		default:
			s.logger.Error("Reschedule: repository error for appointment id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Reschedule: successfully rescheduled appointment id=%s", id)
	return models.FromDomainAppointment(rescheduled), nil
}

// normalizePatientID подставляет пациента по умолчанию вместо
// отсутствующего или литерального "undefined" идентификатора
func normalizePatientID(patientID *string) string {
	if patientID == nil || *patientID == "" || *patientID == "undefined" {
		return domain.DefaultPatientID
	}
	return *patientID
}

// sortByDateTimeDesc сортирует записи по убыванию распарсенного date+time
// Стабильная сортировка: записи с нераспознанным временем сохраняют
// порядок вставки в конце списка
func sortByDateTimeDesc(appointments []*domain.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].SlotTimestamp().After(appointments[j].SlotTimestamp())
	})
}
