package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	doctorRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/doctor"
	scheduleRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/schedule"
	"github.com/medipoint/MP-AppointmentService/internal/service/schedule/models"
)

// Service сервис управления расписаниями врачей
type Service struct {
	scheduleRepo ScheduleRepository
	doctorRepo   DoctorRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		doctorRepo:   doctorRepo,
		logger:       logger,
	}
}

// GetByDoctorID получает расписание врача
// Если расписание не настроено, возвращается сетка слотов по умолчанию
func (s *Service) GetByDoctorID(ctx context.Context, doctorID string) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByDoctorID: fetching schedule for doctor=%s", doctorID)

	if err := s.checkDoctorExists(ctx, doctorID); err != nil {
		return nil, err
	}

	sched, err := s.scheduleRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("GetByDoctorID: doctor=%s has no schedule, using default grid", doctorID)
			return models.DefaultScheduleResponse(doctorID), nil
		}
		s.logger.Error("GetByDoctorID: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: GetByDoctorID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(sched), nil
}

// Update создает или заменяет расписание врача
func (s *Service) Update(ctx context.Context, doctorID string, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for doctor=%s, slots=%d", doctorID, len(req.SlotTimes))

	if len(req.SlotTimes) == 0 {
		s.logger.Warn("Update: empty slot list for doctor=%s", doctorID)
		return nil, fmt.Errorf("%w: slotTimes must not be empty", ErrInvalidInput)
	}
	for _, slot := range req.SlotTimes {
		if slot == "" {
			s.logger.Warn("Update: empty slot token for doctor=%s", doctorID)
			return nil, fmt.Errorf("%w: slot times must not be empty", ErrInvalidInput)
		}
	}

	if err := s.checkDoctorExists(ctx, doctorID); err != nil {
		return nil, err
	}

	sched := &domain.DoctorSchedule{
		DoctorID:  doctorID,
		SlotTimes: append([]string(nil), req.SlotTimes...),
	}

	saved, err := s.scheduleRepo.Upsert(ctx, sched)
	if err != nil {
		s.logger.Error("Update: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule for doctor=%s", doctorID)
	return models.FromDomainSchedule(saved), nil
}

func (s *Service) checkDoctorExists(ctx context.Context, doctorID string) error {
	_, err := s.doctorRepo.GetByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("checkDoctorExists: doctor=%s not found", doctorID)
			return ErrDoctorNotFound
		}
		s.logger.Error("checkDoctorExists: repository error for doctor=%s: %v", doctorID, err)
		return fmt.Errorf("%w: checkDoctorExists - repository error: %v", ErrInternal, err)
	}
	return nil
}
