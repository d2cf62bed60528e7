package doctors

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/doctor"
	"github.com/medipoint/MP-AppointmentService/internal/service/doctors/models"
)

// Service сервис справочника врачей
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.DoctorResponse, error) {
	s.logger.Info("GetByID: fetching doctor id=%s", id)

	doc, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetByID: doctor id=%s not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: repository error for doctor id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDoctor(doc), nil
}

// List получает врачей с фильтрацией по специализации и поисковой строке
func (s *Service) List(ctx context.Context, req *models.ListDoctorsRequest) (*models.DoctorListResponse, error) {
	s.logger.Info("List: fetching doctors, query=%v, specialization=%v",
		req.Query, req.Specialization)

	doctors, err := s.doctorRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d doctors", len(doctors))
	return models.FromDomainDoctorList(doctors), nil
}
