package models

import "github.com/medipoint/MP-AppointmentService/internal/domain"

// ListDoctorsRequest запрос на получение справочника врачей
type ListDoctorsRequest struct {
	Query          *string `json:"q,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListDoctorsRequest) ToDomainFilter() domain.DoctorsFilter {
	return domain.DoctorsFilter{
		Query:          r.Query,
		Specialization: r.Specialization,
	}
}

// DoctorResponse ответ с данными врача
type DoctorResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialization  string  `json:"specialization"`
	Experience      string  `json:"experience"`
	Rating          float64 `json:"rating"`
	ConsultationFee float64 `json:"consultationFee"`
	Location        string  `json:"location"`
	Phone           string  `json:"phone"`
}

// DoctorListResponse ответ со списком врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// FromDomainDoctor конвертирует domain модель в DTO
func FromDomainDoctor(d *domain.Doctor) *DoctorResponse {
	if d == nil {
		return nil
	}

	return &DoctorResponse{
		ID:              d.ID,
		Name:            d.Name,
		Specialization:  d.Specialization,
		Experience:      d.Experience,
		Rating:          d.Rating,
		ConsultationFee: d.ConsultationFee,
		Location:        d.Location,
		Phone:           d.Phone,
	}
}

// FromDomainDoctorList конвертирует список domain моделей в DTO
func FromDomainDoctorList(doctors []*domain.Doctor) *DoctorListResponse {
	resp := &DoctorListResponse{
		Doctors: make([]DoctorResponse, 0, len(doctors)),
	}

	for _, doc := range doctors {
		if docResp := FromDomainDoctor(doc); docResp != nil {
			resp.Doctors = append(resp.Doctors, *docResp)
		}
	}

	resp.Total = len(resp.Doctors)
	return resp
}
