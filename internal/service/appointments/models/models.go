package models

import (
	"errors"
	"time"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	PatientID *string `json:"patientId,omitempty"`
	DoctorID  *string `json:"doctorId,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RescheduleRequest запрос на перенос записи на другой слот
type RescheduleRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                   string  `json:"id"`
	PatientID            string  `json:"patientId"`
	DoctorID             string  `json:"doctorId"`
	DoctorName           string  `json:"doctorName"`
	DoctorSpecialization string  `json:"doctorSpecialization"`
	Date                 string  `json:"date"` // "2025-08-20"
	Time                 string  `json:"time"` // "2:30 PM"
	Status               string  `json:"status"`
	ConsultationFee      float64 `json:"consultationFee"`
	ConsultationType     string  `json:"consultationType"`
	Reason               string  `json:"reason,omitempty"`
	Notes                string  `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                   a.ID,
		PatientID:            a.PatientID,
		DoctorID:             a.DoctorID,
		DoctorName:           a.DoctorName,
		DoctorSpecialization: a.DoctorSpecialization,
		Date:                 a.Date,
		Time:                 a.Time,
		Status:               string(a.Status),
		ConsultationFee:      a.ConsultationFee,
		ConsultationType:     string(a.ConsultationType),
		Reason:               a.Reason,
		Notes:                a.Notes,
		CancellationReason:   a.CancellationReason,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	resp.Total = len(resp.Appointments)
	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	for _, valid := range domain.ValidStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
