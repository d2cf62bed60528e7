package book_appointment

import (
	"time"

	bookAppointment "github.com/medipoint/MP-AppointmentService/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	PatientID            string   `json:"patientId"`
	DoctorID             string   `json:"doctorId"`
	DoctorName           string   `json:"doctorName"`
	DoctorSpecialization string   `json:"doctorSpecialization"`
	Date                 string   `json:"date"` // "2025-08-20"
	Time                 string   `json:"time"` // "2:30 PM"
	ConsultationFee      *float64 `json:"consultationFee"`
	ConsultationType     string   `json:"consultationType,omitempty"`
	Reason               string   `json:"reason,omitempty"`
	Notes                string   `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                   string  `json:"id"`
	PatientID            string  `json:"patientId"`
	DoctorID             string  `json:"doctorId"`
	DoctorName           string  `json:"doctorName"`
	DoctorSpecialization string  `json:"doctorSpecialization"`
	Date                 string  `json:"date"`
	Time                 string  `json:"time"`
	Status               string  `json:"status"`
	ConsultationFee      float64 `json:"consultationFee"`
	ConsultationType     string  `json:"consultationType"`
	Reason               string  `json:"reason"`
	Notes                string  `json:"notes"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() *bookAppointment.Request {
	return &bookAppointment.Request{
		PatientID:            r.PatientID,
		DoctorID:             r.DoctorID,
		DoctorName:           r.DoctorName,
		DoctorSpecialization: r.DoctorSpecialization,
		Date:                 r.Date,
		Time:                 r.Time,
		ConsultationFee:      r.ConsultationFee,
		ConsultationType:     r.ConsultationType,
		Reason:               r.Reason,
		Notes:                r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                   resp.ID,
		PatientID:            resp.PatientID,
		DoctorID:             resp.DoctorID,
		DoctorName:           resp.DoctorName,
		DoctorSpecialization: resp.DoctorSpecialization,
		Date:                 resp.Date,
		Time:                 resp.Time,
		Status:               resp.Status,
		ConsultationFee:      resp.ConsultationFee,
		ConsultationType:     resp.ConsultationType,
		Reason:               resp.Reason,
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
