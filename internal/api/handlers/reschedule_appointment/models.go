package reschedule_appointment

import "github.com/medipoint/MP-AppointmentService/internal/service/appointments/models"

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date string `json:"date"` // "2025-08-20"
	Time string `json:"time"` // "2:30 PM"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RescheduleRequest) ToServiceRequest() *models.RescheduleRequest {
	return &models.RescheduleRequest{
		Date: r.Date,
		Time: r.Time,
	}
}
