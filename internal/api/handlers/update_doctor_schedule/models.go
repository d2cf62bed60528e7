package update_doctor_schedule

import "github.com/medipoint/MP-AppointmentService/internal/service/schedule/models"

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	SlotTimes []string `json:"slotTimes"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		SlotTimes: r.SlotTimes,
	}
}
