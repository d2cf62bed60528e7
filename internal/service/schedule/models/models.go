package models

import "github.com/medipoint/MP-AppointmentService/internal/domain"

// UpdateScheduleRequest запрос на обновление расписания врача
type UpdateScheduleRequest struct {
	SlotTimes []string `json:"slotTimes"`
}

// ScheduleResponse ответ с расписанием врача
type ScheduleResponse struct {
	DoctorID  string   `json:"doctorId"`
	SlotTimes []string `json:"slotTimes"`
	IsDefault bool     `json:"isDefault"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(sched *domain.DoctorSchedule) *ScheduleResponse {
	if sched == nil {
		return nil
	}

	return &ScheduleResponse{
		DoctorID:  sched.DoctorID,
		SlotTimes: append([]string(nil), sched.SlotTimes...),
		IsDefault: false,
	}
}

// DefaultScheduleResponse возвращает сетку слотов по умолчанию для врача
// без настроенного расписания
func DefaultScheduleResponse(doctorID string) *ScheduleResponse {
	return &ScheduleResponse{
		DoctorID:  doctorID,
		SlotTimes: append([]string(nil), domain.DefaultSlotTimes...),
		IsDefault: true,
	}
}
