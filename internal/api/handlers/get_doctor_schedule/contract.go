package get_doctor_schedule

import (
	"context"

	"github.com/medipoint/MP-AppointmentService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByDoctorID(ctx context.Context, doctorID string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
