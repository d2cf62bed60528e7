package reschedule_appointment

import (
	"context"

	"github.com/medipoint/MP-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	Reschedule(ctx context.Context, id string, req *models.RescheduleRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
