package doctors

import (
	"context"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

// DoctorRepository интерфейс справочника врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	List(ctx context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
