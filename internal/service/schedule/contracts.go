package schedule

import (
	"context"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс хранилища расписаний врачей
type ScheduleRepository interface {
	GetByDoctorID(ctx context.Context, doctorID string) (*domain.DoctorSchedule, error)
	Upsert(ctx context.Context, sched *domain.DoctorSchedule) (*domain.DoctorSchedule, error)
}

// DoctorRepository интерфейс справочника врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
