package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	"github.com/medipoint/MP-AppointmentService/pkg/dbmetrics"
	"github.com/medipoint/MP-AppointmentService/pkg/psqlbuilder"
)

// Repository PostgreSQL-репозиторий расписаний врачей
// Слоты хранятся как text[] отображаемых токенов ("9:00 AM", ...)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDoctorID получает расписание врача
// Возвращает ErrScheduleNotFound, если расписание не настроено
func (r *Repository) GetByDoctorID(ctx context.Context, doctorID string) (*domain.DoctorSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"doctor_id",
		"slot_times",
		"created_at",
		"updated_at",
	).
		From("doctor_schedules").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - build select query: %v", ErrBuildQuery, err)
	}

	var sched domain.DoctorSchedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sched.ID,
		&sched.DoctorID,
		pq.Array(&sched.SlotTimes),
		&sched.CreatedAt,
		&sched.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - scan schedule: %v", ErrScanRow, err)
	}

	return &sched, nil
}

// Upsert создает или заменяет расписание врача
func (r *Repository) Upsert(ctx context.Context, sched *domain.DoctorSchedule) (*domain.DoctorSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("doctor_schedules").
		Columns("doctor_id", "slot_times").
		Values(sched.DoctorID, pq.Array(sched.SlotTimes)).
		Suffix(`ON CONFLICT (doctor_id) DO UPDATE
			SET slot_times = EXCLUDED.slot_times, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sched.ID,
		&sched.CreatedAt,
		&sched.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return sched, nil
}
