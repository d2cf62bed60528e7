package doctor

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	"github.com/medipoint/MP-AppointmentService/pkg/dbmetrics"
	"github.com/medipoint/MP-AppointmentService/pkg/psqlbuilder"
)

var doctorColumns = []string{
	"id",
	"name",
	"specialization",
	"experience",
	"rating",
	"consultation_fee",
	"location",
	"phone",
	"created_at",
	"updated_at",
}

// Repository PostgreSQL-репозиторий справочника врачей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает врача по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var doc domain.Doctor
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&doc.ID,
		&doc.Name,
		&doc.Specialization,
		&doc.Experience,
		&doc.Rating,
		&doc.ConsultationFee,
		&doc.Location,
		&doc.Phone,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan doctor: %v", ErrScanRow, err)
	}

	return &doc, nil
}

// List получает врачей с фильтрацией по специализации и поисковой строке
// Поиск - case-insensitive подстрока по имени или специализации
func (r *Repository) List(ctx context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		OrderBy("name ASC")

	if filter.Specialization != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("LOWER(specialization) = LOWER(?)", *filter.Specialization),
		)
	}
	if filter.Query != nil {
		pattern := "%" + strings.ToLower(*filter.Query) + "%"
		selectBuilder = selectBuilder.Where(
			squirrel.Or{
				squirrel.Expr("LOWER(name) LIKE ?", pattern),
				squirrel.Expr("LOWER(specialization) LIKE ?", pattern),
			},
		)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		var doc domain.Doctor
		err := rows.Scan(
			&doc.ID,
			&doc.Name,
			&doc.Specialization,
			&doc.Experience,
			&doc.Rating,
			&doc.ConsultationFee,
			&doc.Location,
			&doc.Phone,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		doctors = append(doctors, &doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return doctors, nil
}
