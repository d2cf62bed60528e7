package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

// SeedDemoData наполняет хранилище демонстрационными записями
// Используется в demo-режиме (storage.seed_demo_data), чтобы дашборды
// было что показывать без ручного бронирования
func SeedDemoData(ctx context.Context, store *MemoryStore, now time.Time) error {
	demo := []*domain.Appointment{
		{
			ID:                   uuid.NewString(),
			PatientID:            domain.DefaultPatientID,
			DoctorID:             "1",
			DoctorName:           "Dr. Sarah Johnson",
			DoctorSpecialization: "General Medicine",
			Date:                 "2025-08-15",
			Time:                 "10:00 AM",
			Status:               domain.StatusConfirmed,
			ConsultationFee:      500,
			ConsultationType:     domain.ConsultationInPerson,
			Reason:               "Regular checkup",
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ID:                   uuid.NewString(),
			PatientID:            domain.DefaultPatientID,
			DoctorID:             "2",
			DoctorName:           "Dr. Michael Chen",
			DoctorSpecialization: "Cardiology",
			Date:                 "2025-08-20",
			Time:                 "2:30 PM",
			Status:               domain.StatusPending,
			ConsultationFee:      800,
			ConsultationType:     domain.ConsultationVideo,
			Reason:               "Heart consultation",
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ID:                   uuid.NewString(),
			PatientID:            domain.DefaultPatientID,
			DoctorID:             "3",
			DoctorName:           "Dr. Emily Davis",
			DoctorSpecialization: "Dermatology",
			Date:                 "2025-07-15",
			Time:                 "11:00 AM",
			Status:               domain.StatusCompleted,
			ConsultationFee:      600,
			ConsultationType:     domain.ConsultationInPerson,
			Reason:               "Skin condition",
			CreatedAt:            now.AddDate(0, 0, -30),
			UpdatedAt:            now.AddDate(0, 0, -30),
		},
	}

	for _, appt := range demo {
		if _, err := store.Create(ctx, appt); err != nil {
			return err
		}
	}

	return nil
}
