package doctor

import (
	"context"
	"time"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

// SeedDirectory наполняет справочник демонстрационным набором врачей
// Справочник - справочные данные: при driver = "memory" без него
// бронировать было бы не у кого
func SeedDirectory(ctx context.Context, store *MemoryStore, now time.Time) error {
	directory := []*domain.Doctor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialization:  "General Medicine",
			Experience:      "12 years",
			Rating:          4.8,
			ConsultationFee: 500,
			Location:        "MediPoint Clinic, Downtown",
			Phone:           "9876543210",
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialization:  "Cardiology",
			Experience:      "15 years",
			Rating:          4.9,
			ConsultationFee: 800,
			Location:        "Heart Care Center, Midtown",
			Phone:           "9876543211",
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Davis",
			Specialization:  "Dermatology",
			Experience:      "9 years",
			Rating:          4.7,
			ConsultationFee: 600,
			Location:        "Skin Health Institute, Uptown",
			Phone:           "9876543212",
		},
		{
			ID:              "4",
			Name:            "Dr. James Brown",
			Specialization:  "Pediatrics",
			Experience:      "11 years",
			Rating:          4.6,
			ConsultationFee: 550,
			Location:        "Children's Wellness Clinic",
			Phone:           "9876543213",
		},
		{
			ID:              "5",
			Name:            "Dr. Lisa Johnson",
			Specialization:  "Orthopedics",
			Experience:      "14 years",
			Rating:          4.8,
			ConsultationFee: 700,
			Location:        "Joint & Spine Center",
			Phone:           "9876543214",
		},
	}

	for _, doc := range directory {
		doc.CreatedAt = now
		doc.UpdatedAt = now
		if err := store.Put(ctx, doc); err != nil {
			return err
		}
	}

	return nil
}
