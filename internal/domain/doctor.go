package domain

import "time"

// Doctor represents a directory entry for a bookable doctor
type Doctor struct {
	ID              string
	Name            string
	Specialization  string
	Experience      string
	Rating          float64
	ConsultationFee float64
	Location        string
	Phone           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DoctorsFilter filter for listing the doctor directory
type DoctorsFilter struct {
	Query          *string // matches name or specialization, case-insensitive
	Specialization *string
}
