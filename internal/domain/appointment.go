package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ConsultationType represents how the consultation is carried out
type ConsultationType string

const (
	ConsultationInPerson ConsultationType = "in-person"
	ConsultationVideo    ConsultationType = "video"
	ConsultationPhone    ConsultationType = "phone"
)

// Appointment represents a doctor appointment in the system
//
// Date and Time are stored as the display tokens the clients send
// ("2025-08-20", "2:30 PM"). Slot equality is exact string equality on
// these tokens; they are parsed only for result ordering.
type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string

	// Denormalized data for history
	DoctorName           string
	DoctorSpecialization string

	Date             string
	Time             string
	Status           AppointmentStatus
	ConsultationFee  float64
	ConsultationType ConsultationType
	Reason           string
	Notes            string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// BlocksSlot returns true if the appointment occupies its slot:
// any non-cancelled appointment blocks its (doctor, date, time) triple
func (a *Appointment) BlocksSlot() bool {
	return a.Status != StatusCancelled
}

// OccupiesSlot returns true if the appointment occupies the given slot.
// Comparison is exact string equality on the stored tokens: two
// semantically equal times in different formats do not collide.
func (a *Appointment) OccupiesSlot(s Slot) bool {
	return a.BlocksSlot() &&
		a.DoctorID == s.DoctorID &&
		a.Date == s.Date &&
		a.Time == s.Time
}

// SlotTimestamp parses Date and Time into a point in time used for
// ordering lists (most recent first). A token that does not parse sorts
// to the zero time.
func (a *Appointment) SlotTimestamp() time.Time {
	ts, err := time.Parse(DateFormat+" "+TimeDisplayFormat, a.Date+" "+a.Time)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// Slot identifies one bookable appointment opportunity
type Slot struct {
	DoctorID string
	Date     string
	Time     string
}

// AppointmentsFilter filter for listing appointments
type AppointmentsFilter struct {
	PatientID *string
	DoctorID  *string
	Status    *AppointmentStatus
	Date      *string
}

// ValidStatuses lists every status token accepted from clients
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ValidConsultationTypes lists every consultation type accepted from clients
var ValidConsultationTypes = []ConsultationType{
	ConsultationInPerson,
	ConsultationVideo,
	ConsultationPhone,
}
