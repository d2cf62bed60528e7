package domain

import "time"

// DoctorSchedule represents the configured slot grid for a doctor.
// Slot times are display tokens in the same format appointments use.
type DoctorSchedule struct {
	ID        int64
	DoctorID  string
	SlotTimes []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSlotTimes is the grid used when a doctor has no configured
// schedule: 9:00 AM to 5:30 PM on the half hour, minus the lunch break.
var DefaultSlotTimes = []string{
	"9:00 AM", "9:30 AM",
	"10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM",
	"2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM",
	"5:00 PM", "5:30 PM",
}
