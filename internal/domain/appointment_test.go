package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_OccupiesSlot(t *testing.T) {
	appt := &Appointment{
		DoctorID: "2",
		Date:     "2025-08-20",
		Time:     "2:30 PM",
		Status:   StatusConfirmed,
	}

	tests := []struct {
		name string
		slot Slot
		want bool
	}{
		{name: "same slot", slot: Slot{DoctorID: "2", Date: "2025-08-20", Time: "2:30 PM"}, want: true},
		{name: "different doctor", slot: Slot{DoctorID: "3", Date: "2025-08-20", Time: "2:30 PM"}, want: false},
		{name: "different date", slot: Slot{DoctorID: "2", Date: "2025-08-21", Time: "2:30 PM"}, want: false},
		{name: "different time token", slot: Slot{DoctorID: "2", Date: "2025-08-20", Time: "02:30 PM"}, want: false},
		{name: "24h format does not match", slot: Slot{DoctorID: "2", Date: "2025-08-20", Time: "14:30"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, appt.OccupiesSlot(tt.slot))
		})
	}
}

func TestAppointment_CancelledDoesNotOccupy(t *testing.T) {
	appt := &Appointment{
		DoctorID: "2",
		Date:     "2025-08-20",
		Time:     "2:30 PM",
		Status:   StatusCancelled,
	}

	assert.False(t, appt.OccupiesSlot(Slot{DoctorID: "2", Date: "2025-08-20", Time: "2:30 PM"}))
	assert.False(t, appt.BlocksSlot())
}

func TestAppointment_SlotTimestamp(t *testing.T) {
	appt := &Appointment{Date: "2025-08-20", Time: "2:30 PM"}
	assert.Equal(t, time.Date(2025, 8, 20, 14, 30, 0, 0, time.UTC), appt.SlotTimestamp())

	// Нераспознанный токен дает нулевое время
	odd := &Appointment{Date: "2025-08-20", Time: "half past two"}
	assert.True(t, odd.SlotTimestamp().IsZero())
}

func TestDefaultSlotTimes_LunchExcluded(t *testing.T) {
	assert.NotContains(t, DefaultSlotTimes, "1:00 PM")
	assert.NotContains(t, DefaultSlotTimes, "1:30 PM")
	assert.Equal(t, "9:00 AM", DefaultSlotTimes[0])
	assert.Equal(t, "5:30 PM", DefaultSlotTimes[len(DefaultSlotTimes)-1])
	assert.Len(t, DefaultSlotTimes, 16)
}
