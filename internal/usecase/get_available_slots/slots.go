package get_available_slots

import "github.com/medipoint/MP-AppointmentService/internal/domain"

// markTakenSlots размечает сетку слотов занятостью
// Слот занят, если время хотя бы одной не отмененной записи строково
// совпадает с токеном слота. Отмененная запись слот не блокирует.
func markTakenSlots(slotTimes []string, appointments []*domain.Appointment) []Slot {
	taken := make(map[string]bool, len(appointments))
	for _, appt := range appointments {
		if appt.BlocksSlot() {
			taken[appt.Time] = true
		}
	}

	slots := make([]Slot, len(slotTimes))
	for i, t := range slotTimes {
		slots[i] = Slot{
			Time:      t,
			Available: !taken[t],
		}
	}

	return slots
}
