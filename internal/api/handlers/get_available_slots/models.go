package get_available_slots

import (
	getAvailableSlots "github.com/medipoint/MP-AppointmentService/internal/usecase/get_available_slots"
)

// SlotResponse один слот сетки врача
type SlotResponse struct {
	Time      string `json:"time"` // "2:30 PM"
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID string         `json:"doctorId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      slot.Time,
			Available: slot.Available,
		})
	}

	return &AvailableSlotsResponse{
		DoctorID: resp.DoctorID,
		Date:     resp.Date,
		Slots:    slots,
	}
}
