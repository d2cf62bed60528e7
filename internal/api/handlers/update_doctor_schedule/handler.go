package update_doctor_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medipoint/MP-AppointmentService/internal/api/handlers"
	"github.com/medipoint/MP-AppointmentService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDoctorNotFound     = "врач не найден"
	msgInvalidSlotTimes   = "некорректный список слотов"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/doctors/{doctorId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["doctorId"]

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /doctors/{doctorId}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), doctorID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrDoctorNotFound):
			h.logger.Warn("PUT /doctors/{doctorId}/schedule - Doctor not found: id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /doctors/{doctorId}/schedule - Invalid slot times: doctor=%s", doctorID)
			handlers.RespondBadRequest(w, msgInvalidSlotTimes)

		default:
			h.logger.Error("PUT /doctors/{doctorId}/schedule - Failed to update schedule: doctor=%s, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /doctors/{doctorId}/schedule - Schedule updated successfully: doctor=%s, slots=%d",
		doctorID, len(result.SlotTimes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
