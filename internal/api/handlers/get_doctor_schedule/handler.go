package get_doctor_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medipoint/MP-AppointmentService/internal/api/handlers"
	"github.com/medipoint/MP-AppointmentService/internal/service/schedule"
)

const (
	msgDoctorNotFound = "врач не найден"
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

// Handle GET /api/v1/doctors/{doctorId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["doctorId"]

	result, err := h.service.GetByDoctorID(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, schedule.ErrDoctorNotFound) {
			h.logger.Warn("GET /doctors/{doctorId}/schedule - Doctor not found: id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("GET /doctors/{doctorId}/schedule - Failed to get schedule: doctor=%s, error=%v",
			doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{doctorId}/schedule - Schedule retrieved successfully: doctor=%s, default=%t",
		doctorID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
