package get_doctor

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medipoint/MP-AppointmentService/internal/api/handlers"
	"github.com/medipoint/MP-AppointmentService/internal/service/doctors"
)

const (
	msgDoctorNotFound = "врач не найден"
)

type Handler struct {
	service DoctorService
	logger  Logger
}

func NewHandler(service DoctorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID := vars["doctorId"]

	result, err := h.service.GetByID(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, doctors.ErrDoctorNotFound) {
			h.logger.Warn("GET /doctors/{doctorId} - Doctor not found: id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("GET /doctors/{doctorId} - Failed to get doctor: id=%s, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{doctorId} - Doctor retrieved successfully: id=%s", doctorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
