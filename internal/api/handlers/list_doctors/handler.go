package list_doctors

import (
	"net/http"

	"github.com/medipoint/MP-AppointmentService/internal/api/handlers"
	"github.com/medipoint/MP-AppointmentService/internal/service/doctors/models"
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

// Handle GET /api/v1/doctors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq := &models.ListDoctorsRequest{
		Query:          optionalParam(query.Get("q")),
		Specialization: optionalParam(query.Get("specialization")),
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /doctors - Failed to list doctors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors - Doctors retrieved successfully: count=%d", result.Total)
	handlers.RespondList(w, http.StatusOK, result.Doctors, result.Total)
}

func optionalParam(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
