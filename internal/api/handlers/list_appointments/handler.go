package list_appointments

import (
	"errors"
	"net/http"

	"github.com/medipoint/MP-AppointmentService/internal/api/handlers"
	"github.com/medipoint/MP-AppointmentService/internal/service/appointments"
	"github.com/medipoint/MP-AppointmentService/internal/service/appointments/models"
)

const (
	msgInvalidStatus = "некорректный статус записи"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Пустые параметры передаем как nil: подстановку пациента по
	// умолчанию выполняет сервис
	serviceReq := &models.ListAppointmentsRequest{
		PatientID: optionalParam(query.Get("patientId")),
		DoctorID:  optionalParam(query.Get("doctorId")),
		Status:    optionalParam(query.Get("status")),
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid status: %s", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", result.Total)
	handlers.RespondList(w, http.StatusOK, result.Appointments, result.Total)
}

func optionalParam(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
