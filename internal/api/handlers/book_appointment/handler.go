package book_appointment

import (
	"errors"
	"net/http"

	"github.com/medipoint/MP-AppointmentService/internal/api/handlers"
	bookAppointment "github.com/medipoint/MP-AppointmentService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "отсутствуют обязательные поля"
	msgInvalidInput       = "некорректные данные записи"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Ошибка валидации несет точный список отсутствующих полей
		if vErr, ok := bookAppointment.AsValidationError(err); ok {
			h.logger.Warn("POST /appointments - Missing required fields: %v", vErr.MissingFields)
			handlers.RespondValidationError(w, msgMissingFields, vErr.MissingFields)
			return
		}

		switch {
		case errors.Is(err, bookAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot taken: doctor=%s, date=%s, time=%s",
				req.DoctorID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: doctor=%s, error=%v", req.DoctorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: doctor=%s, error=%v",
				req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment booked successfully: id=%s, doctor=%s, date=%s, time=%s",
		result.ID, result.DoctorID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
