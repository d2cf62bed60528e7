package book_appointment

import (
	"fmt"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Сначала собирается полный список отсутствующих обязательных полей -
// клиент получает их все разом, а не по одному
func validateRequest(req *Request) error {
	missing := make([]string, 0)

	requiredStrings := []struct {
		name  string
		value string
	}{
		{"patientId", req.PatientID},
		{"doctorId", req.DoctorID},
		{"doctorName", req.DoctorName},
		{"doctorSpecialization", req.DoctorSpecialization},
		{"date", req.Date},
		{"time", req.Time},
	}

	for _, field := range requiredStrings {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	if req.ConsultationFee == nil {
		missing = append(missing, "consultationFee")
	}

	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}

	if *req.ConsultationFee < 0 {
		return fmt.Errorf("%w: consultationFee must be non-negative", ErrInvalidInput)
	}

	if req.ConsultationType != "" {
		if err := validateConsultationType(req.ConsultationType); err != nil {
			return err
		}
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long (max %d characters)", ErrInvalidInput, domain.MaxReasonLength)
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes is too long (max %d characters)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateConsultationType проверяет, что тип консультации из списка допустимых
func validateConsultationType(value string) error {
	for _, valid := range domain.ValidConsultationTypes {
		if domain.ConsultationType(value) == valid {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown consultationType %q", ErrInvalidInput, value)
}
