package book_appointment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSlotConflict возвращается, когда слот занят не отмененной записью
	ErrSlotConflict = errors.New("book_appointment: slot is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	// (отрицательная стоимость, неизвестный тип консультации и т.п.)
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)

// ValidationError ошибка валидации обязательных полей
// Несет точный список отсутствующих полей, чтобы клиент мог подсветить их
type ValidationError struct {
	MissingFields []string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("book_appointment: missing required fields: %s",
		strings.Join(e.MissingFields, ", "))
}

// AsValidationError возвращает *ValidationError из цепочки ошибок, если есть
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	ok := errors.As(err, &vErr)
	return vErr, ok
}
