package get_available_slots

// Request модель запроса доступных слотов врача на дату
type Request struct {
	DoctorID string
	Date     string // "2025-08-20"
}

// Slot один слот сетки врача
type Slot struct {
	Time      string // отображаемый токен, например "2:30 PM"
	Available bool
}

// Response модель ответа с сеткой слотов
type Response struct {
	DoctorID string
	Date     string
	Slots    []Slot
}
