package book_appointment

import "time"

// Request модель запроса на бронирование записи
// Date и Time - отображаемые токены ("2025-08-20", "2:30 PM"); usecase
// не парсит и не нормализует их, сравнение слотов строго строковое
type Request struct {
	PatientID            string
	DoctorID             string
	DoctorName           string
	DoctorSpecialization string
	Date                 string
	Time                 string
	ConsultationFee      *float64 // указатель, чтобы отличать 0 от отсутствия поля
	ConsultationType     string   // опционально, по умолчанию in-person
	Reason               string   // опционально
	Notes                string   // опционально
}

// Response модель ответа с созданной записью
type Response struct {
	ID                   string
	PatientID            string
	DoctorID             string
	DoctorName           string
	DoctorSpecialization string
	Date                 string
	Time                 string
	Status               string
	ConsultationFee      float64
	ConsultationType     string
	Reason               string
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
