package handlers

import (
	"encoding/json"
	"net/http"
)

const msgInternalError = "внутренняя ошибка сервера"

// Response единый конверт всех HTTP ответов сервиса
type Response struct {
	Success       bool        `json:"success"`
	Data          interface{} `json:"data,omitempty"`
	Total         *int        `json:"total,omitempty"`
	Message       string      `json:"message,omitempty"`
	Error         string      `json:"error,omitempty"`
	MissingFields []string    `json:"missingFields,omitempty"`
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON пишет успешный ответ с данными
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeResponse(w, status, &Response{
		Success: true,
		Data:    data,
	})
}

// RespondList пишет успешный ответ со списком и количеством элементов
func RespondList(w http.ResponseWriter, status int, data interface{}, total int) {
	writeResponse(w, status, &Response{
		Success: true,
		Data:    data,
		Total:   &total,
	})
}

// RespondMessage пишет успешный ответ с сообщением без данных
func RespondMessage(w http.ResponseWriter, status int, message string) {
	writeResponse(w, status, &Response{
		Success: true,
		Message: message,
	})
}

// RespondError пишет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	writeResponse(w, status, &Response{
		Success: false,
		Error:   message,
	})
}

// RespondValidationError пишет 400 со списком отсутствующих полей
func RespondValidationError(w http.ResponseWriter, message string, missingFields []string) {
	writeResponse(w, http.StatusBadRequest, &Response{
		Success:       false,
		Error:         message,
		MissingFields: missingFields,
	})
}

// RespondBadRequest пишет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound пишет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondUnauthorized пишет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondInternalError пишет 500 без деталей внутренней ошибки
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

func writeResponse(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ошибку кодирования уже некуда отдать: заголовки отправлены
	_ = json.NewEncoder(w).Encode(resp)
}
