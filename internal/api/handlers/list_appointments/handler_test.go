package list_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	apptRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/appointment"
	appointmentsService "github.com/medipoint/MP-AppointmentService/internal/service/appointments"
	serviceModels "github.com/medipoint/MP-AppointmentService/internal/service/appointments/models"
	"github.com/medipoint/MP-AppointmentService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// envelope тестовая проекция конверта ответа
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
	Error   string          `json:"error"`
}

func newTestHandler(t *testing.T) (*Handler, *apptRepo.MemoryStore) {
	t.Helper()

	store := apptRepo.NewMemoryStore()
	svc := appointmentsService.NewService(store, txmanager.NewNop(), nopLogger{})
	return NewHandler(svc, nopLogger{}), store
}

func seed(t *testing.T, store *apptRepo.MemoryStore, id, patientID, date, timeToken string) {
	t.Helper()

	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	_, err := store.Create(context.Background(), &domain.Appointment{
		ID:        id,
		PatientID: patientID,
		DoctorID:  "2",
		Date:      date,
		Time:      timeToken,
		Status:    domain.StatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ListWithTotal(t *testing.T) {
	h, store := newTestHandler(t)
	seed(t, store, "a1", "user123", "2025-08-19", "9:00 AM")
	seed(t, store, "a2", "user123", "2025-08-20", "2:30 PM")

	rec := get(h, "/api/v1/appointments")
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	require.NotNil(t, env.Total)
	assert.Equal(t, 2, *env.Total)

	var appts []serviceModels.AppointmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &appts))
	require.Len(t, appts, 2)
	// Сначала самая поздняя запись
	assert.Equal(t, "a2", appts[0].ID)
	assert.Equal(t, "a1", appts[1].ID)
}

func TestHandler_UndefinedPatientFallsBack(t *testing.T) {
	h, store := newTestHandler(t)
	seed(t, store, "a1", "user123", "2025-08-19", "9:00 AM")
	seed(t, store, "a2", "user456", "2025-08-19", "9:30 AM")

	rec := get(h, "/api/v1/appointments?patientId=undefined")
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Total)
	assert.Equal(t, 1, *env.Total)
}

func TestHandler_FilterByStatus(t *testing.T) {
	h, store := newTestHandler(t)
	seed(t, store, "a1", "user123", "2025-08-19", "9:00 AM")
	seed(t, store, "a2", "user123", "2025-08-19", "9:30 AM")
	require.NoError(t, store.Cancel(context.Background(), "a2", "", time.Now()))

	rec := get(h, "/api/v1/appointments?status=cancelled")
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Total)
	assert.Equal(t, 1, *env.Total)
}

func TestHandler_InvalidStatus(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(h, "/api/v1/appointments?status=archived")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestHandler_EmptyList(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := get(h, "/api/v1/appointments")
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	require.NotNil(t, env.Total)
	assert.Equal(t, 0, *env.Total)
}
