package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	apptRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/appointment"
	"github.com/medipoint/MP-AppointmentService/internal/service/appointments/models"
	"github.com/medipoint/MP-AppointmentService/pkg/ptr"
	"github.com/medipoint/MP-AppointmentService/pkg/txmanager"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *apptRepo.MemoryStore) {
	store := apptRepo.NewMemoryStore()
	svc := NewService(store, txmanager.NewNop(), nopLogger{})
	return svc, store
}

func seedAppointment(t *testing.T, store *apptRepo.MemoryStore, id, patientID, doctorID, date, timeToken string) {
	t.Helper()

	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	_, err := store.Create(context.Background(), &domain.Appointment{
		ID:                   id,
		PatientID:            patientID,
		DoctorID:             doctorID,
		DoctorName:           "Dr. Michael Chen",
		DoctorSpecialization: "Cardiology",
		Date:                 date,
		Time:                 timeToken,
		Status:               domain.StatusConfirmed,
		ConsultationFee:      800,
		ConsultationType:     domain.ConsultationInPerson,
		CreatedAt:            now,
		UpdatedAt:            now,
	})
	require.NoError(t, err)
}

func TestService_List_DefaultPatientFallback(t *testing.T) {
	tests := []struct {
		name      string
		patientID *string
	}{
		{name: "absent patientId", patientID: nil},
		{name: "empty patientId", patientID: ptr.Ptr("")},
		{name: "literal undefined", patientID: ptr.Ptr("undefined")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService()
			seedAppointment(t, store, "a1", "user123", "1", "2025-08-19", "9:00 AM")
			seedAppointment(t, store, "a2", "user456", "1", "2025-08-19", "9:30 AM")

			result, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
				PatientID: tt.patientID,
			})
			require.NoError(t, err)

			// Отсутствующий пациент подменяется на user123
			require.Equal(t, 1, result.Total)
			assert.Equal(t, "a1", result.Appointments[0].ID)
		})
	}
}

func TestService_List_ExplicitPatientKept(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "1", "2025-08-19", "9:00 AM")
	seedAppointment(t, store, "a2", "user456", "1", "2025-08-19", "9:30 AM")

	result, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		PatientID: ptr.Ptr("user456"),
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "a2", result.Appointments[0].ID)
}

func TestService_List_OrderedByDateTimeDesc(t *testing.T) {
	svc, store := newTestService()

	// Вставляем вразбивку, ожидаем сортировку по убыванию date+time
	seedAppointment(t, store, "mid", "user123", "1", "2025-08-20", "9:00 AM")
	seedAppointment(t, store, "latest", "user123", "2", "2025-08-21", "2:30 PM")
	seedAppointment(t, store, "earliest", "user123", "3", "2025-08-19", "11:00 AM")
	seedAppointment(t, store, "same-day-later", "user123", "4", "2025-08-20", "4:00 PM")

	result, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)

	gotIDs := make([]string, 0, result.Total)
	for _, appt := range result.Appointments {
		gotIDs = append(gotIDs, appt.ID)
	}
	assert.Equal(t, []string{"latest", "same-day-later", "mid", "earliest"}, gotIDs)
}

func TestService_List_UnparseableTimeSortsLast(t *testing.T) {
	svc, store := newTestService()

	seedAppointment(t, store, "odd", "user123", "1", "2025-08-20", "half past two")
	seedAppointment(t, store, "ok", "user123", "2", "2025-08-19", "9:00 AM")

	result, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)

	require.Equal(t, 2, result.Total)
	assert.Equal(t, "ok", result.Appointments[0].ID)
	assert.Equal(t, "odd", result.Appointments[1].ID)
}

func TestService_List_StatusFilter(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "1", "2025-08-19", "9:00 AM")
	seedAppointment(t, store, "a2", "user123", "1", "2025-08-19", "9:30 AM")
	require.NoError(t, store.Cancel(context.Background(), "a2", "", time.Now()))

	result, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "a2", result.Appointments[0].ID)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "1", "2025-08-19", "9:00 AM")

	got, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Cancel(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "1", "2025-08-19", "9:00 AM")

	err := svc.Cancel(context.Background(), "a1", &models.CancelAppointmentRequest{
		CancellationReason: "feeling better",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	require.NotNil(t, got.CancellationReason)
	assert.Equal(t, "feeling better", *got.CancellationReason)
	assert.NotNil(t, got.CancelledAt)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Cancel(context.Background(), "missing", &models.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_UpdateStatus(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "1", "2025-08-19", "9:00 AM")

	err := svc.UpdateStatus(context.Background(), "a1", &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
}

func TestService_UpdateStatus_UnconstrainedTransitions(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "1", "2025-08-19", "9:00 AM")
	require.NoError(t, store.Cancel(context.Background(), "a1", "", time.Now()))

	// Правил жизненного цикла нет: отмененную запись можно вернуть в pending
	err := svc.UpdateStatus(context.Background(), "a1", &models.UpdateStatusRequest{Status: "pending"})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

func TestService_UpdateStatus_InvalidToken(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "1", "2025-08-19", "9:00 AM")

	err := svc.UpdateStatus(context.Background(), "a1", &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Reschedule(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "2", "2025-08-20", "2:30 PM")

	got, err := svc.Reschedule(context.Background(), "a1", &models.RescheduleRequest{
		Date: "2025-08-22",
		Time: "11:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-08-22", got.Date)
	assert.Equal(t, "11:00 AM", got.Time)
}

func TestService_Reschedule_Conflict(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "2", "2025-08-20", "2:30 PM")
	seedAppointment(t, store, "a2", "user456", "2", "2025-08-20", "3:00 PM")

	_, err := svc.Reschedule(context.Background(), "a1", &models.RescheduleRequest{
		Date: "2025-08-20",
		Time: "3:00 PM",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestService_Reschedule_OwnSlotAllowed(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "2", "2025-08-20", "2:30 PM")

	// Перенос на собственный слот не считается конфликтом
	got, err := svc.Reschedule(context.Background(), "a1", &models.RescheduleRequest{
		Date: "2025-08-20",
		Time: "2:30 PM",
	})
	require.NoError(t, err)
	assert.Equal(t, "2:30 PM", got.Time)
}

func TestService_Reschedule_MissingDateOrTime(t *testing.T) {
	svc, store := newTestService()
	seedAppointment(t, store, "a1", "user123", "2", "2025-08-20", "2:30 PM")

	_, err := svc.Reschedule(context.Background(), "a1", &models.RescheduleRequest{Time: "3:00 PM"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Reschedule(context.Background(), "a1", &models.RescheduleRequest{Date: "2025-08-21"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
