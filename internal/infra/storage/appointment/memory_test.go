package appointment

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	"github.com/medipoint/MP-AppointmentService/pkg/ptr"
)

func newAppointment(id, doctorID, date, timeToken string) *domain.Appointment {
	now := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:                   id,
		PatientID:            "user123",
		DoctorID:             doctorID,
		DoctorName:           "Dr. Michael Chen",
		DoctorSpecialization: "Cardiology",
		Date:                 date,
		Time:                 timeToken,
		Status:               domain.StatusConfirmed,
		ConsultationFee:      800,
		ConsultationType:     domain.ConsultationInPerson,
		Reason:               "Regular consultation",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func TestMemoryStore_CreateChecked_SlotConflict(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateChecked(ctx, newAppointment("a1", "2", "2025-08-20", "2:30 PM"))
	require.NoError(t, err)

	// Тот же слот занят
	_, err = store.CreateChecked(ctx, newAppointment("a2", "2", "2025-08-20", "2:30 PM"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Другое время у того же врача свободно
	_, err = store.CreateChecked(ctx, newAppointment("a3", "2", "2025-08-20", "3:00 PM"))
	assert.NoError(t, err)

	// Тот же слот у другого врача свободен
	_, err = store.CreateChecked(ctx, newAppointment("a4", "3", "2025-08-20", "2:30 PM"))
	assert.NoError(t, err)
}

func TestMemoryStore_CreateChecked_ExactStringMatch(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateChecked(ctx, newAppointment("a1", "2", "2025-08-20", "2:30 PM"))
	require.NoError(t, err)

	// Сравнение токенов строгое строковое: "02:30 PM" не равен "2:30 PM"
	_, err = store.CreateChecked(ctx, newAppointment("a2", "2", "2025-08-20", "02:30 PM"))
	assert.NoError(t, err)
}

func TestMemoryStore_CancelFreesSlot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateChecked(ctx, newAppointment("a1", "2", "2025-08-20", "2:30 PM"))
	require.NoError(t, err)

	cancelledAt := time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Cancel(ctx, "a1", "schedule conflict", cancelledAt))

	got, err := store.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	require.NotNil(t, got.CancellationReason)
	assert.Equal(t, "schedule conflict", *got.CancellationReason)
	require.NotNil(t, got.CancelledAt)
	assert.Equal(t, cancelledAt, *got.CancelledAt)

	// Отмененная запись освобождает слот
	_, err = store.CreateChecked(ctx, newAppointment("a2", "2", "2025-08-20", "2:30 PM"))
	assert.NoError(t, err)
}

func TestMemoryStore_CreateChecked_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			appt := newAppointment(fmt.Sprintf("a%d", i), "2", "2025-08-20", "2:30 PM")
			_, errs[i] = store.CreateChecked(ctx, appt)
		}(i)
	}
	wg.Wait()

	// Ровно одно бронирование проходит, остальные получают конфликт
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestMemoryStore_List_Filters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a1 := newAppointment("a1", "1", "2025-08-19", "9:00 AM")
	a2 := newAppointment("a2", "2", "2025-08-20", "2:30 PM")
	a3 := newAppointment("a3", "2", "2025-08-21", "10:00 AM")
	a3.PatientID = "user456"
	a3.Status = domain.StatusPending

	for _, appt := range []*domain.Appointment{a1, a2, a3} {
		_, err := store.Create(ctx, appt)
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		filter  domain.AppointmentsFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns all in insertion order",
			filter:  domain.AppointmentsFilter{},
			wantIDs: []string{"a1", "a2", "a3"},
		},
		{
			name:    "by patient",
			filter:  domain.AppointmentsFilter{PatientID: ptr.Ptr("user123")},
			wantIDs: []string{"a1", "a2"},
		},
		{
			name:    "by doctor",
			filter:  domain.AppointmentsFilter{DoctorID: ptr.Ptr("2")},
			wantIDs: []string{"a2", "a3"},
		},
		{
			name:    "by status",
			filter:  domain.AppointmentsFilter{Status: ptr.Ptr(domain.StatusPending)},
			wantIDs: []string{"a3"},
		},
		{
			name:    "by date",
			filter:  domain.AppointmentsFilter{Date: ptr.Ptr("2025-08-20")},
			wantIDs: []string{"a2"},
		},
		{
			name:    "no match",
			filter:  domain.AppointmentsFilter{PatientID: ptr.Ptr("nobody")},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.List(ctx, tt.filter)
			require.NoError(t, err)

			gotIDs := make([]string, 0, len(got))
			for _, appt := range got {
				gotIDs = append(gotIDs, appt.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestMemoryStore_Reschedule(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, newAppointment("a1", "2", "2025-08-20", "2:30 PM"))
	require.NoError(t, err)

	at := time.Date(2025, 8, 3, 9, 0, 0, 0, time.UTC)
	require.NoError(t, store.Reschedule(ctx, "a1", "2025-08-22", "11:00 AM", at))

	got, err := store.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-22", got.Date)
	assert.Equal(t, "11:00 AM", got.Time)
	assert.Equal(t, at, got.UpdatedAt)
}

func TestMemoryStore_GetByID_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestMemoryStore_UpdateStatus_NotFound(t *testing.T) {
	store := NewMemoryStore()

	err := store.UpdateStatus(context.Background(), "missing", domain.StatusCompleted, time.Now())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Create(ctx, newAppointment("a1", "2", "2025-08-20", "2:30 PM"))
	require.NoError(t, err)

	got, err := store.GetByID(ctx, "a1")
	require.NoError(t, err)

	// Мутация возвращенной копии не затрагивает хранилище
	got.Status = domain.StatusCancelled

	again, err := store.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, again.Status)
}
