package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medipoint/MP-AppointmentService/internal/domain"
	doctorRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/doctor"
	scheduleRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/schedule"
	"github.com/medipoint/MP-AppointmentService/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) *Service {
	t.Helper()

	doctors := doctorRepo.NewMemoryStore()
	require.NoError(t, doctorRepo.SeedDirectory(context.Background(), doctors, time.Now()))

	return NewService(scheduleRepo.NewMemoryStore(), doctors, nopLogger{})
}

func TestService_GetByDoctorID_DefaultGrid(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.GetByDoctorID(context.Background(), "2")
	require.NoError(t, err)

	assert.Equal(t, "2", got.DoctorID)
	assert.True(t, got.IsDefault)
	assert.Equal(t, domain.DefaultSlotTimes, got.SlotTimes)
}

func TestService_GetByDoctorID_DoctorNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByDoctorID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestService_Update(t *testing.T) {
	svc := newTestService(t)

	updated, err := svc.Update(context.Background(), "2", &models.UpdateScheduleRequest{
		SlotTimes: []string{"8:00 AM", "8:30 AM", "9:00 AM"},
	})
	require.NoError(t, err)
	assert.False(t, updated.IsDefault)
	assert.Equal(t, []string{"8:00 AM", "8:30 AM", "9:00 AM"}, updated.SlotTimes)

	// После обновления расписание заменяет сетку по умолчанию
	got, err := svc.GetByDoctorID(context.Background(), "2")
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, []string{"8:00 AM", "8:30 AM", "9:00 AM"}, got.SlotTimes)
}

func TestService_Update_ReplacesExisting(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "2", &models.UpdateScheduleRequest{SlotTimes: []string{"8:00 AM"}})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "2", &models.UpdateScheduleRequest{SlotTimes: []string{"4:00 PM"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"4:00 PM"}, updated.SlotTimes)
}

func TestService_Update_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), "2", &models.UpdateScheduleRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(context.Background(), "2", &models.UpdateScheduleRequest{
		SlotTimes: []string{"9:00 AM", ""},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_DoctorNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(context.Background(), "999", &models.UpdateScheduleRequest{
		SlotTimes: []string{"9:00 AM"},
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
