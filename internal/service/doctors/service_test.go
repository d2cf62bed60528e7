package doctors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	doctorRepo "github.com/medipoint/MP-AppointmentService/internal/infra/storage/doctor"
	"github.com/medipoint/MP-AppointmentService/internal/service/doctors/models"
	"github.com/medipoint/MP-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) *Service {
	t.Helper()

	store := doctorRepo.NewMemoryStore()
	require.NoError(t, doctorRepo.SeedDirectory(context.Background(), store, time.Now()))
	return NewService(store, nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Michael Chen", got.Name)
	assert.Equal(t, "Cardiology", got.Specialization)
	assert.Equal(t, 800.0, got.ConsultationFee)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestService_List_All(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.List(context.Background(), &models.ListDoctorsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	// Сортировка по имени
	assert.Equal(t, "Dr. Emily Davis", result.Doctors[0].Name)
}

func TestService_List_BySpecialization(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.List(context.Background(), &models.ListDoctorsRequest{
		Specialization: ptr.Ptr("cardiology"),
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Dr. Michael Chen", result.Doctors[0].Name)
}

func TestService_List_ByQuery(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.List(context.Background(), &models.ListDoctorsRequest{
		Query: ptr.Ptr("johnson"),
	})
	require.NoError(t, err)

	require.Equal(t, 2, result.Total)
	assert.Equal(t, "Dr. Lisa Johnson", result.Doctors[0].Name)
	assert.Equal(t, "Dr. Sarah Johnson", result.Doctors[1].Name)
}

func TestService_List_NoMatch(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.List(context.Background(), &models.ListDoctorsRequest{
		Query: ptr.Ptr("neurology"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
}
